package mocks

import (
	"context"
	"errors"
	"time"

	"rushvote/internal/repository/models"
	"rushvote/internal/service"
)

// MockSubmissionService is a function-field mock of the submission gate.
type MockSubmissionService struct {
	SubmitVoteFunc func(ctx context.Context, quizID, voterName, voterEmail string, ratings map[string]*int) error
}

func (m *MockSubmissionService) SubmitVote(ctx context.Context, quizID, voterName, voterEmail string, ratings map[string]*int) error {
	if m.SubmitVoteFunc != nil {
		return m.SubmitVoteFunc(ctx, quizID, voterName, voterEmail, ratings)
	}
	return errors.New("SubmitVoteFunc not implemented")
}

// MockAnalyticsService is a function-field mock of the analytics surface.
type MockAnalyticsService struct {
	GetAnalyticsFunc         func(ctx context.Context, quizID string) ([]service.CandidateScore, error)
	GetTiersFunc             func(ctx context.Context, quizID string, topPct, midPct, lowPct float64) (service.TierAssignment, error)
	ListVotersFunc           func(ctx context.Context, quizID string) []models.VoterRecord
	CountVotersFunc          func(ctx context.Context, quizID string) int
	DeleteVoterResponsesFunc func(ctx context.Context, quizID, voterEmail string) error
}

func (m *MockAnalyticsService) GetAnalytics(ctx context.Context, quizID string) ([]service.CandidateScore, error) {
	if m.GetAnalyticsFunc != nil {
		return m.GetAnalyticsFunc(ctx, quizID)
	}
	return nil, errors.New("GetAnalyticsFunc not implemented")
}

func (m *MockAnalyticsService) GetTiers(ctx context.Context, quizID string, topPct, midPct, lowPct float64) (service.TierAssignment, error) {
	if m.GetTiersFunc != nil {
		return m.GetTiersFunc(ctx, quizID, topPct, midPct, lowPct)
	}
	return service.TierAssignment{}, errors.New("GetTiersFunc not implemented")
}

func (m *MockAnalyticsService) ListVoters(ctx context.Context, quizID string) []models.VoterRecord {
	if m.ListVotersFunc != nil {
		return m.ListVotersFunc(ctx, quizID)
	}
	return nil
}

func (m *MockAnalyticsService) CountVoters(ctx context.Context, quizID string) int {
	if m.CountVotersFunc != nil {
		return m.CountVotersFunc(ctx, quizID)
	}
	return 0
}

func (m *MockAnalyticsService) DeleteVoterResponses(ctx context.Context, quizID, voterEmail string) error {
	if m.DeleteVoterResponsesFunc != nil {
		return m.DeleteVoterResponsesFunc(ctx, quizID, voterEmail)
	}
	return errors.New("DeleteVoterResponsesFunc not implemented")
}

// MockQuizService is a function-field mock of the quiz lifecycle service.
type MockQuizService struct {
	CreateQuizFunc       func(ctx context.Context, name string, candidates []models.Candidate) (models.Quiz, error)
	GetQuizFunc          func(ctx context.Context, id string) (models.Quiz, error)
	ListQuizzesFunc      func(ctx context.Context) ([]models.Quiz, error)
	RenameQuizFunc       func(ctx context.Context, id, name string) error
	UpdateCandidatesFunc func(ctx context.Context, id string, candidates []models.Candidate) error
	DeleteQuizFunc       func(ctx context.Context, id string) error
}

func (m *MockQuizService) CreateQuiz(ctx context.Context, name string, candidates []models.Candidate) (models.Quiz, error) {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, name, candidates)
	}
	return models.Quiz{}, errors.New("CreateQuizFunc not implemented")
}

func (m *MockQuizService) GetQuiz(ctx context.Context, id string) (models.Quiz, error) {
	if m.GetQuizFunc != nil {
		return m.GetQuizFunc(ctx, id)
	}
	return models.Quiz{}, errors.New("GetQuizFunc not implemented")
}

func (m *MockQuizService) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	if m.ListQuizzesFunc != nil {
		return m.ListQuizzesFunc(ctx)
	}
	return nil, errors.New("ListQuizzesFunc not implemented")
}

func (m *MockQuizService) RenameQuiz(ctx context.Context, id, name string) error {
	if m.RenameQuizFunc != nil {
		return m.RenameQuizFunc(ctx, id, name)
	}
	return errors.New("RenameQuizFunc not implemented")
}

func (m *MockQuizService) UpdateCandidates(ctx context.Context, id string, candidates []models.Candidate) error {
	if m.UpdateCandidatesFunc != nil {
		return m.UpdateCandidatesFunc(ctx, id, candidates)
	}
	return errors.New("UpdateCandidatesFunc not implemented")
}

func (m *MockQuizService) DeleteQuiz(ctx context.Context, id string) error {
	if m.DeleteQuizFunc != nil {
		return m.DeleteQuizFunc(ctx, id)
	}
	return errors.New("DeleteQuizFunc not implemented")
}

// MockRosterSource is a function-field mock of the external roster client.
type MockRosterSource struct {
	ListCandidatesFunc func(ctx context.Context) ([]models.Candidate, error)
}

func (m *MockRosterSource) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	if m.ListCandidatesFunc != nil {
		return m.ListCandidatesFunc(ctx)
	}
	return nil, errors.New("ListCandidatesFunc not implemented")
}

// MockCacher is a function-field mock of the cache client.
type MockCacher struct {
	GetFunc   func(ctx context.Context, key string, dest any) error
	SetFunc   func(ctx context.Context, key string, value any, expiration time.Duration) error
	CloseFunc func() error
}

func (m *MockCacher) Get(ctx context.Context, key string, dest any) error {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key, dest)
	}
	return errors.New("GetFunc not implemented")
}

func (m *MockCacher) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}
	return errors.New("SetFunc not implemented")
}

func (m *MockCacher) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
