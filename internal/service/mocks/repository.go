package mocks

import (
	"context"
	"errors"

	"rushvote/internal/repository/models"
)

// MockQuizRepository is a mock implementation of the QuizRepository
// interface for testing the service layer.
type MockQuizRepository struct {
	CreateFunc           func(ctx context.Context, quiz models.Quiz) error
	GetByIDFunc          func(ctx context.Context, id string) (models.Quiz, error)
	ListFunc             func(ctx context.Context) ([]models.Quiz, error)
	UpdateNameFunc       func(ctx context.Context, id, name string) error
	UpdateCandidatesFunc func(ctx context.Context, id string, candidates []models.Candidate) error
	DeleteFunc           func(ctx context.Context, id string) error
}

func (m *MockQuizRepository) Create(ctx context.Context, quiz models.Quiz) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, quiz)
	}
	return errors.New("CreateFunc not implemented")
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id string) (models.Quiz, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return models.Quiz{}, errors.New("GetByIDFunc not implemented")
}

func (m *MockQuizRepository) List(ctx context.Context) ([]models.Quiz, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errors.New("ListFunc not implemented")
}

func (m *MockQuizRepository) UpdateName(ctx context.Context, id, name string) error {
	if m.UpdateNameFunc != nil {
		return m.UpdateNameFunc(ctx, id, name)
	}
	return errors.New("UpdateNameFunc not implemented")
}

func (m *MockQuizRepository) UpdateCandidates(ctx context.Context, id string, candidates []models.Candidate) error {
	if m.UpdateCandidatesFunc != nil {
		return m.UpdateCandidatesFunc(ctx, id, candidates)
	}
	return errors.New("UpdateCandidatesFunc not implemented")
}

func (m *MockQuizRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented")
}

// MockResponseRepository is a mock implementation of the
// ResponseRepository interface for testing the service layer.
type MockResponseRepository struct {
	HasSubmissionFunc          func(ctx context.Context, quizID, voterEmail string) (bool, error)
	InsertResponsesFunc        func(ctx context.Context, responses []models.RatingResponse) error
	GetCandidateAggregatesFunc func(ctx context.Context, quizID string) ([]models.CandidateAggregate, error)
	ListVotersFunc             func(ctx context.Context, quizID string) ([]models.VoterRecord, error)
	CountDistinctVotersFunc    func(ctx context.Context, quizID string) (int, error)
	DeleteByVoterFunc          func(ctx context.Context, quizID, voterEmail string) error
}

func (m *MockResponseRepository) HasSubmission(ctx context.Context, quizID, voterEmail string) (bool, error) {
	if m.HasSubmissionFunc != nil {
		return m.HasSubmissionFunc(ctx, quizID, voterEmail)
	}
	return false, errors.New("HasSubmissionFunc not implemented")
}

func (m *MockResponseRepository) InsertResponses(ctx context.Context, responses []models.RatingResponse) error {
	if m.InsertResponsesFunc != nil {
		return m.InsertResponsesFunc(ctx, responses)
	}
	return errors.New("InsertResponsesFunc not implemented")
}

func (m *MockResponseRepository) GetCandidateAggregates(ctx context.Context, quizID string) ([]models.CandidateAggregate, error) {
	if m.GetCandidateAggregatesFunc != nil {
		return m.GetCandidateAggregatesFunc(ctx, quizID)
	}
	return nil, errors.New("GetCandidateAggregatesFunc not implemented")
}

func (m *MockResponseRepository) ListVoters(ctx context.Context, quizID string) ([]models.VoterRecord, error) {
	if m.ListVotersFunc != nil {
		return m.ListVotersFunc(ctx, quizID)
	}
	return nil, errors.New("ListVotersFunc not implemented")
}

func (m *MockResponseRepository) CountDistinctVoters(ctx context.Context, quizID string) (int, error) {
	if m.CountDistinctVotersFunc != nil {
		return m.CountDistinctVotersFunc(ctx, quizID)
	}
	return 0, errors.New("CountDistinctVotersFunc not implemented")
}

func (m *MockResponseRepository) DeleteByVoter(ctx context.Context, quizID, voterEmail string) error {
	if m.DeleteByVoterFunc != nil {
		return m.DeleteByVoterFunc(ctx, quizID, voterEmail)
	}
	return errors.New("DeleteByVoterFunc not implemented")
}
