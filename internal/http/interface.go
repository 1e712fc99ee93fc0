package http

import (
	"context"
	"time"

	"rushvote/internal/repository/models"
	"rushvote/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// SubmissionService gates vote submissions.
type SubmissionService interface {
	SubmitVote(ctx context.Context, quizID, voterName, voterEmail string, ratings map[string]*int) error
}

// AnalyticsService derives aggregates, tiers and the voter roster.
type AnalyticsService interface {
	GetAnalytics(ctx context.Context, quizID string) ([]service.CandidateScore, error)
	GetTiers(ctx context.Context, quizID string, topPct, midPct, lowPct float64) (service.TierAssignment, error)
	ListVoters(ctx context.Context, quizID string) []models.VoterRecord
	CountVoters(ctx context.Context, quizID string) int
	DeleteVoterResponses(ctx context.Context, quizID, voterEmail string) error
}

// QuizService manages the quiz lifecycle.
type QuizService interface {
	CreateQuiz(ctx context.Context, name string, candidates []models.Candidate) (models.Quiz, error)
	GetQuiz(ctx context.Context, id string) (models.Quiz, error)
	ListQuizzes(ctx context.Context) ([]models.Quiz, error)
	RenameQuiz(ctx context.Context, id, name string) error
	UpdateCandidates(ctx context.Context, id string, candidates []models.Candidate) error
	DeleteQuiz(ctx context.Context, id string) error
}

// RosterSource lists candidates from the external roster service.
type RosterSource interface {
	ListCandidates(ctx context.Context) ([]models.Candidate, error)
}
