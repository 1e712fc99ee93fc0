package service

import (
	"context"

	"rushvote/internal/repository/models"
)

// QuizRepository defines the quiz row store operations the services need.
type QuizRepository interface {
	Create(ctx context.Context, quiz models.Quiz) error
	GetByID(ctx context.Context, id string) (models.Quiz, error)
	List(ctx context.Context) ([]models.Quiz, error)
	UpdateName(ctx context.Context, id, name string) error
	UpdateCandidates(ctx context.Context, id string, candidates []models.Candidate) error
	Delete(ctx context.Context, id string) error
}

// ResponseRepository defines the response row store operations the
// services need.
type ResponseRepository interface {
	HasSubmission(ctx context.Context, quizID, voterEmail string) (bool, error)
	InsertResponses(ctx context.Context, responses []models.RatingResponse) error
	GetCandidateAggregates(ctx context.Context, quizID string) ([]models.CandidateAggregate, error)
	ListVoters(ctx context.Context, quizID string) ([]models.VoterRecord, error)
	CountDistinctVoters(ctx context.Context, quizID string) (int, error)
	DeleteByVoter(ctx context.Context, quizID, voterEmail string) error
}
