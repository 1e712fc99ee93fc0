package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"rushvote/internal/repository/models"
	"rushvote/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetAnalytics(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("maps aggregates per candidate", func(t *testing.T) {
		repo := &mocks.MockResponseRepository{
			GetCandidateAggregatesFunc: func(ctx context.Context, quizID string) ([]models.CandidateAggregate, error) {
				assert.Equal(t, "quiz-1", quizID)
				// A rated [5,4,5], B rated [3]; C has no rows and is absent.
				return []models.CandidateAggregate{
					{CandidateID: "a", CandidateName: "Alice", AverageScore: 14.0 / 3.0, TotalVotes: 3},
					{CandidateID: "b", CandidateName: "Bob", AverageScore: 3.0, TotalVotes: 1},
				}, nil
			},
		}

		svc := NewAnalyticsService(repo, logger)
		scores, err := svc.GetAnalytics(ctx, "quiz-1")

		require.NoError(t, err)
		require.Len(t, scores, 2)
		assert.InDelta(t, 4.67, scores[0].AverageScore, 0.01)
		assert.Equal(t, 3, scores[0].TotalVotes)
		assert.Equal(t, "Bob", scores[1].CandidateName)
		assert.Equal(t, 3.0, scores[1].AverageScore)
	})

	t.Run("no responses yields empty result, not an error", func(t *testing.T) {
		repo := &mocks.MockResponseRepository{
			GetCandidateAggregatesFunc: func(ctx context.Context, quizID string) ([]models.CandidateAggregate, error) {
				return nil, nil
			},
		}

		svc := NewAnalyticsService(repo, logger)
		scores, err := svc.GetAnalytics(ctx, "quiz-1")

		require.NoError(t, err)
		assert.NotNil(t, scores)
		assert.Empty(t, scores)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		repo := &mocks.MockResponseRepository{
			GetCandidateAggregatesFunc: func(ctx context.Context, quizID string) ([]models.CandidateAggregate, error) {
				return nil, errors.New("query timeout")
			},
		}

		svc := NewAnalyticsService(repo, logger)
		scores, err := svc.GetAnalytics(ctx, "quiz-1")

		assert.ErrorIs(t, err, ErrStorageFailure)
		assert.Nil(t, scores)
	})
}

func TestGetTiers(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	aggregates := []models.CandidateAggregate{
		{CandidateID: "a", CandidateName: "Alice", AverageScore: 4.67, TotalVotes: 3},
		{CandidateID: "b", CandidateName: "Bob", AverageScore: 3.0, TotalVotes: 1},
	}

	repo := &mocks.MockResponseRepository{
		GetCandidateAggregatesFunc: func(ctx context.Context, quizID string) ([]models.CandidateAggregate, error) {
			return aggregates, nil
		},
	}

	t.Run("worked example 50/50/0 over two candidates", func(t *testing.T) {
		svc := NewAnalyticsService(repo, logger).WithRandSource(func() *rand.Rand {
			return rand.New(rand.NewSource(1))
		})

		tiers, err := svc.GetTiers(ctx, "quiz-1", 50, 50, 0)
		require.NoError(t, err)

		require.Len(t, tiers.Top, 1)
		require.Len(t, tiers.Middle, 1)
		assert.Empty(t, tiers.Low)
		assert.Equal(t, "a", tiers.Top[0].CandidateID)
		assert.Equal(t, "b", tiers.Middle[0].CandidateID)
	})

	t.Run("percentages out of range rejected", func(t *testing.T) {
		svc := NewAnalyticsService(repo, logger)

		for _, pcts := range [][3]float64{{-1, 50, 25}, {25, 101, 25}, {25, 50, -0.5}} {
			_, err := svc.GetTiers(ctx, "quiz-1", pcts[0], pcts[1], pcts[2])
			assert.ErrorIs(t, err, ErrInvalidPayload)
		}
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		failing := &mocks.MockResponseRepository{
			GetCandidateAggregatesFunc: func(ctx context.Context, quizID string) ([]models.CandidateAggregate, error) {
				return nil, errors.New("boom")
			},
		}

		svc := NewAnalyticsService(failing, logger)
		_, err := svc.GetTiers(ctx, "quiz-1", 25, 50, 25)
		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestListVoters(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("passes through deduplicated roster", func(t *testing.T) {
		want := []models.VoterRecord{
			{VoterName: "Recent", VoterEmail: "recent@example.com", SubmittedAt: time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC)},
			{VoterName: "Older", VoterEmail: "older@example.com", SubmittedAt: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)},
		}
		repo := &mocks.MockResponseRepository{
			ListVotersFunc: func(ctx context.Context, quizID string) ([]models.VoterRecord, error) {
				return want, nil
			},
		}

		svc := NewAnalyticsService(repo, logger)
		assert.Equal(t, want, svc.ListVoters(ctx, "quiz-1"))
	})

	t.Run("store failure degrades to empty list", func(t *testing.T) {
		repo := &mocks.MockResponseRepository{
			ListVotersFunc: func(ctx context.Context, quizID string) ([]models.VoterRecord, error) {
				return nil, errors.New("read failed")
			},
		}

		svc := NewAnalyticsService(repo, logger)
		voters := svc.ListVoters(ctx, "quiz-1")

		assert.NotNil(t, voters)
		assert.Empty(t, voters)
	})
}

func TestCountVoters(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns distinct count", func(t *testing.T) {
		repo := &mocks.MockResponseRepository{
			CountDistinctVotersFunc: func(ctx context.Context, quizID string) (int, error) {
				return 7, nil
			},
		}

		svc := NewAnalyticsService(repo, logger)
		assert.Equal(t, 7, svc.CountVoters(ctx, "quiz-1"))
	})

	t.Run("store failure degrades to zero", func(t *testing.T) {
		repo := &mocks.MockResponseRepository{
			CountDistinctVotersFunc: func(ctx context.Context, quizID string) (int, error) {
				return 0, errors.New("read failed")
			},
		}

		svc := NewAnalyticsService(repo, logger)
		assert.Equal(t, 0, svc.CountVoters(ctx, "quiz-1"))
	})
}

func TestDeleteVoterResponses(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("deletes by pair", func(t *testing.T) {
		var gotQuiz, gotEmail string
		repo := &mocks.MockResponseRepository{
			DeleteByVoterFunc: func(ctx context.Context, quizID, voterEmail string) error {
				gotQuiz, gotEmail = quizID, voterEmail
				return nil
			},
		}

		svc := NewAnalyticsService(repo, logger)
		require.NoError(t, svc.DeleteVoterResponses(ctx, "quiz-1", "val@example.com"))
		assert.Equal(t, "quiz-1", gotQuiz)
		assert.Equal(t, "val@example.com", gotEmail)
	})

	t.Run("missing email rejected", func(t *testing.T) {
		svc := NewAnalyticsService(&mocks.MockResponseRepository{}, logger)
		assert.ErrorIs(t, svc.DeleteVoterResponses(ctx, "quiz-1", ""), ErrInvalidPayload)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		repo := &mocks.MockResponseRepository{
			DeleteByVoterFunc: func(ctx context.Context, quizID, voterEmail string) error {
				return errors.New("delete failed")
			},
		}

		svc := NewAnalyticsService(repo, logger)
		assert.ErrorIs(t, svc.DeleteVoterResponses(ctx, "quiz-1", "v@e.com"), ErrStorageFailure)
	})
}
