package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"rushvote/internal/repository"
	"rushvote/internal/repository/models"
	"rushvote/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleCandidates() []models.Candidate {
	return []models.Candidate{
		{ID: "cand-a", Name: "Alice", ClassYear: 2027},
		{ID: "cand-b", Name: "Bob", ClassYear: 2028},
	}
}

func TestCreateQuiz(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("snapshots candidates into a new quiz", func(t *testing.T) {
		var created models.Quiz
		repo := &mocks.MockQuizRepository{
			CreateFunc: func(ctx context.Context, quiz models.Quiz) error {
				created = quiz
				return nil
			},
		}

		svc := NewQuizService(repo, logger)
		svc.now = func() time.Time { return time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC) }

		quiz, err := svc.CreateQuiz(ctx, "Fall Rush", sampleCandidates())
		require.NoError(t, err)

		assert.NotEmpty(t, quiz.ID)
		assert.Equal(t, quiz, created)
		assert.Equal(t, "Fall Rush", created.Name)
		assert.Len(t, created.Candidates, 2)
		assert.Equal(t, time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC), created.CreatedAt)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc := NewQuizService(&mocks.MockQuizRepository{}, logger)
		_, err := svc.CreateQuiz(ctx, "   ", sampleCandidates())
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("empty candidate list rejected", func(t *testing.T) {
		svc := NewQuizService(&mocks.MockQuizRepository{}, logger)
		_, err := svc.CreateQuiz(ctx, "Fall Rush", nil)
		assert.ErrorIs(t, err, ErrEmptyRoster)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		repo := &mocks.MockQuizRepository{
			CreateFunc: func(ctx context.Context, quiz models.Quiz) error {
				return errors.New("insert failed")
			},
		}

		svc := NewQuizService(repo, logger)
		_, err := svc.CreateQuiz(ctx, "Fall Rush", sampleCandidates())
		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestGetQuiz(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("not found maps to ErrQuizNotFound", func(t *testing.T) {
		repo := &mocks.MockQuizRepository{
			GetByIDFunc: func(ctx context.Context, id string) (models.Quiz, error) {
				return models.Quiz{}, repository.ErrNotFound
			},
		}

		svc := NewQuizService(repo, logger)
		_, err := svc.GetQuiz(ctx, "missing")
		assert.ErrorIs(t, err, ErrQuizNotFound)
	})
}

func TestUpdateCandidates(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("replacement snapshot stored", func(t *testing.T) {
		var got []models.Candidate
		repo := &mocks.MockQuizRepository{
			UpdateCandidatesFunc: func(ctx context.Context, id string, candidates []models.Candidate) error {
				got = candidates
				return nil
			},
		}

		svc := NewQuizService(repo, logger)
		require.NoError(t, svc.UpdateCandidates(ctx, "quiz-1", sampleCandidates()))
		assert.Len(t, got, 2)
	})

	t.Run("candidate list must never become empty", func(t *testing.T) {
		svc := NewQuizService(&mocks.MockQuizRepository{}, logger)
		assert.ErrorIs(t, svc.UpdateCandidates(ctx, "quiz-1", []models.Candidate{}), ErrEmptyRoster)
	})

	t.Run("unknown quiz maps to ErrQuizNotFound", func(t *testing.T) {
		repo := &mocks.MockQuizRepository{
			UpdateCandidatesFunc: func(ctx context.Context, id string, candidates []models.Candidate) error {
				return repository.ErrNotFound
			},
		}

		svc := NewQuizService(repo, logger)
		assert.ErrorIs(t, svc.UpdateCandidates(ctx, "missing", sampleCandidates()), ErrQuizNotFound)
	})
}

func TestRenameQuiz(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("blank name rejected", func(t *testing.T) {
		svc := NewQuizService(&mocks.MockQuizRepository{}, logger)
		assert.ErrorIs(t, svc.RenameQuiz(ctx, "quiz-1", ""), ErrInvalidPayload)
	})

	t.Run("unknown quiz maps to ErrQuizNotFound", func(t *testing.T) {
		repo := &mocks.MockQuizRepository{
			UpdateNameFunc: func(ctx context.Context, id, name string) error {
				return repository.ErrNotFound
			},
		}

		svc := NewQuizService(repo, logger)
		assert.ErrorIs(t, svc.RenameQuiz(ctx, "missing", "New Name"), ErrQuizNotFound)
	})
}

func TestDeleteQuiz(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("deletes by id", func(t *testing.T) {
		var gotID string
		repo := &mocks.MockQuizRepository{
			DeleteFunc: func(ctx context.Context, id string) error {
				gotID = id
				return nil
			},
		}

		svc := NewQuizService(repo, logger)
		require.NoError(t, svc.DeleteQuiz(ctx, "quiz-1"))
		assert.Equal(t, "quiz-1", gotID)
	})

	t.Run("unknown quiz maps to ErrQuizNotFound", func(t *testing.T) {
		repo := &mocks.MockQuizRepository{
			DeleteFunc: func(ctx context.Context, id string) error {
				return repository.ErrNotFound
			},
		}

		svc := NewQuizService(repo, logger)
		assert.ErrorIs(t, svc.DeleteQuiz(ctx, "missing"), ErrQuizNotFound)
	})
}

func TestListQuizzes(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("nil result becomes empty slice", func(t *testing.T) {
		repo := &mocks.MockQuizRepository{
			ListFunc: func(ctx context.Context) ([]models.Quiz, error) {
				return nil, nil
			},
		}

		svc := NewQuizService(repo, logger)
		quizzes, err := svc.ListQuizzes(ctx)
		require.NoError(t, err)
		assert.NotNil(t, quizzes)
		assert.Empty(t, quizzes)
	})
}
