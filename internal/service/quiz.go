package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rushvote/internal/repository"
	"rushvote/internal/repository/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuizService manages the quiz lifecycle. A quiz holds a point-in-time
// candidate snapshot copied from the external roster; the snapshot is
// editable by an organizer but must never become empty.
type QuizService struct {
	quizzes QuizRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewQuizService creates a new QuizService instance.
func NewQuizService(quizzes QuizRepository, logger *zap.Logger) *QuizService {
	if quizzes == nil {
		panic("quiz repository must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &QuizService{
		quizzes: quizzes,
		logger:  logger,
		now:     time.Now,
	}
}

// CreateQuiz snapshots the selected candidates into a new quiz.
func (s *QuizService) CreateQuiz(ctx context.Context, name string, candidates []models.Candidate) (models.Quiz, error) {
	if strings.TrimSpace(name) == "" {
		return models.Quiz{}, fmt.Errorf("%w: quiz name is required", ErrInvalidPayload)
	}
	if len(candidates) == 0 {
		return models.Quiz{}, ErrEmptyRoster
	}

	quiz := models.Quiz{
		ID:         uuid.NewString(),
		Name:       name,
		Candidates: candidates,
		CreatedAt:  s.now().UTC(),
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.quizzes.Create(dbCtx, quiz); err != nil {
		return models.Quiz{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("quiz created",
		zap.String("quiz_id", quiz.ID),
		zap.Int("candidates", len(candidates)))
	return quiz, nil
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (models.Quiz, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	quiz, err := s.quizzes.GetByID(dbCtx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Quiz{}, ErrQuizNotFound
		}
		return models.Quiz{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return quiz, nil
}

// ListQuizzes returns all quizzes, newest first.
func (s *QuizService) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	quizzes, err := s.quizzes.List(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	return quizzes, nil
}

func (s *QuizService) RenameQuiz(ctx context.Context, id, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: quiz name is required", ErrInvalidPayload)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.quizzes.UpdateName(dbCtx, id, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return nil
}

// UpdateCandidates replaces the quiz's candidate snapshot, rejecting an
// empty replacement so a quiz always has at least one candidate.
func (s *QuizService) UpdateCandidates(ctx context.Context, id string, candidates []models.Candidate) error {
	if len(candidates) == 0 {
		return ErrEmptyRoster
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.quizzes.UpdateCandidates(dbCtx, id, candidates); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("quiz candidates updated",
		zap.String("quiz_id", id),
		zap.Int("candidates", len(candidates)))
	return nil
}

// DeleteQuiz removes the quiz; stored responses cascade away with it.
func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.quizzes.Delete(dbCtx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("quiz deleted", zap.String("quiz_id", id))
	return nil
}
