package service

import (
	"errors"
	"fmt"
	"time"

	"context"

	"rushvote/internal/repository"
	"rushvote/internal/repository/models"

	"go.uber.org/zap"
)

const dbTimeout = 1 * time.Second

// UnknownCandidateName labels response rows whose candidate id is no
// longer present in the quiz's stored snapshot.
const UnknownCandidateName = "Unknown"

// SubmissionService gates vote submissions: at most one accepted
// submission per (quiz, voter email) pair.
type SubmissionService struct {
	quizzes   QuizRepository
	responses ResponseRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewSubmissionService creates a new SubmissionService instance.
func NewSubmissionService(quizzes QuizRepository, responses ResponseRepository, logger *zap.Logger) *SubmissionService {
	if quizzes == nil || responses == nil {
		panic("repositories must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &SubmissionService{
		quizzes:   quizzes,
		responses: responses,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitVote validates and persists one voter's submission. Ratings maps
// candidate id to a 1-5 star value; a nil value is an abstain and produces
// no row. All rows of an accepted submission are written as one unit.
//
// The check-then-insert is not atomic against a racing submission for the
// same pair; at most one duplicate write can slip through. See DESIGN.md.
func (s *SubmissionService) SubmitVote(ctx context.Context, quizID, voterName, voterEmail string, ratings map[string]*int) error {
	if quizID == "" || voterName == "" || voterEmail == "" || len(ratings) == 0 {
		return fmt.Errorf("%w: quiz id, voter name, voter email and ratings are required", ErrInvalidPayload)
	}
	for candidateID, rating := range ratings {
		if rating != nil && (*rating < 1 || *rating > 5) {
			return fmt.Errorf("%w: rating for candidate %s must be between 1 and 5", ErrInvalidPayload, candidateID)
		}
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	quiz, err := s.quizzes.GetByID(dbCtx, quizID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	exists, err := s.responses.HasSubmission(dbCtx, quizID, voterEmail)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if exists {
		return ErrDuplicateSubmission
	}

	names := make(map[string]string, len(quiz.Candidates))
	for _, c := range quiz.Candidates {
		names[c.ID] = c.Name
	}

	submittedAt := s.now().UTC()
	rows := make([]models.RatingResponse, 0, len(ratings))
	for candidateID, rating := range ratings {
		if rating == nil {
			continue
		}
		name, ok := names[candidateID]
		if !ok {
			name = UnknownCandidateName
		}
		rows = append(rows, models.RatingResponse{
			QuizID:        quizID,
			VoterName:     voterName,
			VoterEmail:    voterEmail,
			CandidateID:   candidateID,
			CandidateName: name,
			Rating:        *rating,
			SubmittedAt:   submittedAt,
		})
	}

	if err := s.responses.InsertResponses(dbCtx, rows); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("submission accepted",
		zap.String("quiz_id", quizID),
		zap.String("voter_email", voterEmail),
		zap.Int("rated", len(rows)),
		zap.Int("abstained", len(ratings)-len(rows)))

	return nil
}
