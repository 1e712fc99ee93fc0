package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"rushvote/internal/repository/models"

	"go.uber.org/zap"
)

// AnalyticsService derives per-candidate aggregates, tier assignments and
// the deduplicated voter roster from stored responses. Results are
// recomputed on every call so they always reflect the latest accepted
// submissions.
type AnalyticsService struct {
	responses ResponseRepository
	logger    *zap.Logger
	newRand   func() *rand.Rand
}

// NewAnalyticsService creates a new AnalyticsService instance.
func NewAnalyticsService(responses ResponseRepository, logger *zap.Logger) *AnalyticsService {
	if responses == nil {
		panic("responses repository must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &AnalyticsService{
		responses: responses,
		logger:    logger,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// GetAnalytics returns one unrounded mean score and vote count per rated
// candidate. Candidates with no stored ratings are omitted rather than
// reported as zero: absence means "not yet evaluated", not "rated worst".
// A quiz with no responses yields an empty result, not an error.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, quizID string) ([]CandidateScore, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	aggregates, err := s.responses.GetCandidateAggregates(dbCtx, quizID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	scores := make([]CandidateScore, 0, len(aggregates))
	for _, agg := range aggregates {
		scores = append(scores, CandidateScore{
			CandidateID:   agg.CandidateID,
			CandidateName: agg.CandidateName,
			AverageScore:  agg.AverageScore,
			TotalVotes:    agg.TotalVotes,
		})
	}
	return scores, nil
}

// GetTiers computes fresh analytics and partitions them into three bands
// using the percentage cutoffs in force for this call. The in-band order
// is re-randomized on every call.
func (s *AnalyticsService) GetTiers(ctx context.Context, quizID string, topPct, midPct, lowPct float64) (TierAssignment, error) {
	for _, pct := range []float64{topPct, midPct, lowPct} {
		if pct < 0 || pct > 100 {
			return TierAssignment{}, fmt.Errorf("%w: tier percentages must be between 0 and 100", ErrInvalidPayload)
		}
	}

	scores, err := s.GetAnalytics(ctx, quizID)
	if err != nil {
		return TierAssignment{}, err
	}

	// lowPct is accepted for symmetry but the low band is always the
	// remainder, so no candidate is dropped or duplicated across bands.
	_ = lowPct
	return ClassifyTiers(scores, topPct, midPct, s.newRand()), nil
}

// ListVoters returns one record per distinct voter email, most recent
// submission first. This feeds non-critical reporting, so store read
// failures degrade to an empty list instead of propagating.
func (s *AnalyticsService) ListVoters(ctx context.Context, quizID string) []models.VoterRecord {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	voters, err := s.responses.ListVoters(dbCtx, quizID)
	if err != nil {
		s.logger.Warn("voter listing failed, returning empty roster",
			zap.String("quiz_id", quizID),
			zap.Error(err))
		return []models.VoterRecord{}
	}
	if voters == nil {
		voters = []models.VoterRecord{}
	}
	return voters
}

// CountVoters counts distinct voter emails for a quiz, degrading to zero
// on store failure for the same reason as ListVoters.
func (s *AnalyticsService) CountVoters(ctx context.Context, quizID string) int {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	count, err := s.responses.CountDistinctVoters(dbCtx, quizID)
	if err != nil {
		s.logger.Warn("voter count failed, returning zero",
			zap.String("quiz_id", quizID),
			zap.Error(err))
		return 0
	}
	return count
}

// DeleteVoterResponses removes every response one voter submitted for a
// quiz, freeing the pair for a fresh submission.
func (s *AnalyticsService) DeleteVoterResponses(ctx context.Context, quizID, voterEmail string) error {
	if voterEmail == "" {
		return fmt.Errorf("%w: voter email is required", ErrInvalidPayload)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.responses.DeleteByVoter(dbCtx, quizID, voterEmail); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("voter responses deleted",
		zap.String("quiz_id", quizID),
		zap.String("voter_email", voterEmail))
	return nil
}

// WithRandSource overrides the per-call random source factory, used by
// tests that need reproducible shuffles.
func (s *AnalyticsService) WithRandSource(newRand func() *rand.Rand) *AnalyticsService {
	s.newRand = newRand
	return s
}
