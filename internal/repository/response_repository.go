package repository

import (
	"context"
	"database/sql"
	"fmt"

	"rushvote/internal/repository/models"
)

type ResponseRepository struct {
	db *sql.DB
}

func NewResponseRepository(db *sql.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// HasSubmission reports whether any response row exists for the
// (quiz, voter email) pair. Email matching is case-sensitive, as stored.
func (r *ResponseRepository) HasSubmission(ctx context.Context, quizID, voterEmail string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM quiz_responses
			WHERE quiz_id = ? AND voter_email = ?
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, quizID, voterEmail).Scan(&exists); err != nil {
		return false, fmt.Errorf("query existing submission: %w", err)
	}
	return exists, nil
}

// InsertResponses writes all rows of one submission in a single transaction
// so a submission is never observable half written.
func (r *ResponseRepository) InsertResponses(ctx context.Context, responses []models.RatingResponse) error {
	if len(responses) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin submission tx: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO quiz_responses (quiz_id, voter_name, voter_email, candidate_id, candidate_name, rating, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare response insert: %w", err)
	}
	defer stmt.Close()

	for _, resp := range responses {
		_, err := stmt.ExecContext(ctx,
			resp.QuizID,
			resp.VoterName,
			resp.VoterEmail,
			resp.CandidateID,
			resp.CandidateName,
			resp.Rating,
			formatTimestamp(resp.SubmittedAt),
		)
		if err != nil {
			return fmt.Errorf("insert response row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit submission tx: %w", err)
	}
	return nil
}

// GetCandidateAggregates groups stored ratings by candidate with
// SQL-computed mean and count. Candidates with no rows are simply absent.
func (r *ResponseRepository) GetCandidateAggregates(ctx context.Context, quizID string) ([]models.CandidateAggregate, error) {
	const query = `
		SELECT
			candidate_id,
			candidate_name,
			AVG(CAST(rating AS REAL)) AS average_score,
			COUNT(*) AS total_votes
		FROM quiz_responses
		WHERE quiz_id = ?
		GROUP BY candidate_id
	`

	rows, err := r.db.QueryContext(ctx, query, quizID)
	if err != nil {
		return nil, fmt.Errorf("query candidate aggregates: %w", err)
	}
	defer rows.Close()

	var results []models.CandidateAggregate
	for rows.Next() {
		var agg models.CandidateAggregate
		if err := rows.Scan(&agg.CandidateID, &agg.CandidateName, &agg.AverageScore, &agg.TotalVotes); err != nil {
			return nil, fmt.Errorf("scan candidate aggregate row: %w", err)
		}
		results = append(results, agg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidate aggregates: %w", err)
	}
	return results, nil
}

// ListVoters returns one record per distinct voter email, keeping each
// voter's most recent submission timestamp, most recent first.
func (r *ResponseRepository) ListVoters(ctx context.Context, quizID string) ([]models.VoterRecord, error) {
	const query = `
		SELECT voter_name, voter_email, MAX(submitted_at) AS submitted_at
		FROM quiz_responses
		WHERE quiz_id = ?
		GROUP BY voter_email
		ORDER BY submitted_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, quizID)
	if err != nil {
		return nil, fmt.Errorf("query voters: %w", err)
	}
	defer rows.Close()

	var voters []models.VoterRecord
	for rows.Next() {
		var v models.VoterRecord
		var submittedAt string
		if err := rows.Scan(&v.VoterName, &v.VoterEmail, &submittedAt); err != nil {
			return nil, fmt.Errorf("scan voter row: %w", err)
		}
		v.SubmittedAt = parseTimestamp(submittedAt)
		voters = append(voters, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate voters: %w", err)
	}
	return voters, nil
}

// CountDistinctVoters counts unique voter emails for a quiz.
func (r *ResponseRepository) CountDistinctVoters(ctx context.Context, quizID string) (int, error) {
	const query = `
		SELECT COUNT(DISTINCT voter_email)
		FROM quiz_responses
		WHERE quiz_id = ?
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, quizID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count distinct voters: %w", err)
	}
	return count, nil
}

// DeleteByVoter removes every response one voter submitted for a quiz.
// Deleting a voter with no rows is a no-op, not an error.
func (r *ResponseRepository) DeleteByVoter(ctx context.Context, quizID, voterEmail string) error {
	const query = `
		DELETE FROM quiz_responses
		WHERE quiz_id = ? AND voter_email = ?
	`

	if _, err := r.db.ExecContext(ctx, query, quizID, voterEmail); err != nil {
		return fmt.Errorf("delete voter responses: %w", err)
	}
	return nil
}
