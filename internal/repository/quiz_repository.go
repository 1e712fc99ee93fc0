package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rushvote/internal/repository/models"
)

// ErrNotFound is returned when a row lookup matches nothing.
var ErrNotFound = errors.New("not found")

type QuizRepository struct {
	db *sql.DB
}

func NewQuizRepository(db *sql.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

func (r *QuizRepository) Create(ctx context.Context, quiz models.Quiz) error {
	snapshot, err := json.Marshal(quiz.Candidates)
	if err != nil {
		return fmt.Errorf("marshal candidate snapshot: %w", err)
	}

	const query = `
		INSERT INTO quizzes (id, name, candidates, created_at)
		VALUES (?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, quiz.ID, quiz.Name, string(snapshot), formatTimestamp(quiz.CreatedAt)); err != nil {
		return fmt.Errorf("insert quiz: %w", err)
	}
	return nil
}

func (r *QuizRepository) GetByID(ctx context.Context, id string) (models.Quiz, error) {
	const query = `
		SELECT id, name, candidates, created_at
		FROM quizzes
		WHERE id = ?
	`

	var quiz models.Quiz
	var snapshot string
	var createdAt string

	err := r.db.QueryRowContext(ctx, query, id).Scan(&quiz.ID, &quiz.Name, &snapshot, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Quiz{}, ErrNotFound
		}
		return models.Quiz{}, fmt.Errorf("query quiz %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(snapshot), &quiz.Candidates); err != nil {
		return models.Quiz{}, fmt.Errorf("unmarshal candidate snapshot for quiz %s: %w", id, err)
	}
	quiz.CreatedAt = parseTimestamp(createdAt)

	return quiz, nil
}

// List returns all quizzes, newest first.
func (r *QuizRepository) List(ctx context.Context) ([]models.Quiz, error) {
	const query = `
		SELECT id, name, candidates, created_at
		FROM quizzes
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []models.Quiz
	for rows.Next() {
		var quiz models.Quiz
		var snapshot string
		var createdAt string
		if err := rows.Scan(&quiz.ID, &quiz.Name, &snapshot, &createdAt); err != nil {
			return nil, fmt.Errorf("scan quiz row: %w", err)
		}
		if err := json.Unmarshal([]byte(snapshot), &quiz.Candidates); err != nil {
			return nil, fmt.Errorf("unmarshal candidate snapshot for quiz %s: %w", quiz.ID, err)
		}
		quiz.CreatedAt = parseTimestamp(createdAt)
		quizzes = append(quizzes, quiz)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quizzes: %w", err)
	}
	return quizzes, nil
}

func (r *QuizRepository) UpdateName(ctx context.Context, id, name string) error {
	const query = `UPDATE quizzes SET name = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("update quiz name: %w", err)
	}
	return requireAffected(res)
}

// UpdateCandidates replaces the quiz's candidate snapshot. The non-empty
// invariant is enforced one layer up, in the service.
func (r *QuizRepository) UpdateCandidates(ctx context.Context, id string, candidates []models.Candidate) error {
	snapshot, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("marshal candidate snapshot: %w", err)
	}

	const query = `UPDATE quizzes SET candidates = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, string(snapshot), id)
	if err != nil {
		return fmt.Errorf("update quiz candidates: %w", err)
	}
	return requireAffected(res)
}

// Delete removes the quiz; its responses cascade via the foreign key.
func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM quizzes WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Fixed-width UTC layout so stored timestamps order lexicographically,
// which MAX() and ORDER BY on the text column rely on.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{timeLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
