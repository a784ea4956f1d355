package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"problem_tracker/internal/models"

	"github.com/google/uuid"
)

type ProblemRepository struct {
	db *sql.DB
}

func NewProblemRepository(db *sql.DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

var _ Problems = (*ProblemRepository)(nil)

const (
	insertProblemSQL = `
		INSERT INTO problems (id, user_id, title, platform, difficulty, topics, date_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectProblemsByUserSQL = `
		SELECT id, user_id, title, platform, difficulty, topics, date_completed, created_at
		FROM problems WHERE user_id = ? ORDER BY created_at ASC LIMIT ?
	`

	countProblemsByUserSQL = `SELECT COUNT(*) FROM problems WHERE user_id = ?`
)

// marshalTopics converts the slice to a JSON string for the TEXT column.
func marshalTopics(topics []string) (string, error) {
	b, err := json.Marshal(topics)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalTopics(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var topics []string
	if err := json.Unmarshal([]byte(s), &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// Create inserts a new problem record. If ID or CreatedAt are empty, they're set.
func (r *ProblemRepository) Create(ctx context.Context, p models.Problem) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	} else {
		p.CreatedAt = p.CreatedAt.UTC()
	}

	topicsJSON, err := marshalTopics(p.Topics)
	if err != nil {
		return fmt.Errorf("marshal topics for problem %q: %w", p.Title, err)
	}

	_, err = r.db.ExecContext(ctx, insertProblemSQL,
		p.ID,
		p.UserID,
		p.Title,
		p.Platform,
		p.Difficulty,
		topicsJSON,
		p.DateCompleted,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert problem %q: %w", p.Title, err)
	}
	return nil
}

// ListByUser returns up to limit problems owned by userID, oldest first.
func (r *ProblemRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Problem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectProblemsByUserSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("select problems for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Problem, 0, 16)
	for rows.Next() {
		var p models.Problem
		var topicsJSON string
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Title,
			&p.Platform,
			&p.Difficulty,
			&topicsJSON,
			&p.DateCompleted,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan problem row: %w", err)
		}
		topics, err := unmarshalTopics(topicsJSON)
		if err != nil {
			return nil, fmt.Errorf("unmarshal topics for problem %q: %w", p.ID, err)
		}
		p.Topics = topics
		p.CreatedAt = p.CreatedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByUser returns the number of problems owned by userID.
func (r *ProblemRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var n int
	if err := r.db.QueryRowContext(ctx, countProblemsByUserSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count problems for user %q: %w", userID, err)
	}
	return n, nil
}
