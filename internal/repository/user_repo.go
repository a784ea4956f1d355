package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"problem_tracker/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`

	selectUserByUsernameSQL = `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`
)

// Create inserts a new user. A duplicate username surfaces as
// ErrUsernameTaken via the schema's UNIQUE constraint.
func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Username, u.PasswordHash, u.CreatedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// isUniqueViolation matches the sqlite constraint error text; the modernc
// driver exposes no typed error for it.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
