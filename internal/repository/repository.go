package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"problem_tracker/internal/models"
)

// ErrUsernameTaken reports a duplicate registration. It is produced by the
// UNIQUE constraint on users.username, so concurrent registrations cannot
// both succeed.
var ErrUsernameTaken = errors.New("username already registered")

// queryTimeout bounds every store call so an unreachable database fails the
// request instead of hanging it.
const queryTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Problems interface {
	Create(ctx context.Context, p models.Problem) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Problem, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

type Repository struct {
	Users    Users
	Problems Problems
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Problems: NewProblemRepository(db),
	}
}
