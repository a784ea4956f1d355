package service

import (
	"context"

	"problem_tracker/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn        func(u models.User) error
	GetByUsernameFn func(username string) (*models.User, error)

	created  []models.User
	getCalls []string
}

func (m *mockUserRepo) Create(ctx context.Context, u models.User) error {
	m.created = append(m.created, u)
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

// mockProblemRepo is a lightweight in-test mock for repository.Problems.
type mockProblemRepo struct {
	CreateFn     func(p models.Problem) error
	ListByUserFn func(userID string, limit int) ([]models.Problem, error)
	CountFn      func(userID string) (int, error)

	created   []models.Problem
	lastLimit int
}

func (m *mockProblemRepo) Create(ctx context.Context, p models.Problem) error {
	m.created = append(m.created, p)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(p)
}

func (m *mockProblemRepo) ListByUser(ctx context.Context, userID string, limit int) ([]models.Problem, error) {
	m.lastLimit = limit
	return m.ListByUserFn(userID, limit)
}

func (m *mockProblemRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	return m.CountFn(userID)
}
