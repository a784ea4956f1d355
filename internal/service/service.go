package service

import (
	"context"
	"time"

	"problem_tracker/internal/models"
	"problem_tracker/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, username, password string) (string, *models.User, error)
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	ParseToken(accessToken string) (string, error)
}

// ProblemLog exposes the per-user problem journal: create, list, seed.
type ProblemLog interface {
	Create(ctx context.Context, userID string, in ProblemInput) (models.Problem, error)
	List(ctx context.Context, userID string) ([]models.Problem, error)
	Seed(ctx context.Context, userID string) (string, error)
}

// Statistics exposes the derived read-only view (topic distribution, streak).
type Statistics interface {
	Get(ctx context.Context, userID string) (models.Stats, error)
}

// Config carries the knobs services need; injected from main so no service
// reads ambient globals.
type Config struct {
	// JWTSecret signs and verifies access tokens.
	JWTSecret string
	// ProblemsPerQuery caps per-user listings; also bounds the record set
	// the stats aggregation sees.
	ProblemsPerQuery int
	// Now is the clock; defaults to time.Now. Tests inject a fixed one.
	Now func() time.Time
}

type Service struct {
	Authorization
	ProblemLog
	Statistics
}

func NewService(repos *repository.Repository, cfg Config) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg.JWTSecret, now),
		ProblemLog:    NewProblemService(repos.Problems, cfg.ProblemsPerQuery, now),
		Statistics:    NewStatsService(repos.Problems, cfg.ProblemsPerQuery, now),
	}
}
