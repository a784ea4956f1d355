package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"problem_tracker/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestUserRepository_Create(t *testing.T) {
	createdAt := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	user := models.User{
		ID:           "u-1",
		Username:     "alice",
		PasswordHash: "h123",
		CreatedAt:    createdAt,
	}

	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantErr    error
		wantAnyErr bool
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("u-1", "alice", "h123", createdAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "duplicate username maps to ErrUsernameTaken",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("u-1", "alice", "h123", createdAt).
					WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)"))
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name: "exec error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("u-1", "alice", "h123", createdAt).
					WillReturnError(errors.New("db exec failed"))
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			err := repo.Create(context.Background(), user)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if tt.wantAnyErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	createdAt := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		username   string
		mockExpect func(sqlmock.Sqlmock)
		wantUser   *models.User
		wantErr    bool
	}{
		{
			name:     "found",
			username: "alice",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
					AddRow("u-7", "alice", "h123", createdAt)
				m.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
					WithArgs("alice").
					WillReturnRows(rows)
			},
			wantUser: &models.User{
				ID:           "u-7",
				Username:     "alice",
				PasswordHash: "h123",
				CreatedAt:    createdAt,
			},
		},
		{
			name:     "not found (ErrNoRows)",
			username: "missing",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantUser: nil,
		},
		{
			name:     "query error",
			username: "bob",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
					WithArgs("bob").
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			u, err := repo.GetByUsername(context.Background(), tt.username)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantUser == nil {
				if u != nil {
					t.Fatalf("expected nil user, got %+v", u)
				}
				return
			}
			if u == nil {
				t.Fatalf("expected user, got nil")
			}
			if u.ID != tt.wantUser.ID || u.Username != tt.wantUser.Username ||
				u.PasswordHash != tt.wantUser.PasswordHash || !u.CreatedAt.Equal(tt.wantUser.CreatedAt) {
				t.Fatalf("unexpected user: want %+v, got %+v", tt.wantUser, u)
			}
		})
	}
}
