package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"problem_tracker/internal/models"
	"problem_tracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the fixed validity window of an access token.
const tokenTTL = 30 * 24 * time.Hour

// AuthService handles registration, login and token issue/verify.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	now        func() time.Time
}

func NewAuthService(users repository.Users, signingKey string, now func() time.Time) *AuthService {
	return &AuthService{users: users, signingKey: []byte(signingKey), now: now}
}

// Register hashes the password, creates the user and issues a token.
// A duplicate username surfaces as ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, *models.User, error) {
	if strings.TrimSpace(username) == "" {
		return "", nil, NewValidationError("username is required")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return "", nil, err
	}

	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return "", nil, ErrUsernameTaken
		}
		return "", nil, err
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}

// Login validates credentials and issues a token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// ParseToken verifies signature and expiry and returns the subject user id.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", NewValidationError("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT whose subject is the user id
func (s *AuthService) issueToken(userID string) (string, error) {
	now := s.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	})
	return token.SignedString(s.signingKey)
}
