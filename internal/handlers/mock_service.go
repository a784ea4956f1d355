package handlers

import (
	"context"

	"problem_tracker/internal/models"
	"problem_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerToken string
	registerUser  *models.User
	registerErr   error
	loginToken    string
	loginUser     *models.User
	loginErr      error
	parseID       string
	parseErr      error

	lastRegisterUsername string
	lastRegisterPassword string
	lastLoginUsername    string
	lastLoginPassword    string
	lastParseToken       string
}

func (m *mockAuth) Register(ctx context.Context, username, password string) (string, *models.User, error) {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerToken, m.registerUser, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginUser, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockProblemLog struct {
	createResp models.Problem
	createErr  error
	listResp   []models.Problem
	listErr    error
	seedMsg    string
	seedErr    error

	lastCreateUserID string
	lastCreateInput  service.ProblemInput
	lastListUserID   string
	lastSeedUserID   string
	createCalls      int
}

func (m *mockProblemLog) Create(ctx context.Context, userID string, in service.ProblemInput) (models.Problem, error) {
	m.createCalls++
	m.lastCreateUserID = userID
	m.lastCreateInput = in
	return m.createResp, m.createErr
}

func (m *mockProblemLog) List(ctx context.Context, userID string) ([]models.Problem, error) {
	m.lastListUserID = userID
	return m.listResp, m.listErr
}

func (m *mockProblemLog) Seed(ctx context.Context, userID string) (string, error) {
	m.lastSeedUserID = userID
	return m.seedMsg, m.seedErr
}

type mockStats struct {
	stats models.Stats
	err   error

	lastUserID string
}

func (m *mockStats) Get(ctx context.Context, userID string) (models.Stats, error) {
	m.lastUserID = userID
	return m.stats, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
