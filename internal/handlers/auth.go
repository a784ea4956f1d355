package handlers

import (
	"errors"
	"net/http"

	"problem_tracker/internal/models"
	"problem_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both register and login.
type authCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// tokenResponse is the auth success envelope.
type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

const bearerTokenType = "bearer"

// bindJSONOrUnprocessable tries to bind the request body into dst and writes
// a 422 JSON on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrUnprocessable(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      200  {object}  tokenResponse
// @Failure      400  {object}  map[string]string  "username taken"
// @Failure      422  {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrUnprocessable(c, &input); !ok {
		return
	}

	token, user, err := h.services.Register(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already registered"})
		case service.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "failed to register", "auth_register_failed", err, "username", input.Username)
		}
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   bearerTokenType,
		User:        user,
	})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  map[string]string  "invalid credentials"
// @Failure      422  {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrUnprocessable(c, &input); !ok {
		return
	}

	token, user, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("auth_login_failed", "username", input.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to log in", "auth_login_error", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   bearerTokenType,
		User:        user,
	})
}
