package handlers

import (
	"net/http"

	"problem_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errCreateProblem = "failed to create problem"
	errListProblems  = "failed to load problems"
	errSeedData      = "failed to seed data"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO for creating a problem.
type createProblemRequest struct {
	Title         string   `json:"title" binding:"required"`
	Platform      string   `json:"platform" binding:"required"`
	Difficulty    string   `json:"difficulty" binding:"required"`
	Topics        []string `json:"topics" binding:"required"`
	DateCompleted string   `json:"date_completed" binding:"required"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// @Summary      Record a completed problem
// @Tags         problems
// @Accept       json
// @Produce      json
// @Param        body  body  createProblemRequest  true  "Problem payload"
// @Success      200  {object}  models.Problem
// @Failure      401  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/problems [post]
// @Security     BearerAuth
func (h *Handler) createProblem(c *gin.Context) {
	var req createProblemRequest
	if ok := h.bindJSONOrUnprocessable(c, &req); !ok {
		return
	}

	problem, err := h.services.Create(c.Request.Context(), callerID(c), service.ProblemInput{
		Title:         req.Title,
		Platform:      req.Platform,
		Difficulty:    req.Difficulty,
		Topics:        req.Topics,
		DateCompleted: req.DateCompleted,
	})
	if err != nil {
		if service.IsValidation(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateProblem, "problem_create_failed", err)
		return
	}

	c.JSON(http.StatusOK, problem)
}

// @Summary      List the caller's problems
// @Tags         problems
// @Produce      json
// @Success      200  {array}   models.Problem
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/problems [get]
// @Security     BearerAuth
func (h *Handler) listProblems(c *gin.Context) {
	problems, err := h.services.List(c.Request.Context(), callerID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListProblems, "problem_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, problems)
}

// @Summary      Seed sample problems
// @Description  Inserts a fixed sample set if the caller has no problems yet; otherwise a no-op.
// @Tags         problems
// @Produce      json
// @Success      200  {object}  map[string]string  "message"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/seed-data [post]
// @Security     BearerAuth
func (h *Handler) seedData(c *gin.Context) {
	msg, err := h.services.Seed(c.Request.Context(), callerID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSeedData, "seed_data_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
