package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errGetStats = "failed to compute stats"

// @Summary      Get aggregate stats
// @Description  Topic frequency distribution and current daily streak for the caller.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  models.Stats
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/stats [get]
// @Security     BearerAuth
func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.services.Get(c.Request.Context(), callerID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetStats, "stats_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
