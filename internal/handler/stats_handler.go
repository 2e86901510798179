package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/pkg/response"
)

type statsService interface {
	Statistics(ctx context.Context) (*models.Statistics, error)
}

// StatsHandler exposes the admin dashboard counters.
type StatsHandler struct {
	stats statsService
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(stats statsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Statistics godoc
// @Summary Dashboard statistics
// @Tags Statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/statistics [get]
func (h *StatsHandler) Statistics(c *gin.Context) {
	stats, err := h.stats.Statistics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}
