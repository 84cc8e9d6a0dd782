package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrdirectory/internal/app/models/dto"
	"github.com/yigit/hrdirectory/internal/middleware"
	"github.com/yigit/hrdirectory/internal/pkg/logger"
)

// Pinger is satisfied by *db.PostgresDB and *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 2 * time.Second

// HealthController answers liveness probes
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Ping reports whether the database answers
// @Summary Health check
// @Description Pings the database pool
// @Tags health
// @Produce json
// @Success 200 {object} dto.PingResponse "Database reachable"
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /ping [get]
func (c *HealthController) Ping(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), pingTimeout)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		lgr := middleware.GetLogger(ctx, logger.Get())
		lgr.Warn().Err(err).Msg("Database ping failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeServiceUnavailable, "Service unavailable").WithSeverity(dto.ErrorSeverityCritical),
		))
		return
	}

	ctx.JSON(http.StatusOK, dto.PingResponse{Message: "pong", Status: "success"})
}
