package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/config"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 5 * time.Second

// HealthChecker is satisfied by *database.DB.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

var _ HealthChecker = (*database.DB)(nil)

// Handler handles meta endpoints (health check)
type Handler struct {
	cfg *config.Config
	db  HealthChecker
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db HealthChecker) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Health checks service and database health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	service := gin.H{
		"name":        h.cfg.App.Name,
		"environment": h.cfg.App.Env,
	}

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		logger.FromContext(ctx).Error("Health check 실패", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": service,
			"checks": gin.H{
				"database": gin.H{
					"status": "down",
					"driver": h.cfg.Database.Driver,
					"error":  err.Error(),
				},
			},
		})
		return
	}

	service["port"] = h.cfg.App.Port
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": service,
		"checks": gin.H{
			"database": gin.H{
				"status":     "up",
				"driver":     h.cfg.Database.Driver,
				"latency_ms": time.Since(start).Milliseconds(),
			},
		},
	})
}
