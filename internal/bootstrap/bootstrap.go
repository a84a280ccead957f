package bootstrap

import (
	"io"
	"net/http"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/config"
	sharedError "github.com/changhyeonkim/member-directory/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap handles common server setup
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates and configures a gin engine with common middleware
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	metrics.InitMetrics()

	// Create engine without default middleware
	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout))
	engine.Use(middleware.LoggerMiddleware())
	engine.Use(metrics.MetricsMiddleware())

	return engine
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	// the request logger already carries request_id once LoggerMiddleware ran
	logger.FromContext(c.Request.Context()).Error("Panic Recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}
