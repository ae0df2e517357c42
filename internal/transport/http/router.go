package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports"
	"github.com/mkargin/shop-registry/pkg/httpx"
	"github.com/mkargin/shop-registry/pkg/validate"
)

// newEngine — общий каркас роутера обоих сервисов: recovery, request-id,
// логирование запросов, опциональный otel-трейсинг, /ping и /metrics.
func newEngine(log ports.Logger, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// respondError — единое сопоставление доменных ошибок с HTTP-статусами.
func respondError(c *gin.Context, log ports.Logger, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case errors.Is(err, validate.ErrInvalidUser), errors.Is(err, validate.ErrInvalidOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidUserRef):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user reference"})
	case errors.Is(err, domain.ErrUserServiceUnavailable):
		log.Errorf(ctx, "dependency unreachable: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "user service unreachable"})
	default:
		log.Errorf(ctx, "internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
