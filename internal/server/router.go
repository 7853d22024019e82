// Package server wires the gin HTTP transport: routing, middleware, and
// the thin handlers that adapt HTTP to the search service.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lenamwu/bite-search-api/internal/common/config"
	svcerrors "github.com/lenamwu/bite-search-api/internal/common/errors"
	"github.com/lenamwu/bite-search-api/internal/common/metrics"
	"github.com/lenamwu/bite-search-api/internal/common/observability"
)

// Options configures the HTTP router builder.
type Options struct {
	Config *config.Config
	Logger *zap.Logger
	Search SearchService
}

// Router bundles the gin engine for the caller to serve.
type Router struct {
	Engine *gin.Engine
}

// Build constructs a gin engine pre-configured with recovery, request
// IDs, logging, metrics, tracing and CORS, plus the service routes.
func Build(opts Options) (*Router, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("http router requires config")
	}
	if opts.Search == nil {
		return nil, fmt.Errorf("http router requires a search service")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if opts.Config.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestIDMiddleware())
	engine.Use(loggingMiddleware(log))
	engine.Use(tracingMiddleware())
	engine.Use(metricsMiddleware())

	engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	h := &handlers{
		config: opts.Config,
		search: opts.Search,
		errors: svcerrors.NewErrorHandler(log),
	}

	engine.GET("/", h.handleRoot)
	engine.GET("/health", h.handleHealth)
	engine.GET("/search", h.handleSearch)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Router{Engine: engine}, nil
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

func loggingMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestID", c.GetString("requestID")),
		)
	}
}

func tracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		reqCtx, end := observability.StartSpan(c.Request.Context(), "http.server", path)
		c.Request = c.Request.WithContext(reqCtx)

		c.Next()

		var spanErr error
		if len(c.Errors) > 0 {
			spanErr = c.Errors.Last().Err
		} else if status := c.Writer.Status(); status >= http.StatusInternalServerError {
			spanErr = fmt.Errorf("status %d", status)
		}
		end(spanErr)
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		start := time.Now()
		c.Next()

		metrics.HTTPRequestsTotal.WithLabelValues(
			path,
			c.Request.Method,
			fmt.Sprintf("%d", c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
