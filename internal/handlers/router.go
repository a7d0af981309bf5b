package handlers

import (
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/amp-job-portal/internal/config"
)

// StoreGuard serialises access to the in-memory store. The store itself
// holds no locks, so every route that touches it runs under the guard.
type StoreGuard struct {
	mu sync.Mutex
}

func NewStoreGuard() *StoreGuard {
	return &StoreGuard{}
}

// Serialize runs the rest of the chain while holding the guard.
func (g *StoreGuard) Serialize() gin.HandlerFunc {
	return func(c *gin.Context) {
		g.mu.Lock()
		defer g.mu.Unlock()
		c.Next()
	}
}

// Do runs f under the guard, for handlers that must release it before slow I/O.
func (g *StoreGuard) Do(f func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	f()
}

// NewRouter wires every route under /api/v1. Text generation stays outside
// the store guard so a slow model call never blocks the portal.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	guard *StoreGuard,
	health *HealthHandler,
	session *SessionHandler,
	jobs *JobHandler,
	content *ContentHandler,
	ai *AIHandler,
) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api/v1")
	api.GET("/health", health.HealthCheck)

	ai.Register(api.Group("/ai"))

	// Store routes
	portal := api.Group("", guard.Serialize())
	session.Register(portal)
	jobs.Register(portal)
	content.Register(portal)

	// Sending mail takes the guard itself, only while it reads the template.
	api.POST("/templates/:id/send", content.SendTemplate)

	return r
}

// RequestLogger logs one line per request once the handler chain is done.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("Request failed", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("Request rejected", fields...)
		default:
			logger.Info("Request handled", fields...)
		}
	}
}
