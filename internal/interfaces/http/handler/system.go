package handler

import (
	"context"
	"database/sql"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger checks a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PoolStatter exposes connection pool usage. Pingers that implement it get
// pool figures in the health report.
type PoolStatter interface {
	Stats() (sql.DBStats, error)
}

// SystemHandler serves the liveness and readiness endpoints
type SystemHandler struct {
	db      Pinger
	ready   atomic.Bool
	started time.Time
}

// NewSystemHandler creates a new system handler. It reports not ready until MarkReady.
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db, started: time.Now()}
}

// MarkReady flips the readiness flag once startup work is done
func (h *SystemHandler) MarkReady() {
	h.ready.Store(true)
}

// RegisterRoutes adds /health and /ready to the engine
func (h *SystemHandler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/health", h.Health)
	engine.GET("/ready", h.Ready)
}

// Health pings the database
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
			"error":    err.Error(),
		})
		return
	}
	body := gin.H{
		"status":   "healthy",
		"database": "connected",
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	}
	if ps, ok := h.db.(PoolStatter); ok {
		if stats, err := ps.Stats(); err == nil {
			body["pool"] = gin.H{
				"open":      stats.OpenConnections,
				"inUse":     stats.InUse,
				"idle":      stats.Idle,
				"waitCount": stats.WaitCount,
			}
		}
	}
	c.JSON(http.StatusOK, body)
}

// Ready answers 200 once the server finished startup
func (h *SystemHandler) Ready(c *gin.Context) {
	if !h.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
