// Package health exposes liveness endpoints compatible with the paths the
// frontend already probes.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves /actuator/health and /actuator/info.
type Handler struct {
	db      Pinger
	version string
}

// NewHandler returns a health handler probing db. version is reported by /actuator/info.
func NewHandler(db Pinger, version string) *Handler {
	return &Handler{db: db, version: version}
}

// Register mounts the health routes on the given router.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/actuator")
	g.GET("/health", h.healthCheck)
	g.GET("/info", h.info)
}

func (h *Handler) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "DOWN",
			"components": gin.H{"db": gin.H{"status": "DOWN"}},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     "UP",
		"components": gin.H{"db": gin.H{"status": "UP"}},
	})
}

func (h *Handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app": gin.H{
			"name":    "milestone-tracker",
			"version": h.version,
		},
	})
}
