package handler

import (
	"context"
	"net/http"
	"photo-catalog-server/internal/consts"
	"photo-catalog-server/internal/logging"
	"photo-catalog-server/internal/modules/health/repo"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	dbCheckTimeout  = 3 * time.Second
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

type Handler struct {
	store repo.HealthStore
}

func New(store repo.HealthStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusHealthy, "service": consts.ApplicationName})
}

// DatabaseHealth 数据库不可用时仍返回 200，由 status 字段表达结果
func (h *Handler) DatabaseHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logging.FromGin(c).Warn(c.Request.Context(), "database health check failed", "error", err)
		c.JSON(http.StatusOK, gin.H{
			"status":   statusUnhealthy,
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusHealthy, "database": "connected"})
}
