package router

import (
	healthhandler "photo-catalog-server/internal/modules/health/handler"

	"github.com/gin-gonic/gin"
)

func registerHealthRoutes(r gin.IRouter, h *healthhandler.Handler) {
	health := r.Group("/health")
	for _, root := range []string{"", "/"} {
		health.GET(root, h.Health)
	}
	health.GET("/db", h.DatabaseHealth)
}
