package router

import (
	authhandler "photo-catalog-server/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(r gin.IRouter, authLimiter gin.HandlerFunc, h *authhandler.Handler) {
	auth := r.Group("/auth", authLimiter)
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/refresh", h.Refresh)
}
