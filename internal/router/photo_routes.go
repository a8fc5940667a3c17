package router

import (
	"photo-catalog-server/internal/middleware"
	photohandler "photo-catalog-server/internal/modules/photo/handler"

	"github.com/gin-gonic/gin"
)

func registerPhotoRoutes(r gin.IRouter, authRequired gin.HandlerFunc, h *photohandler.Handler) {
	photos := r.Group("/photos", authRequired)
	adminOnly := middleware.AdminCheck()

	for _, root := range []string{"", "/"} {
		photos.GET(root, h.ListPhotos)
		photos.POST(root, adminOnly, h.CreatePhoto)
	}
	photos.GET("/photographer/:photographer_id", h.ListByPhotographer)
	photos.GET("/:id", h.GetPhoto)
	photos.PATCH("/:id", adminOnly, h.UpdatePhoto)
	photos.DELETE("/:id", adminOnly, h.DeletePhoto)
}
