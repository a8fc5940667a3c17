package handler

import (
	"net/http"
	"photo-catalog-server/internal/common/httpx"
	moduledto "photo-catalog-server/internal/modules/photo/dto"
	photoservice "photo-catalog-server/internal/modules/photo/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreatePhoto(c *gin.Context) {
	var req moduledto.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	photo := req.ToModel()
	if err := h.photoService.Create(&photo); err != nil {
		httpx.WriteServiceError(c, err, "Failed to create photo")
		return
	}

	c.JSON(http.StatusCreated, photo)
}

func (h *Handler) ListPhotos(c *gin.Context) {
	var query moduledto.ListPhotosQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	page, err := h.photoService.ResolvePage(query.Page, query.PageSize)
	if err != nil {
		httpx.WriteServiceError(c, err, "Invalid pagination")
		return
	}

	photos, total, err := h.photoService.List(page, photoservice.Filters{
		Photographer: query.Photographer,
		MinWidth:     query.MinWidth,
		MaxWidth:     query.MaxWidth,
		MinHeight:    query.MinHeight,
		MaxHeight:    query.MaxHeight,
		Search:       query.Search,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to list photos")
		return
	}

	c.JSON(http.StatusOK, moduledto.PhotoListResponse{
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Photos:   photos,
	})
}

func (h *Handler) GetPhoto(c *gin.Context) {
	id, ok := parsePhotoID(c)
	if !ok {
		return
	}

	photo, err := h.photoService.GetByID(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to get photo")
		return
	}

	c.JSON(http.StatusOK, photo)
}

func (h *Handler) UpdatePhoto(c *gin.Context) {
	id, ok := parsePhotoID(c)
	if !ok {
		return
	}

	var req moduledto.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	photo, err := h.photoService.Update(id, photoservice.Patch{
		AltSet:          req.Alt.Set,
		Alt:             req.Alt.Ptr(),
		PhotographerSet: req.Photographer.Set,
		Photographer:    req.Photographer.Ptr(),
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update photo")
		return
	}

	c.JSON(http.StatusOK, photo)
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	id, ok := parsePhotoID(c)
	if !ok {
		return
	}

	if err := h.photoService.Delete(id); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete photo")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListByPhotographer(c *gin.Context) {
	photographerID, err := strconv.ParseInt(c.Param("photographer_id"), 10, 64)
	if err != nil {
		httpx.WriteError(c, http.StatusBadRequest, "photographer_id must be an integer")
		return
	}

	var query moduledto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	page, err := h.photoService.ResolvePage(query.Page, query.PageSize)
	if err != nil {
		httpx.WriteServiceError(c, err, "Invalid pagination")
		return
	}

	photos, total, err := h.photoService.ListByPhotographerID(photographerID, page)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to list photos")
		return
	}

	c.JSON(http.StatusOK, moduledto.PhotoListResponse{
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Photos:   photos,
	})
}

func parsePhotoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httpx.WriteError(c, http.StatusBadRequest, "photo_id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
