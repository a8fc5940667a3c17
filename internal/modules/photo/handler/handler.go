package handler

import photoservice "photo-catalog-server/internal/modules/photo/service"

type Handler struct {
	photoService *photoservice.Service
}

func New(photoService *photoservice.Service) *Handler {
	return &Handler{photoService: photoService}
}
