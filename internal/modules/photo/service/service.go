package service

import (
	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/modules/photo/repo"
)

const (
	msgPhotoNotFound = "Photo not found"
	msgPhotoExists   = "Photo with this id already exists"
)

type Service struct {
	photoStore repo.PhotoStore
	pagination config.PaginationConfig
}

func New(photoStore repo.PhotoStore, pagination config.PaginationConfig) *Service {
	if pagination.MaxPageSize <= 0 {
		pagination.MaxPageSize = 100
	}
	if pagination.DefaultPageSize <= 0 || pagination.DefaultPageSize > pagination.MaxPageSize {
		pagination.DefaultPageSize = min(20, pagination.MaxPageSize)
	}
	return &Service{
		photoStore: photoStore,
		pagination: pagination,
	}
}

// Store 暴露底层存储，供批量导入复用
func (s *Service) Store() repo.PhotoStore {
	return s.photoStore
}
