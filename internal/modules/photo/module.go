package photo

import (
	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/modules/photo/handler"
	"photo-catalog-server/internal/modules/photo/repo"
	"photo-catalog-server/internal/modules/photo/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(photoStore repo.PhotoStore, pagination config.PaginationConfig) *Module {
	moduleService := service.New(photoStore, pagination)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
