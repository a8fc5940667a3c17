package user

import (
	"photo-catalog-server/internal/modules/user/repo"
	"photo-catalog-server/internal/modules/user/service"
)

type Module struct {
	Service *service.Service
}

func NewService(userStore repo.UserStore) *service.Service {
	return service.New(userStore)
}

func New(moduleService *service.Service) *Module {
	return &Module{Service: moduleService}
}
