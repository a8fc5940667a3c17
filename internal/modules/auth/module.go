package auth

import (
	"photo-catalog-server/internal/modules/auth/handler"
	"photo-catalog-server/internal/modules/auth/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(userService service.UserService, tokens service.TokenIssuer) *Module {
	moduleService := service.New(userService, tokens)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
