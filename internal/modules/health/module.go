package health

import (
	"photo-catalog-server/internal/modules/health/handler"
	"photo-catalog-server/internal/modules/health/repo"
)

type Module struct {
	Handler *handler.Handler
}

func New(store repo.HealthStore) *Module {
	return &Module{Handler: handler.New(store)}
}
