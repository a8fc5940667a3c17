package modules

import (
	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/modules/auth"
	"photo-catalog-server/internal/modules/health"
	healthrepo "photo-catalog-server/internal/modules/health/repo"
	"photo-catalog-server/internal/modules/photo"
	photorepo "photo-catalog-server/internal/modules/photo/repo"
	"photo-catalog-server/internal/modules/user"
	userrepo "photo-catalog-server/internal/modules/user/repo"
	"photo-catalog-server/internal/utils"
)

type AppModules struct {
	Auth   *auth.Module
	User   *user.Module
	Photo  *photo.Module
	Health *health.Module
}

func New(
	cfg config.Config,
	tokens *utils.TokenService,
	userStore userrepo.UserStore,
	photoStore photorepo.PhotoStore,
	healthStore healthrepo.HealthStore,
) *AppModules {
	userModule := user.New(user.NewService(userStore))

	return &AppModules{
		Auth:   auth.New(userModule.Service, tokens),
		User:   userModule,
		Photo:  photo.New(photoStore, cfg.Pagination),
		Health: health.New(healthStore),
	}
}
