//go:build wireinject
// +build wireinject

package di

import (
	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/ingest"
	"photo-catalog-server/internal/logging"
	"photo-catalog-server/internal/modules"
	healthrepo "photo-catalog-server/internal/modules/health/repo"
	photorepo "photo-catalog-server/internal/modules/photo/repo"
	"photo-catalog-server/internal/modules/user"
	userrepo "photo-catalog-server/internal/modules/user/repo"
	userservice "photo-catalog-server/internal/modules/user/service"
	"photo-catalog-server/internal/router"

	"github.com/google/wire"
	"gorm.io/gorm"
)

var repositorySet = wire.NewSet(
	userrepo.NewUserRepository,
	photorepo.NewPhotoRepository,
	healthrepo.NewHealthRepository,
)

func InitializeApplication(gormDB *gorm.DB, cfg config.Config, logger logging.Logger) (*Application, func(), error) {
	wire.Build(
		repositorySet,
		provideRedisClient,
		provideTokenService,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil, nil
}

func InitializeIngester(gormDB *gorm.DB, cfg config.Config, logger logging.Logger) (*ingest.Ingester, error) {
	wire.Build(
		userrepo.NewUserRepository,
		photorepo.NewPhotoRepository,
		user.NewService,
		wire.Bind(new(ingest.AdminSeeder), new(*userservice.Service)),
		ingest.NewIngester,
	)
	return nil, nil
}
