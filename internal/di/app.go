package di

import (
	"photo-catalog-server/internal/cache"
	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/modules"
	"photo-catalog-server/internal/router"
	"photo-catalog-server/internal/utils"

	"github.com/redis/go-redis/v9"
)

type Application struct {
	Router  *router.Router
	Modules *modules.AppModules
	Redis   *redis.Client
}

func NewApplication(r *router.Router, m *modules.AppModules, redisClient *redis.Client) *Application {
	return &Application{
		Router:  r,
		Modules: m,
		Redis:   redisClient,
	}
}

// provideRedisClient 未启用 Redis 时返回 nil 客户端与空清理函数
func provideRedisClient(cfg config.Config) (*redis.Client, func()) {
	client := cache.NewRedisClient(cfg.Redis)
	return client, func() {
		_ = cache.Close(client)
	}
}

func provideTokenService(cfg config.Config) *utils.TokenService {
	return utils.NewTokenService(cfg.JWT)
}
