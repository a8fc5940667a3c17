package router

import (
	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/logging"
	"photo-catalog-server/internal/middleware"
	"photo-catalog-server/internal/modules"
	"photo-catalog-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Router struct {
	modules     *modules.AppModules
	tokens      *utils.TokenService
	cfg         config.Config
	redisClient *redis.Client
	logger      logging.Logger
}

func NewRouter(
	appModules *modules.AppModules,
	tokens *utils.TokenService,
	cfg config.Config,
	redisClient *redis.Client,
	logger logging.Logger,
) *Router {
	return &Router{
		modules:     appModules,
		tokens:      tokens,
		cfg:         cfg,
		redisClient: redisClient,
		logger:      logger,
	}
}

// NewEngine 创建 gin 引擎并注册全部路由。/photos 与 /photos/ 均直接注册，关闭尾斜杠重定向。
func (rt *Router) NewEngine() *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery())
	rt.Init(r)
	return r
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.RequestLogger(rt.logger))
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())
	// 应用请求体大小限制中间件
	r.Use(middleware.BodyLimitMiddleware(rt.cfg.Server.MaxBodyMB))

	// 认证限流：登录、注册与刷新共用同一个实例
	authLimiter := middleware.RateLimitMiddleware("auth", rt.cfg.RateLimit, rt.redisClient, rt.cfg.Redis.Prefix)
	authRequired := middleware.JWTAuth(rt.tokens, rt.modules.User.Service)

	registerHealthRoutes(r, rt.modules.Health.Handler)
	registerAuthRoutes(r, authLimiter, rt.modules.Auth.Handler)
	registerPhotoRoutes(r, authRequired, rt.modules.Photo.Handler)
}
