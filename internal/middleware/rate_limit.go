package middleware

import (
	"context"
	"net/http"
	"photo-catalog-server/internal/cache"
	"photo-catalog-server/internal/common/httpx"
	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/logging"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL      = 3 * time.Minute
	limiterCleanupEvery = 1 * time.Minute
	redisLimitTimeout   = 500 * time.Millisecond
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen.Store(time.Now().UnixNano())
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen.Store(time.Now().UnixNano())
		return c.limiter
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b)}
	c.lastSeen.Store(time.Now().UnixNano())
	i.ips.Store(ip, c)

	return c.limiter
}

// Allow 消耗 ip 对应令牌桶中的一个令牌
func (i *IPRateLimiter) Allow(ip string) bool {
	return i.getLimiter(ip).Allow()
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(limiterCleanupEvery)
		i.evictIdle(time.Now())
	}
}

func (i *IPRateLimiter) evictIdle(now time.Time) {
	i.ips.Range(func(key, value interface{}) bool {
		c := value.(*client)
		if now.Sub(time.Unix(0, c.lastSeen.Load())) > limiterIdleTTL {
			i.ips.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware 按客户端 IP 限流。redisClient 非空时使用 Redis 令牌桶在多实例间共享配额，
// Redis 出错时回退到进程内限流。
func RateLimitMiddleware(scope string, cfg config.RateLimitConfig, redisClient *redis.Client, redisPrefix string) gin.HandlerFunc {
	if !cfg.Enabled || cfg.AuthRPS <= 0 || cfg.AuthBurst <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := NewIPRateLimiter(rate.Limit(cfg.AuthRPS), cfg.AuthBurst)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		allowed := false
		decided := false
		if redisClient != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), redisLimitTimeout)
			key := cache.Key(redisPrefix, "rate", scope, ip)
			ok, err := allowByRedisRateLimit(ctx, redisClient, key, cfg.AuthRPS, cfg.AuthBurst)
			cancel()
			if err != nil {
				logging.FromGin(c).Warn(c.Request.Context(), "redis rate limit unavailable, falling back to memory", "error", err)
			} else {
				allowed, decided = ok, true
			}
		}
		if !decided {
			allowed = limiter.Allow(ip)
		}

		if !allowed {
			httpx.WriteError(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}
