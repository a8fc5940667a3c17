package cache

import (
	"context"
	"fmt"
	"log"
	"photo-catalog-server/internal/config"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "photo_catalog"

// NewRedisClient 按配置创建 Redis 客户端；未启用或无法连通时返回 nil，调用方降级为内存模式。
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Printf("⚠️ Redis 不可用，降级为内存模式: %v", err)
		return nil
	}

	log.Printf("✅ Redis 已连接: %s (db=%d)", cfg.Addr, cfg.DB)
	return client
}

// Close 关闭 Redis 客户端连接，client 为 nil 时直接返回。
func Close(client *redis.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Close(); err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	return nil
}

// Key 基于前缀拼接 Redis 键名，例如 photo_catalog:rate:auth:1.2.3.4。
func Key(prefix string, parts ...string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}
