package middleware

import (
	"context"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

// 令牌桶：tokens/ts 存在一个 hash 中，按毫秒补充令牌
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local data = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(data[1])
local ts = tonumber(data[2])
if tokens == nil or ts == nil then
  tokens = burst
  ts = now
end

local elapsed = math.max(0, now - ts) / 1000
tokens = math.min(burst, tokens + elapsed * rate)

local allowed = 0
if tokens >= 1 then
  tokens = tokens - 1
  allowed = 1
end

redis.call('HSET', key, 'tokens', tostring(tokens), 'ts', tostring(now))
redis.call('PEXPIRE', key, ttl)
return allowed
`)

// allowByRedisRateLimit 在 Redis 上执行令牌桶判定；rps 或 burst 非正数时视为不限流。
func allowByRedisRateLimit(ctx context.Context, client *redis.Client, key string, rps float64, burst int) (bool, error) {
	if rps <= 0 || burst <= 0 {
		return true, nil
	}
	if client == nil {
		return true, nil
	}

	// 桶从空到满所需时间再加 1 秒，过期后等价于满桶
	ttl := int64(math.Ceil(float64(burst)/rps*1000)) + 1000
	now := time.Now().UnixMilli()

	res, err := tokenBucketScript.Run(ctx, client, []string{key}, rps, burst, now, ttl).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
