package utils

import (
	"context"
	"time"

	"salonify/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
}

// pingRedis returns nil when the client is unusable so callers fall back to
// their non-cached paths.
func pingRedis(client *redis.Client, label string) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis unavailable, continuing without it", zap.String("client", label), zap.Error(err))
		_ = client.Close()
		return nil
	}
	return client
}

// InitRedis connects the cache and auth cache clients when Redis is enabled.
func InitRedis() {
	if !config.AppConfig.RedisEnabled {
		GetLogger().Info("Redis disabled by configuration")
		return
	}
	CacheClient = pingRedis(newRedisClient(config.AppConfig.RedisCacheDB), "cache")
	AuthCacheClient = pingRedis(newRedisClient(config.AppConfig.RedisAuthDB), "auth")
}

// GetCacheClient returns the generic cache client, or nil when Redis is off.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching, or nil.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// RedisClients lists the live clients for health checks.
func RedisClients() []*redis.Client {
	var clients []*redis.Client
	for _, c := range []*redis.Client{CacheClient, AuthCacheClient} {
		if c != nil {
			clients = append(clients, c)
		}
	}
	return clients
}
