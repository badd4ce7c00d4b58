// File: salonify/utils/auth_session.go
package utils

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// AuthCachePrefix namespaces session hashes in the auth Redis database.
	AuthCachePrefix = "session:"
	AuthCacheTTL    = 10 * time.Minute
)

// TokenCache remembers the hash of each user's current session token so the
// auth middleware can skip the user lookup.
type TokenCache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, userID string) (hash string, ok bool, err error)
	Set(ctx context.Context, userID, hash string) error
	Delete(ctx context.Context, userID string) error
}

// RedisTokenCache stores hashes under AuthCachePrefix with AuthCacheTTL.
type RedisTokenCache struct {
	client *redis.Client
}

// NewTokenCache returns a Redis cache, or an in-process one when client is nil.
func NewTokenCache(client *redis.Client) TokenCache {
	if client == nil {
		return NewMemoryTokenCache()
	}
	return &RedisTokenCache{client: client}
}

func (c *RedisTokenCache) Get(ctx context.Context, userID string) (string, bool, error) {
	hash, err := c.client.Get(ctx, AuthCachePrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read auth cache: %w", err)
	}
	return hash, true, nil
}

func (c *RedisTokenCache) Set(ctx context.Context, userID, hash string) error {
	if err := c.client.Set(ctx, AuthCachePrefix+userID, hash, AuthCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to write auth cache: %w", err)
	}
	return nil
}

func (c *RedisTokenCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, AuthCachePrefix+userID).Err()
}

type memoryEntry struct {
	hash    string
	expires time.Time
}

// MemoryTokenCache is the TokenCache used without Redis.
type MemoryTokenCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryTokenCache) Get(_ context.Context, userID string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[userID]
	if !ok || time.Now().After(e.expires) {
		delete(c.entries, userID)
		return "", false, nil
	}
	return e.hash, true, nil
}

func (c *MemoryTokenCache) Set(_ context.Context, userID, hash string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = memoryEntry{hash: hash, expires: time.Now().Add(AuthCacheTTL)}
	return nil
}

func (c *MemoryTokenCache) Delete(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	return nil
}
