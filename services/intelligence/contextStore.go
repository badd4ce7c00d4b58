// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"salonify/models"

	"github.com/go-redis/redis/v8"
)

const (
	estimatePrefix = "ai:estimate:"
	EstimateTTL    = 24 * time.Hour
)

// EstimateCache remembers estimates by normalized description.
type EstimateCache interface {
	Get(ctx context.Context, description string) (*models.ServiceEstimate, error)
	Set(ctx context.Context, description string, estimate *models.ServiceEstimate) error
}

type RedisEstimateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEstimateCache(client *redis.Client, ttl time.Duration) *RedisEstimateCache {
	return &RedisEstimateCache{client: client, ttl: ttl}
}

func estimateKey(description string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(description)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return estimatePrefix + hex.EncodeToString(sum[:])
}

// Get returns nil, nil on a miss.
func (s *RedisEstimateCache) Get(ctx context.Context, description string) (*models.ServiceEstimate, error) {
	data, err := s.client.Get(ctx, estimateKey(description)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var est models.ServiceEstimate
	if err := json.Unmarshal([]byte(data), &est); err != nil {
		return nil, err
	}
	return &est, nil
}

func (s *RedisEstimateCache) Set(ctx context.Context, description string, estimate *models.ServiceEstimate) error {
	b, err := json.Marshal(estimate)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, estimateKey(description), b, s.ttl).Err()
}
