package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"device-inventory-service/internal/infrastructure/config"
	Logger "device-inventory-service/pkg/logger"
)

// InterfaceCacheService is a JSON read cache
type InterfaceCacheService interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisCacheService stores JSON documents in redis with a fixed TTL
type RedisCacheService struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisClient creates the redis client described by cfg
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// NewCacheService returns a redis backed cache, or a no-op cache when client is nil
func NewCacheService(client *redis.Client, ttl time.Duration) InterfaceCacheService {
	if client == nil {
		return noopCacheService{}
	}
	return &RedisCacheService{
		Client: client,
		TTL:    ttl,
	}
}

// 1 Get loads key into dest, reporting whether it was present
func (s *RedisCacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

// 2 Set stores value under key
func (s *RedisCacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, data, s.TTL).Err()
}

// 3 Delete removes keys
func (s *RedisCacheService) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.Client.Del(ctx, keys...).Err()
}

type noopCacheService struct{}

func (noopCacheService) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noopCacheService) Set(context.Context, string, interface{}) error         { return nil }
func (noopCacheService) Delete(context.Context, ...string) error                { return nil }

func deviceDetailKey(id uint) string {
	return fmt.Sprintf("device:detail:%d", id)
}

func employeeDetailKey(id uint) string {
	return fmt.Sprintf("employee:detail:%d", id)
}

// Cache failures never fail a request; they are logged and the database answers.

func cacheGet(ctx context.Context, cache InterfaceCacheService, key string, dest interface{}) bool {
	hit, err := cache.Get(ctx, key, dest)
	if err != nil {
		Logger.L().Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func cacheSet(ctx context.Context, cache InterfaceCacheService, key string, value interface{}) {
	if err := cache.Set(ctx, key, value); err != nil {
		Logger.L().Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheDelete(ctx context.Context, cache InterfaceCacheService, key string) {
	if err := cache.Delete(ctx, key); err != nil {
		Logger.L().Warn("cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
