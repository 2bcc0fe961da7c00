package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/routes-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// scanBatchSize - размер порции ключей при удалении по паттерну
const scanBatchSize = 100

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redisConn *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redisConn.Client(),
		logger: redisConn.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// DeleteByPattern удаляет ключи по паттерну через SCAN (не блокирует Redis
// в отличие от KEYS). Возвращает число удалённых ключей.
func (r *cacheRepository) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	deleted := 0
	batch := make([]string, 0, scanBatchSize)

	iter := r.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= scanBatchSize {
			n, err := r.deleteBatch(ctx, batch)
			deleted += n
			if err != nil {
				return deleted, err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		r.logger.Error("Failed to scan cache keys", zap.String("pattern", pattern), zap.Error(err))
		return deleted, fmt.Errorf("cache scan error: %w", err)
	}

	if len(batch) > 0 {
		n, err := r.deleteBatch(ctx, batch)
		deleted += n
		if err != nil {
			return deleted, err
		}
	}

	r.logger.Debug("Cache keys deleted by pattern",
		zap.String("pattern", pattern),
		zap.Int("deleted", deleted))
	return deleted, nil
}

func (r *cacheRepository) deleteBatch(ctx context.Context, keys []string) (int, error) {
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("Failed to delete cache batch", zap.Int("keys", len(keys)), zap.Error(err))
		return 0, fmt.Errorf("cache delete error: %w", err)
	}
	return len(keys), nil
}
