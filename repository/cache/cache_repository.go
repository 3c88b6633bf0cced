package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisclient "github.com/blindtreasure/orderview/cmd/redis"
	"github.com/blindtreasure/orderview/constant"
	"github.com/blindtreasure/orderview/model"
	"github.com/redis/go-redis/v9"
)

// CacheRepository stores derived bucket views between refreshes. All methods
// are no-ops when Redis is not configured, so the service degrades to
// recomputing on every request rather than failing.
type CacheRepository interface {
	GetBucket(ctx context.Context, userID string, bucket constant.Bucket, page, pageSize int) ([]model.DisplayRecord, bool)
	SetBucket(ctx context.Context, userID string, bucket constant.Bucket, page, pageSize int, records []model.DisplayRecord, ttl time.Duration) error
	InvalidateUser(ctx context.Context, userID string) error
}

type cacheRepositoryImpl struct{}

// NewCacheRepository returns a Redis-backed CacheRepository.
func NewCacheRepository() CacheRepository {
	return &cacheRepositoryImpl{}
}

func bucketKey(userID string, bucket constant.Bucket, page, pageSize int) string {
	return fmt.Sprintf("orderview:%s:bucket:%s:%d:%d", userID, bucket, page, pageSize)
}

func userPattern(userID string) string {
	return fmt.Sprintf("orderview:%s:bucket:*", userID)
}

// GetBucket returns the cached records for one bucket page, if present.
func (r *cacheRepositoryImpl) GetBucket(ctx context.Context, userID string, bucket constant.Bucket, page, pageSize int) ([]model.DisplayRecord, bool) {
	client := redisclient.Get()
	if client == nil {
		return nil, false
	}
	raw, err := client.Get(ctx, bucketKey(userID, bucket, page, pageSize)).Bytes()
	if err != nil {
		return nil, false
	}
	var records []model.DisplayRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false
	}
	return records, true
}

// SetBucket caches the records for one bucket page with a TTL.
func (r *cacheRepositoryImpl) SetBucket(ctx context.Context, userID string, bucket constant.Bucket, page, pageSize int, records []model.DisplayRecord, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return client.Set(ctx, bucketKey(userID, bucket, page, pageSize), raw, ttl).Err()
}

// InvalidateUser drops every cached bucket page for one user. Used by the
// order-events consumer when an upstream status changes.
func (r *cacheRepositoryImpl) InvalidateUser(ctx context.Context, userID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	iter := client.Scan(ctx, 0, userPattern(userID), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil && err != redis.Nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
