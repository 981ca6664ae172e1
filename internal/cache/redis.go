// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ratnasetu/marketplace-backend/internal/config"
)

// Cache is a read-through cache for hot public catalog lookups. Every method
// is best-effort: a Redis failure is logged and the caller falls back to the
// database.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg config.RedisConfig) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Redis unavailable, catalog cache disabled")
		return &Cache{}
	}

	return &Cache{
		client: client,
		ttl:    time.Duration(cfg.CacheTTL) * time.Second,
	}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).WithField("key", key).Warn("Cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache entry corrupt, dropping")
		c.client.Del(ctx, key)
		return false
	}

	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logrus.WithError(err).Warn("Cache invalidation failed")
	}
}

// DeleteByPrefix drops every key under a prefix, used when bucket membership
// changes on publish.
func (c *Cache) DeleteByPrefix(ctx context.Context, prefix string) {
	if c == nil || c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logrus.WithError(err).Warn("Cache scan failed")
		return
	}
	if len(keys) > 0 {
		c.Delete(ctx, keys...)
	}
}

// Key helpers

func PublicationKey(domain, skuID string) string {
	return fmt.Sprintf("catalog:%s:sku:%s", domain, skuID)
}

func BucketPrefix(domain string) string {
	return fmt.Sprintf("catalog:%s:list:", domain)
}

func BucketKey(domain, bucket, key string, page, limit int) string {
	return fmt.Sprintf("%s%s:%s:p%d:l%d", BucketPrefix(domain), bucket, key, page, limit)
}
