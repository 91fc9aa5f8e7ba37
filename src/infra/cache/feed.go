// Package cache implements the redis-backed feed cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"kioku/src/core/domain"
	"kioku/src/infra/config"
)

const feedKey = "kioku:feed"

// FeedCache caches the aggregated feed as a single JSON value with a TTL.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewFeedCache(cfg config.RedisConfig, log *slog.Logger) *FeedCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &FeedCache{client: client, ttl: cfg.FeedTTL, log: log}
}

func (c *FeedCache) Get(ctx context.Context) ([]domain.FeedItem, bool, error) {
	raw, err := c.client.Get(ctx, feedKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var items []domain.FeedItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (c *FeedCache) Set(ctx context.Context, items []domain.FeedItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, feedKey, raw, c.ttl).Err()
}

func (c *FeedCache) Close() error {
	return c.client.Close()
}
