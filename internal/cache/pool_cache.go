package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jeopardy-server/internal/model"
)

// PoolCache caches per-topic candidate pools from the content source so
// repeated seeding runs do not re-query the endpoint.
type PoolCache interface {
	Get(ctx context.Context, topic string) (*model.TopicWorks, error)
	Set(ctx context.Context, topic string, works *model.TopicWorks) error
	Delete(ctx context.Context, topic string) error
}

type poolCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPoolCache creates a new candidate pool cache.
func NewPoolCache(client *redis.Client, ttl time.Duration) PoolCache {
	return &poolCache{client: client, ttl: ttl}
}

func (c *poolCache) key(topic string) string {
	return fmt.Sprintf("pool:%s", topic)
}

func (c *poolCache) Get(ctx context.Context, topic string) (*model.TopicWorks, error) {
	data, err := c.client.Get(ctx, c.key(topic)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var works model.TopicWorks
	if err := json.Unmarshal([]byte(data), &works); err != nil {
		return nil, err
	}
	return &works, nil
}

func (c *poolCache) Set(ctx context.Context, topic string, works *model.TopicWorks) error {
	data, err := json.Marshal(works)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(topic), data, c.ttl).Err()
}

func (c *poolCache) Delete(ctx context.Context, topic string) error {
	return c.client.Del(ctx, c.key(topic)).Err()
}
