package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	taskmodels "github.com/coincoast/memesboost-backend/internal/features/task/models"
	rplatform "github.com/coincoast/memesboost-backend/internal/platform/redis"
)

const activeTasksKey = "tasks:active"

// TaskCache provides Redis-based caching for the public task listing.
type TaskCache struct {
	client *rplatform.Client
	ttl    time.Duration
}

func NewTaskCache(client *rplatform.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{client: client, ttl: ttl}
}

// GetActive returns the cached listing, or (nil, nil) on a miss.
func (c *TaskCache) GetActive(ctx context.Context) ([]*taskmodels.Task, error) {
	v, err := c.client.Get(ctx, activeTasksKey).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var tasks []*taskmodels.Task
	if err := json.Unmarshal(v, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SetActive stores the listing under the shared key.
func (c *TaskCache) SetActive(ctx context.Context, tasks []*taskmodels.Task) error {
	b, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, activeTasksKey, b, c.ttl).Err()
}

// Invalidate removes the cached listing.
func (c *TaskCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, activeTasksKey).Err()
}
