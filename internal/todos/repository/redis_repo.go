package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	todoKeyPrefix = "todos:item:"      // todo JSON: todos:item:{id}
	todoIndexKey  = "todos:by_created" // sorted set of ids scored by created_at (unix micros)
)

// RedisStore persists todos in redis
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		now:    time.Now,
	}
}

// Create stores the todo and indexes it by creation time
func (r *RedisStore) Create(ctx context.Context, task string) (*domain.Todo, error) {
	t := domain.Todo{
		ID:        uuid.New().String(),
		Task:      task,
		CreatedAt: r.now().UTC().Truncate(time.Microsecond),
	}

	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal todo: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.todoKey(t.ID), data, 0)
	pipe.ZAdd(ctx, todoIndexKey, redis.Z{
		Score:  float64(t.CreatedAt.UnixMicro()),
		Member: t.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return &t, nil
}

// List returns todos newest first
func (r *RedisStore) List(ctx context.Context) ([]domain.Todo, error) {
	ids, err := r.client.ZRevRange(ctx, todoIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list todo ids: %w", err)
	}

	out := make([]domain.Todo, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.todoKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			// index entry without a body; skip it
			continue
		}
		var t domain.Todo
		if err := json.Unmarshal([]byte(s), &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal todo: %w", err)
		}
		out = append(out, t)
	}

	return out, nil
}

// Delete removes the todo and its index entry
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, r.todoKey(id))
	pipe.ZRem(ctx, todoIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if del.Val() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) todoKey(id string) string {
	return fmt.Sprintf("%s%s", todoKeyPrefix, id)
}
