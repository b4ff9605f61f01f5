package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
	"github.com/google/uuid"
)

// MemoryStore keeps todos in process memory. Used for local runs and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	todos map[string]domain.Todo
	now   func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos: make(map[string]domain.Todo),
		now:   time.Now,
	}
}

// Create stores a new todo with a fresh id and timestamp
func (s *MemoryStore) Create(ctx context.Context, task string) (*domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := domain.Todo{
		ID:        uuid.New().String(),
		Task:      task,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.todos[t.ID] = t
	s.mu.Unlock()

	return &t, nil
}

// List returns all todos ordered by created_at desc
func (s *MemoryStore) List(ctx context.Context) ([]domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]domain.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, t)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a todo by id
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.todos, id)
	return nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
