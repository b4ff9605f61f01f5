package service

import (
	"context"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
)

// Store is the persistence collaborator behind the todo service.
// Implementations assign ID and CreatedAt on Create, return List newest
// first, and report a Delete that matched nothing as domain.ErrNotFound.
type Store interface {
	Create(ctx context.Context, task string) (*domain.Todo, error)
	List(ctx context.Context) ([]domain.Todo, error)
	Delete(ctx context.Context, id string) error
}
