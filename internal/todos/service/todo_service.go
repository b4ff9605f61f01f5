package service

import (
	"context"
	"errors"
	"sort"

	"github.com/GoSim-25-26J-441/todo-backend/internal/logging"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
)

// TodoService handles todo business logic on top of a Store.
type TodoService struct {
	store Store
}

// NewTodoService creates a new todo service
func NewTodoService(store Store) *TodoService {
	return &TodoService{
		store: store,
	}
}

// ListTodos returns every todo, newest first.
func (s *TodoService) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	log := logging.FromContext(ctx)

	todos, err := s.store.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("operation", "list_todos").Msg("store list failed")
		return nil, &domain.StorageError{Op: "list", Err: err}
	}
	if todos == nil {
		todos = []domain.Todo{}
	}

	// stores already order by created_at; keep the contract even if one doesn't
	sort.SliceStable(todos, func(i, j int) bool {
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})

	log.Debug().Str("operation", "list_todos").Int("count", len(todos)).Msg("listed todos")
	return todos, nil
}

// CreateTodo stores a new todo. The task text is not validated.
func (s *TodoService) CreateTodo(ctx context.Context, task string) (*domain.Todo, error) {
	log := logging.FromContext(ctx)

	todo, err := s.store.Create(ctx, task)
	if err != nil {
		log.Error().Err(err).Str("operation", "create_todo").Msg("store create failed")
		return nil, &domain.StorageError{Op: "create", Err: err}
	}

	log.Info().Str("operation", "create_todo").Str("todo_id", todo.ID).Msg("created todo")
	return todo, nil
}

// DeleteTodo removes the todo with the given id. A missing record comes back
// as a StorageError wrapping domain.ErrNotFound.
func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	log := logging.FromContext(ctx)

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn().Str("operation", "delete_todo").Str("todo_id", id).Msg("todo not found")
		} else {
			log.Error().Err(err).Str("operation", "delete_todo").Str("todo_id", id).Msg("store delete failed")
		}
		return &domain.StorageError{Op: "delete", Err: err}
	}

	log.Info().Str("operation", "delete_todo").Str("todo_id", id).Msg("deleted todo")
	return nil
}
