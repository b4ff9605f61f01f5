package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/repository"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("connection refused")

type failingStore struct{}

func (failingStore) Create(context.Context, string) (*domain.Todo, error) { return nil, errDown }
func (failingStore) List(context.Context) ([]domain.Todo, error)          { return nil, errDown }
func (failingStore) Delete(context.Context, string) error                 { return errDown }

// unorderedStore returns todos oldest first to check the service ordering.
type unorderedStore struct {
	todos []domain.Todo
}

func (s *unorderedStore) Create(context.Context, string) (*domain.Todo, error) { return nil, nil }
func (s *unorderedStore) List(context.Context) ([]domain.Todo, error)          { return s.todos, nil }
func (s *unorderedStore) Delete(context.Context, string) error                 { return nil }

func TestTodoService_CreateThenList(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTodoService(repository.NewMemoryStore())

	before := time.Now()
	created, err := svc.CreateTodo(ctx, "buy milk")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "buy milk", created.Task)
	assert.False(t, created.CreatedAt.Before(before), "createdAt must not predate the call")

	todos, err := svc.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, *created, todos[0])
}

func TestTodoService_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTodoService(repository.NewMemoryStore())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		todo, err := svc.CreateTodo(ctx, "task")
		require.NoError(t, err)
		assert.False(t, seen[todo.ID], "duplicate id %s", todo.ID)
		seen[todo.ID] = true
	}
}

func TestTodoService_ListOrdering(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first from a real store", func(t *testing.T) {
		svc := service.NewTodoService(repository.NewMemoryStore())
		for _, task := range []string{"one", "two", "three", "four"} {
			_, err := svc.CreateTodo(ctx, task)
			require.NoError(t, err)
		}

		todos, err := svc.ListTodos(ctx)
		require.NoError(t, err)
		require.Len(t, todos, 4)
		for i := 1; i < len(todos); i++ {
			assert.False(t, todos[i-1].CreatedAt.Before(todos[i].CreatedAt))
		}
	})

	t.Run("reorders a store that returns oldest first", func(t *testing.T) {
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		store := &unorderedStore{todos: []domain.Todo{
			{ID: "a", Task: "a", CreatedAt: base},
			{ID: "b", Task: "b", CreatedAt: base.Add(time.Minute)},
			{ID: "c", Task: "c", CreatedAt: base.Add(2 * time.Minute)},
		}}
		svc := service.NewTodoService(store)

		todos, err := svc.ListTodos(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b", "a"}, []string{todos[0].ID, todos[1].ID, todos[2].ID})
	})

	t.Run("empty store gives an empty, non-nil list", func(t *testing.T) {
		svc := service.NewTodoService(&unorderedStore{})
		todos, err := svc.ListTodos(ctx)
		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})
}

func TestTodoService_CreateWithoutTask(t *testing.T) {
	svc := service.NewTodoService(repository.NewMemoryStore())

	todo, err := svc.CreateTodo(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", todo.Task)
	assert.NotEmpty(t, todo.ID)
}

func TestTodoService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTodoService(repository.NewMemoryStore())

	t.Run("removes the todo", func(t *testing.T) {
		keep, err := svc.CreateTodo(ctx, "keep")
		require.NoError(t, err)
		gone, err := svc.CreateTodo(ctx, "gone")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTodo(ctx, gone.ID))

		todos, err := svc.ListTodos(ctx)
		require.NoError(t, err)
		require.Len(t, todos, 1)
		assert.Equal(t, keep.ID, todos[0].ID)
	})

	t.Run("missing id is a storage error wrapping ErrNotFound", func(t *testing.T) {
		err := svc.DeleteTodo(ctx, "does-not-exist")
		require.Error(t, err)
		assert.True(t, domain.IsStorageError(err))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTodoService_StoreFailures(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTodoService(failingStore{})

	_, err := svc.ListTodos(ctx)
	assert.True(t, domain.IsStorageError(err))
	assert.ErrorIs(t, err, errDown)

	_, err = svc.CreateTodo(ctx, "x")
	assert.True(t, domain.IsStorageError(err))
	assert.ErrorIs(t, err, errDown)

	err = svc.DeleteTodo(ctx, "x")
	assert.True(t, domain.IsStorageError(err))
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
