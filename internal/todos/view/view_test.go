package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	listed    []domain.Todo
	listErr   error
	createErr error
	deleteErr error

	creates []string
	deletes []string
	lists   int
}

func (f *fakeAPI) List(context.Context) ([]domain.Todo, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed, nil
}

func (f *fakeAPI) Create(_ context.Context, task string) (*domain.Todo, error) {
	f.creates = append(f.creates, task)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Todo{ID: "new-" + task, Task: task, CreatedAt: time.Now()}, nil
}

func (f *fakeAPI) Delete(_ context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return f.deleteErr
}

func ids(todos []domain.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}

func seeded() *fakeAPI {
	return &fakeAPI{listed: []domain.Todo{
		{ID: "b", Task: "second"},
		{ID: "a", Task: "first"},
	}}
}

func TestView_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the fetched list", func(t *testing.T) {
		v := New(seeded())
		assert.False(t, v.Loaded())
		v.Load(ctx)
		assert.True(t, v.Loaded())
		assert.Equal(t, []string{"b", "a"}, ids(v.Todos()))
		assert.Empty(t, v.Err())
	})

	t.Run("failure empties the list and sets the error", func(t *testing.T) {
		api := seeded()
		v := New(api)
		v.Load(ctx)

		api.listErr = errors.New("boom")
		v.Load(ctx)
		assert.Empty(t, v.Todos())
		assert.Equal(t, ErrFetch, v.Err())
	})
}

func TestView_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("blank text never reaches the server", func(t *testing.T) {
		api := seeded()
		v := New(api)
		for _, text := range []string{"", "   ", "\t\n"} {
			assert.False(t, v.Submit(ctx, text))
		}
		assert.Empty(t, api.creates)
		assert.Empty(t, v.Err())
	})

	t.Run("prepends the created todo without refetching", func(t *testing.T) {
		api := seeded()
		v := New(api)
		v.Load(ctx)

		require.True(t, v.Submit(ctx, "buy milk"))
		assert.Equal(t, []string{"new-buy milk", "b", "a"}, ids(v.Todos()))
		assert.Equal(t, 1, api.lists)
	})

	t.Run("failure keeps the list and sets the error", func(t *testing.T) {
		api := seeded()
		v := New(api)
		v.Load(ctx)

		api.createErr = errors.New("boom")
		assert.False(t, v.Submit(ctx, "x"))
		assert.Equal(t, []string{"b", "a"}, ids(v.Todos()))
		assert.Equal(t, ErrAdd, v.Err())
	})
}

func TestView_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the id locally", func(t *testing.T) {
		api := seeded()
		v := New(api)
		v.Load(ctx)

		require.True(t, v.Delete(ctx, "b"))
		assert.Equal(t, []string{"a"}, ids(v.Todos()))
		assert.Equal(t, []string{"b"}, api.deletes)
		assert.Equal(t, 1, api.lists)
	})

	t.Run("unknown id succeeds without touching the list", func(t *testing.T) {
		v := New(seeded())
		v.Load(ctx)

		require.True(t, v.Delete(ctx, "zzz"))
		assert.Equal(t, []string{"b", "a"}, ids(v.Todos()))
	})

	t.Run("failure keeps the list and sets the error", func(t *testing.T) {
		api := seeded()
		v := New(api)
		v.Load(ctx)

		api.deleteErr = errors.New("boom")
		assert.False(t, v.Delete(ctx, "a"))
		assert.Equal(t, []string{"b", "a"}, ids(v.Todos()))
		assert.Equal(t, ErrDelete, v.Err())
	})
}

func TestView_LatestErrorWins(t *testing.T) {
	ctx := context.Background()
	api := seeded()
	api.createErr = errors.New("boom")
	api.deleteErr = errors.New("boom")
	v := New(api)
	v.Load(ctx)

	v.Submit(ctx, "x")
	assert.Equal(t, ErrAdd, v.Err())
	v.Delete(ctx, "a")
	assert.Equal(t, ErrDelete, v.Err())
}
