// Package view holds the client-side todo list state: what the page shows
// and how it reacts to its own create/delete requests.
package view

import (
	"context"
	"strings"
	"sync"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
)

const (
	ErrFetch  = "Failed to fetch todos"
	ErrAdd    = "Failed to add todo"
	ErrDelete = "Failed to delete todo"
)

// API is the subset of the todo client the view needs.
type API interface {
	List(ctx context.Context) ([]domain.Todo, error)
	Create(ctx context.Context, task string) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
}

// View is the locally owned copy of the todo list. The list changes only
// when one of its own requests completes.
type View struct {
	api API

	mu     sync.Mutex
	todos  []domain.Todo
	errMsg string
	loaded bool
}

func New(api API) *View {
	return &View{api: api, todos: []domain.Todo{}}
}

// Load fetches the collection. On failure the list is emptied and the fetch
// error is shown.
func (v *View) Load(ctx context.Context) {
	todos, err := v.api.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loaded = true
	if err != nil {
		v.todos = []domain.Todo{}
		v.errMsg = ErrFetch
		return
	}
	v.todos = append([]domain.Todo(nil), todos...)
	v.errMsg = ""
}

// Submit creates a todo from text. Blank text is refused without a request
// and Submit reports false. A created todo is prepended to the list.
func (v *View) Submit(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	todo, err := v.api.Create(ctx, text)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.errMsg = ErrAdd
		return false
	}
	v.todos = append([]domain.Todo{*todo}, v.todos...)
	return true
}

// Delete removes id on the server, then drops it from the local list.
func (v *View) Delete(ctx context.Context, id string) bool {
	err := v.api.Delete(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.errMsg = ErrDelete
		return false
	}

	kept := v.todos[:0]
	for _, t := range v.todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	v.todos = kept
	return true
}

// Todos returns a copy of the current list.
func (v *View) Todos() []domain.Todo {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.Todo(nil), v.todos...)
}

// Err returns the latest error message, or "".
func (v *View) Err() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

func (v *View) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}
