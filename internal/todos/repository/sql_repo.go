package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
	"github.com/google/uuid"
)

// Dialect holds the per-driver SQL used by SQLStore.
type Dialect struct {
	Name   string
	Schema string
	insert string
	list   string
	delete string
}

var (
	// Postgres is used with the lib/pq driver.
	Postgres = Dialect{
		Name:   "postgres",
		Schema: PostgresSchema,
		insert: `INSERT INTO todos (id, task, created_at) VALUES ($1, $2, $3)`,
		list:   `SELECT id, task, created_at FROM todos ORDER BY created_at DESC`,
		delete: `DELETE FROM todos WHERE id = $1`,
	}

	// SQLite is used with the modernc.org/sqlite driver.
	SQLite = Dialect{
		Name:   "sqlite",
		Schema: SQLiteSchema,
		insert: `INSERT INTO todos (id, task, created_at) VALUES (?, ?, ?)`,
		list:   `SELECT id, task, created_at FROM todos ORDER BY created_at DESC`,
		delete: `DELETE FROM todos WHERE id = ?`,
	}
)

// SQLStore persists todos through database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// NewSQLStore creates a store for the given database and dialect
func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect, now: time.Now}
}

// Migrate creates the todos table if it does not exist.
func (r *SQLStore) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.Schema); err != nil {
		return fmt.Errorf("migrate todos (%s): %w", r.dialect.Name, err)
	}
	return nil
}

// Create inserts a new todo
func (r *SQLStore) Create(ctx context.Context, task string) (*domain.Todo, error) {
	t := domain.Todo{
		ID:        uuid.New().String(),
		Task:      task,
		CreatedAt: r.now().UTC().Truncate(time.Microsecond),
	}

	if _, err := r.db.ExecContext(ctx, r.dialect.insert, t.ID, t.Task, t.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return &t, nil
}

// List returns all todos, newest first
func (r *SQLStore) List(ctx context.Context) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.list)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Todo, 0, 16)
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Task, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a todo by id
func (r *SQLStore) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, r.dialect.delete, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SQLStore) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
