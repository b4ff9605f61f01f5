package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// createAttempts bounds the id-collision retries in Create.
const createAttempts = 3

// PgxPool is the part of *pgxpool.Pool the store uses.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PgxStore persists todos in postgres through a pgx pool.
type PgxStore struct {
	db PgxPool
}

func NewPgxStore(db PgxPool) *PgxStore {
	return &PgxStore{db: db}
}

// Migrate creates the todos table if it does not exist.
func (r *PgxStore) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("migrate todos: %w", err)
	}
	return nil
}

func (r *PgxStore) Create(ctx context.Context, task string) (*domain.Todo, error) {
	const q = `
insert into todos (id, task)
values ($1, $2)
returning id, task, created_at;
`
	for i := 0; i < createAttempts; i++ {
		var t domain.Todo
		err := r.db.QueryRow(ctx, q, uuid.New().String(), task).
			Scan(&t.ID, &t.Task, &t.CreatedAt)
		if err == nil {
			return &t, nil
		}

		// unique violation on id → retry
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	return nil, fmt.Errorf("failed to generate unique todo id")
}

func (r *PgxStore) List(ctx context.Context) ([]domain.Todo, error) {
	const q = `
select id, task, created_at
from todos
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q)
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
	return out, rows.Err()
}

func (r *PgxStore) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `delete from todos where id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgxStore) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
