package bootstrap

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/todo-backend/config"
	"github.com/GoSim-25-26J-441/todo-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/todo-backend/internal/storage/redis"
	"github.com/GoSim-25-26J-441/todo-backend/internal/storage/sqlite"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/repository"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/service"
)

// Store is a todo store that can also report its health.
type Store interface {
	service.Store
	Ping(ctx context.Context) error
}

// OpenedStore is the configured store plus whatever closes its connection.
type OpenedStore struct {
	Store
	Driver string
	Close  func()
}

// OpenStore connects the store selected by STORE_DRIVER and creates its
// schema where one is needed.
func OpenStore(ctx context.Context, cfg *config.Config) (*OpenedStore, error) {
	driver := cfg.Store.Driver

	switch driver {
	case config.DriverMemory:
		return &OpenedStore{Store: repository.NewMemoryStore(), Driver: driver, Close: func() {}}, nil

	case config.DriverPgx:
		pool, err := OpenDB(ctx, DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			return nil, err
		}
		store := repository.NewPgxStore(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &OpenedStore{Store: store, Driver: driver, Close: pool.Close}, nil

	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		store := repository.NewSQLStore(db, repository.Postgres)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &OpenedStore{Store: store, Driver: driver, Close: func() { _ = db.Close() }}, nil

	case config.DriverSQLite:
		db, err := sqlite.NewConnection(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		store := repository.NewSQLStore(db, repository.SQLite)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &OpenedStore{Store: store, Driver: driver, Close: func() { _ = db.Close() }}, nil

	case config.DriverRedis:
		client, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &OpenedStore{
			Store:  repository.NewRedisStore(client),
			Driver: driver,
			Close:  func() { _ = client.Close() },
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", driver)
}
