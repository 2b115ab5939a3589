// Package backend opens the kv.Store selected by configuration.
package backend

import (
	"context"
	"fmt"
	"log"

	"serwer-pulpitu/internal/config"
	"serwer-pulpitu/internal/database"
	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/mongostore"
	"serwer-pulpitu/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Open connects to the configured backend. The returned closer releases its
// connections and is never nil.
func Open(ctx context.Context, cfg *config.Config) (kv.Store, func(), error) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case config.BackendFile:
		ls, err := storage.NewLocalStorage(cfg.Storage.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to initialise local storage: %w", err)
		}
		log.Printf("State files will be kept in: %s", cfg.Storage.Path)
		return ls, noop, nil

	case config.BackendPostgres:
		dbpool, err := pgxpool.New(ctx, cfg.DB.Source)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := dbpool.Ping(ctx); err != nil {
			dbpool.Close()
			return nil, noop, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Println("Connected to PostgreSQL")
		return database.NewStore(dbpool), dbpool.Close, nil

	case config.BackendMongo:
		client, err := mongostore.NewClient(ctx, cfg.Mongo.URL)
		if err != nil {
			return nil, noop, err
		}
		closer := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("WARN: Failed to disconnect from MongoDB: %v", err)
			}
		}
		log.Printf("Connected to MongoDB, database %s", cfg.Mongo.Database)
		return mongostore.NewStore(client.Database(cfg.Mongo.Database)), closer, nil

	case config.BackendMemory:
		log.Println("WARN: Using in-memory backend, state is lost on restart")
		return kv.NewMemory(), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
