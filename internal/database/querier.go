package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Entry struct {
	Key       string
	Value     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) GetEntry(ctx context.Context, key string) (*Entry, error) {
	query := `
		SELECT key, value, created_at, updated_at
		FROM kv_entries
		WHERE key = $1
	`
	var entry Entry
	err := q.db.QueryRow(ctx, query, key).Scan(
		&entry.Key,
		&entry.Value,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

func (q *Queries) UpsertEntry(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_entries (key, value, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	_, err := q.db.Exec(ctx, query, key, value, time.Now())
	return err
}

func (q *Queries) DeleteEntry(ctx context.Context, key string) (bool, error) {
	query := `DELETE FROM kv_entries WHERE key = $1`
	res, err := q.db.Exec(ctx, query, key)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
