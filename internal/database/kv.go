package database

import (
	"context"
	"fmt"

	"serwer-pulpitu/internal/kv"
)

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	entry, err := s.GetEntry(ctx, key)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("key %s: %w", key, kv.ErrNotFound)
	}
	return entry.Value, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	return s.ExecTx(ctx, func(q *Queries) error {
		return q.UpsertEntry(ctx, key, value)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.DeleteEntry(ctx, key)
	return err
}

var _ kv.Store = (*Store)(nil)
