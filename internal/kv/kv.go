// Package kv defines the key-value persistence contract shared by every
// desktop component and a handful of helpers around it.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

var ErrNotFound = errors.New("key not found")

// Store persists opaque values under string keys. Implementations must be
// safe for concurrent use.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON decodes the value stored at key. It returns def when the key is
// absent or holds something that does not decode into T.
func LoadJSON[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	data, err := s.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return def, nil
		}
		return def, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		log.Printf("WARN: Ignoring unparseable value at key %q: %v", key, err)
		return def, nil
	}
	return value, nil
}

func SaveJSON(ctx context.Context, s Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}
	return s.Save(ctx, key, data)
}
