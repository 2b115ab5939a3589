package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemory_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Load(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Save(ctx, "a", []byte("hello")))
	value, err := m.Load(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "hello", string(value))

	// Zmiana zwróconego bufora nie może wpływać na zapisaną wartość
	value[0] = 'j'
	again, err := m.Load(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "hello", string(again))

	require.NoError(t, m.Delete(ctx, "a"))
	_, err = m.Load(ctx, "a")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Delete(ctx, "a"), "deleting a missing key is not an error")
}

func TestLoadJSON(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	def := sample{Name: "default", Count: 1}

	got, err := LoadJSON(ctx, m, "absent", def)
	require.NoError(t, err)
	require.Equal(t, def, got)

	require.NoError(t, SaveJSON(ctx, m, "present", sample{Name: "stored", Count: 7}))
	got, err = LoadJSON(ctx, m, "present", def)
	require.NoError(t, err)
	require.Equal(t, sample{Name: "stored", Count: 7}, got)

	require.NoError(t, m.Save(ctx, "broken", []byte("{not json")))
	got, err = LoadJSON(ctx, m, "broken", def)
	require.NoError(t, err)
	require.Equal(t, def, got)
}

type failingStore struct{ Store }

func (failingStore) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestLoadJSON_BackendError(t *testing.T) {
	got, err := LoadJSON(context.Background(), failingStore{}, "x", 42)
	require.Error(t, err)
	require.Equal(t, 42, got)
}

func TestPrefixed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	a := Prefixed(m, "desktop/a/")
	b := Prefixed(m, "desktop/b/")

	require.NoError(t, a.Save(ctx, "k", []byte("1")))
	require.NoError(t, b.Save(ctx, "k", []byte("2")))

	va, err := a.Load(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "1", string(va))

	vb, err := b.Load(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "2", string(vb))

	require.ElementsMatch(t, []string{"desktop/a/k", "desktop/b/k"}, m.Keys())

	require.NoError(t, a.Delete(ctx, "k"))
	_, err = a.Load(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = b.Load(ctx, "k")
	require.NoError(t, err)
}
