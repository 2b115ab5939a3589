package backend

import (
	"context"
	"testing"

	"serwer-pulpitu/internal/config"
	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/storage"

	"github.com/stretchr/testify/require"
)

func TestOpen_File(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: config.BackendFile, Path: t.TempDir()}}

	store, closer, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer closer()
	require.IsType(t, &storage.LocalStorage{}, store)

	require.NoError(t, store.Save(context.Background(), "k", []byte("v")))
	got, err := store.Load(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)
}

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: config.BackendMemory}}

	store, closer, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer closer()
	require.IsType(t, &kv.Memory{}, store)
}

func TestOpen_Unknown(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: "tape"}}

	_, closer, err := Open(context.Background(), cfg)
	require.Error(t, err)
	require.NotNil(t, closer)
}
