package mongostore

import (
	"context"
	"log"
	"os"
	"testing"

	"serwer-pulpitu/internal/kv"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var testStore *Store

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		log.Fatalf("failed to start mongodb container: %s", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("failed to get connection string: %s", err)
	}

	client, err := NewClient(ctx, uri)
	if err != nil {
		log.Fatalf("failed to connect to test database: %s", err)
	}

	testStore = NewStore(client.Database("desktop_test"))

	code := m.Run()

	_ = client.Disconnect(ctx)
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate mongodb container: %s", err)
	}
	os.Exit(code)
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, testStore.Save(ctx, "desktop/m/system_notifications", []byte(`[]`)))

	value, err := testStore.Load(ctx, "desktop/m/system_notifications")
	require.NoError(t, err)
	require.Equal(t, `[]`, string(value))

	// Drugi zapis aktualizuje istniejący dokument zamiast tworzyć nowy
	require.NoError(t, testStore.Save(ctx, "desktop/m/system_notifications", []byte(`[1]`)))
	value, err = testStore.Load(ctx, "desktop/m/system_notifications")
	require.NoError(t, err)
	require.Equal(t, `[1]`, string(value))

	count, err := testStore.db.Collection(entryCollection).CountDocuments(ctx, bson.M{"_id": "desktop/m/system_notifications"})
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestStore_LoadMissing(t *testing.T) {
	_, err := testStore.Load(context.Background(), "missing")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, testStore.Save(ctx, "to_delete", []byte("x")))
	require.NoError(t, testStore.Delete(ctx, "to_delete"))

	_, err := testStore.Load(ctx, "to_delete")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, testStore.Delete(ctx, "to_delete"))
}
