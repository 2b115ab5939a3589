package database

import (
	"context"
	"testing"

	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/vfs"

	"github.com/stretchr/testify/require"
)

// Drzewo plików zapisane w PostgreSQL musi przetrwać ponowne otwarcie.
func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	backend := kv.Prefixed(testStore, "desktop/pg-reopen/")

	files, err := vfs.New(ctx, backend)
	require.NoError(t, err)

	folder, err := files.CreateFolder(ctx, "Reports", vfs.RootID)
	require.NoError(t, err)
	report, err := files.CreateFile(ctx, "q3.txt", folder.ID, "numbers")
	require.NoError(t, err)

	reopened, err := vfs.New(ctx, backend)
	require.NoError(t, err)
	require.Equal(t, files.Records(), reopened.Records())

	path, err := reopened.Path(report.ID)
	require.NoError(t, err)
	require.Equal(t, "/Reports/q3.txt", path)
}
