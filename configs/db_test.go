package configs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreReopensClosedHandle(t *testing.T) {
	cfg := &Config{DBSource: filepath.Join(t.TempDir(), "test.db")}

	store, err := OpenStore(cfg)
	require.NoError(t, err)

	db, err := store.DB()
	require.NoError(t, err)

	// close the underlying handle behind the store's back
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// the next access reopens transparently
	db2, err := store.DB()
	require.NoError(t, err)
	sqlDB2, err := db2.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB2.Ping())

	require.NoError(t, store.Close())
}
