package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenMemoryAppliesMigrations(t *testing.T) {
	conn, err := Open(Config{Path: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	defer conn.Close()

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 2, count)

	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM readings").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocean.db")

	conn, err := Open(Config{Path: path}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	conn, err = Open(Config{Path: path}, zap.NewNop())
	require.NoError(t, err)
	defer conn.Close()

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestLoadMigrationsOrdered(t *testing.T) {
	m := NewMigrationManager(nil, zap.NewNop())

	migrations, err := m.LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "001_create_readings", migrations[0].Name)
	assert.Equal(t, 2, migrations[1].Version)
}

func TestConfigIsMemory(t *testing.T) {
	assert.True(t, Config{Path: ":memory:"}.IsMemory())
	assert.True(t, Config{Path: "file:x?mode=memory&cache=shared"}.IsMemory())
	assert.False(t, Config{Path: "./data/ocean.db"}.IsMemory())
}
