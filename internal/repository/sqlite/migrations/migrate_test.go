package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))

	t.Run("should create the tasks table", func(t *testing.T) {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='tasks'").Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, "tasks", name)
	})

	t.Run("should record the applied version", func(t *testing.T) {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		require.NoError(t, RunMigrations(db))

		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("should create the owner listing index", func(t *testing.T) {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name='idx_tasks_user_created'").Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, "idx_tasks_user_created", name)
	})
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Contains(t, migrations[0].Up, "CREATE TABLE")
	assert.Contains(t, migrations[0].Down, "DROP")

	for i := 1; i < len(migrations); i++ {
		assert.Greater(t, migrations[i].Version, migrations[i-1].Version)
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		filename string
		want     int
	}{
		{filename: "000001_create_tasks.up.sql", want: 1},
		{filename: "000042_add_column.up.sql", want: 42},
		{filename: "garbage.up.sql", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, extractVersion(tt.filename))
		})
	}
}
