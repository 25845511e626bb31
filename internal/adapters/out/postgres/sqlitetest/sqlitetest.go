// Package sqlitetest opens a migrated SQLite ledger for tests that need real
// persistence without a PostgreSQL container.
package sqlitetest

import (
	"path/filepath"
	"testing"

	"foodorder/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a database in a file under t.TempDir, closed when the test ends.
// It allows a single connection, so a test must not query it directly while a
// unit of work is open.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "ledger.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, postgres.Migrate(t.Context(), db))
	return db
}
