// Package dbtest opens throwaway migrated databases for repository tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/WangWilly/xGuild/migration/automigrate"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/database"
	"github.com/jmoiron/sqlx"
)

// OpenSqlite returns a migrated SQLite database backed by a temp file. It is
// opened the same way as in production and closed when the test finishes.
func OpenSqlite(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := database.ConnectWithConfig(database.DatabaseConfig{
		Type: database.DATABASE_TYPE_SQLITE,
		Path: filepath.Join(t.TempDir(), "xguild_test.db"),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := automigrate.AutoMigrateUp(automigrate.AutoMigrateConfig{SqlxDB: db}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}
