package automigrate

import (
	"fmt"

	"github.com/WangWilly/xGuild/migration"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

////////////////////////////////////////////////////////////////////////////////

type DatabaseType string

const (
	PostgreSQL DatabaseType = "postgres"
	SQLite     DatabaseType = "sqlite"
)

////////////////////////////////////////////////////////////////////////////////

func driverNameToDatabaseType(driverName string) DatabaseType {
	switch driverName {
	case "postgres":
		return PostgreSQL
	case "sqlite3":
		return SQLite
	default:
		return ""
	}
}

func getDriver(databaseType DatabaseType, db *sqlx.DB) (database.Driver, error) {
	switch databaseType {
	case PostgreSQL:
		return postgres.WithInstance(db.DB, &postgres.Config{})
	case SQLite:
		return sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("unsupported database type: %q", databaseType)
	}
}

// NewMigrate builds a migrate instance over the embedded migrations of the
// dialect behind db. Closing the instance closes db as well.
func NewMigrate(db *sqlx.DB) (*migrate.Migrate, error) {
	if db == nil {
		return nil, fmt.Errorf("no database connection provided")
	}
	databaseType := driverNameToDatabaseType(db.DriverName())

	driver, err := getDriver(databaseType, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create database driver: %w", err)
	}
	source, err := iofs.New(migration.FS, string(databaseType))
	if err != nil {
		return nil, fmt.Errorf("failed to open migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, string(databaseType), driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}
