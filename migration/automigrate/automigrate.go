package automigrate

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// AutoMigrateConfig holds configuration for auto-migration
type AutoMigrateConfig struct {
	SqlxDB *sqlx.DB
}

////////////////////////////////////////////////////////////////////////////////

// AutoMigrateUp runs all pending migrations up
func AutoMigrateUp(config AutoMigrateConfig) error {
	logger := log.WithFields(log.Fields{
		"caller": "AutoMigrateUp",
	})
	logger.Info("Starting auto-migration...")

	m, err := NewMigrate(config.SqlxDB)
	if err != nil {
		return err
	}
	// Note: Don't close the migrate instance when using WithInstance as it will close the underlying DB

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		logger.Warn("Database is in dirty state, attempting to continue...")
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.WithField("version", currentVersion).Info("Database is already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}

	logger.WithFields(log.Fields{
		"from_version": currentVersion,
		"to_version":   newVersion,
	}).Info("Auto-migration completed successfully")
	return nil
}

////////////////////////////////////////////////////////////////////////////////

// GetMigrationVersion returns the current migration version
func GetMigrationVersion(config AutoMigrateConfig) (uint, bool, error) {
	m, err := NewMigrate(config.SqlxDB)
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}
