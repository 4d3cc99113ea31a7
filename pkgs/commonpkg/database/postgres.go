package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

func postgresDSN(host, port, user, password, dbname string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host,
		port,
		user,
		password,
		dbname,
	)
}

func connectPostgres(host, port, user, password, dbname string) (*sqlx.DB, error) {
	logger := log.WithFields(log.Fields{
		"caller": "connectPostgres",
		"host":   host,
		"port":   port,
		"dbname": dbname,
	})

	db, err := sqlx.Connect("postgres", postgresDSN(host, port, user, password, dbname))
	if err != nil {
		logger.WithError(err).Error("Failed to connect to PostgreSQL")
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		logger.WithError(err).Error("Failed to ping PostgreSQL")
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info("Connected to PostgreSQL database")
	return db, nil
}
