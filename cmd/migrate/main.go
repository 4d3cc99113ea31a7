package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/WangWilly/xGuild/migration/automigrate"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/database"
	"github.com/WangWilly/xGuild/pkgs/config"
	"github.com/golang-migrate/migrate/v4"
	log "github.com/sirupsen/logrus"
)

const (
	usageText = `Migration tool for xGuild database

Usage:
  migrate [flags] [command]

Available Commands:
  up                   Run all available migrations
  down                 Revert all migrations
  steps [N]            Migrate up/down by N steps (can be negative)
  goto [version]       Migrate to specific version
  force [version]      Force set version without running migrations
  version              Print current migration version

Database Configuration:
  The database is read from the yaml config (-config) and can be
  overridden with DB_TYPE, DB_PATH, DB_HOST, DB_PORT, DB_USER,
  DB_PASSWORD and DB_NAME.

Examples:
  migrate up
  DB_TYPE=postgres DB_HOST=localhost DB_NAME=xguild migrate version
  migrate -config=./conf/xguild.yaml steps -1
`
)

var (
	confPath = flag.String("config", "./conf/xguild.yaml", "path of the yaml config")
	help     = flag.Bool("help", false, "Show help message")
	h        = flag.Bool("h", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help || *h {
		fmt.Print(usageText)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Print(usageText)
		os.Exit(1)
	}
	command := args[0]

	conf, err := config.ReadConfig(*confPath)
	if errors.Is(err, os.ErrNotExist) {
		conf = config.Default()
	} else if err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}
	conf.ApplyEnv(os.Getenv)

	db, err := database.ConnectWithConfig(conf.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	m, err := automigrate.NewMigrate(db)
	if err != nil {
		log.Fatalf("Failed to create migrate instance: %v", err)
	}

	// Execute command
	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to run migrations up: %v", err)
		}
		fmt.Println("Migrations applied successfully")

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to run migrations down: %v", err)
		}
		fmt.Println("Migrations reverted successfully")

	case "steps":
		if len(args) < 2 {
			log.Fatal("steps command requires a number argument")
		}
		var steps int
		if _, err := fmt.Sscanf(args[1], "%d", &steps); err != nil {
			log.Fatalf("Invalid steps number: %v", err)
		}
		if err := m.Steps(steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to run migration steps: %v", err)
		}
		fmt.Printf("Applied %d migration steps\n", steps)

	case "goto":
		if len(args) < 2 {
			log.Fatal("goto command requires a version argument")
		}
		var version uint
		if _, err := fmt.Sscanf(args[1], "%d", &version); err != nil {
			log.Fatalf("Invalid version number: %v", err)
		}
		if err := m.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to migrate to version %d: %v", version, err)
		}
		fmt.Printf("Migrated to version %d\n", version)

	case "force":
		if len(args) < 2 {
			log.Fatal("force command requires a version argument")
		}
		var version int
		if _, err := fmt.Sscanf(args[1], "%d", &version); err != nil {
			log.Fatalf("Invalid version number: %v", err)
		}
		if err := m.Force(version); err != nil {
			log.Fatalf("Failed to force version %d: %v", version, err)
		}
		fmt.Printf("Forced version to %d\n", version)

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("No migration applied")
			return
		}
		if err != nil {
			log.Fatalf("Failed to get version: %v", err)
		}
		status := "clean"
		if dirty {
			status = "dirty"
		}
		fmt.Printf("Current version: %d (%s)\n", version, status)

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		fmt.Print(usageText)
		os.Exit(1)
	}
}
