package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"storefront/cmd"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/pkg/logger"
)

func main() {
	flag.Parse()
	args := flag.Args()

	bootstrap := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if len(args) < 1 {
		bootstrap.Error("usage: migrate <up|down|version>")
		os.Exit(1)
	}

	configs, err := cmd.LoadDatabaseConfig()
	if err != nil {
		bootstrap.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	l, err := logger.New(os.Stdout, os.Getenv("LOG_LEVEL"), "text")
	if err != nil {
		bootstrap.Error("failed to create logger", "error", err)
		os.Exit(1)
	}

	m, err := postgres.NewMigrator(configs.DatabaseURL())
	if err != nil {
		l.Error("failed to create migrate instance", "error", err)
		os.Exit(1)
	}
	defer func() { _, _ = m.Close() }()

	switch command := args[0]; command {
	case "up":
		err = m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			l.Info("no pending migrations")
			return
		}
		if err != nil {
			l.Error("migration up failed", "error", err)
			os.Exit(1)
		}
		l.Info("migrations applied successfully")

	case "down":
		err = m.Steps(-1)
		if errors.Is(err, migrate.ErrNoChange) {
			l.Info("no migrations to rollback")
			return
		}
		if err != nil {
			l.Error("migration down failed", "error", err)
			os.Exit(1)
		}
		l.Info("migration rolled back successfully")

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			l.Info("no migrations applied yet")
			return
		}
		if err != nil {
			l.Error("failed to get version", "error", err)
			os.Exit(1)
		}
		l.Info("current migration version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	default:
		l.Error("unknown command", "command", command)
		os.Exit(1)
	}
}
