// Package pgtest starts a disposable PostgreSQL for integration tests and
// applies the service schema to it.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every application table, children first, for Truncate.
var Tables = []string{"outbox", "admin_settings", "order_items", "orders", "cart_items", "products", "users"}

// Database is a migrated database inside a running container.
type Database struct {
	DB      *gorm.DB
	ConnStr string

	container *tcpostgres.PostgresContainer
}

// Start runs a postgres container, migrates it and opens a GORM connection.
func Start(ctx context.Context, t *testing.T) *Database {
	t.Helper()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, postgres.MigrateUp(connStr))

	db, err := postgres.Open(ctx, connStr, slog.New(slog.NewTextHandler(io.Discard, nil)), postgres.Options{})
	require.NoError(t, err)

	return &Database{DB: db, ConnStr: connStr, container: container}
}

// Truncate empties every application table.
func (d *Database) Truncate(t *testing.T) {
	t.Helper()
	for _, table := range Tables {
		require.NoError(t, d.DB.Exec("TRUNCATE TABLE "+table+" CASCADE").Error)
	}
}

// Stop closes the connection and terminates the container.
func (d *Database) Stop(t *testing.T) {
	t.Helper()
	if d.DB != nil {
		_ = postgres.Close(d.DB)
	}
	if d.container != nil {
		require.NoError(t, d.container.Terminate(context.Background()))
	}
}
