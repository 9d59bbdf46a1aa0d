//go:build integration
// +build integration

// Package testutil starts a throwaway postgres for integration tests and loads
// the fixture dataset into it.
package testutil

import (
	"context"
	"testing"
	"time"

	"ncnews/internal/db"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StartPostgres runs a postgres container and returns its DSN and a function
// that terminates it. Meant for TestMain.
func StartPostgres(ctx context.Context) (string, func(), error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("nc_news_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return "", nil, errors.Wrap(err, "start postgres container")
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		container.Terminate(ctx)
		return "", nil, errors.Wrap(err, "postgres connection string")
	}

	terminate := func() {
		container.Terminate(context.Background())
	}
	return dsn, terminate, nil
}

// Seeded opens dsn, reloads db.TestData and closes the handle when t ends.
func Seeded(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(context.Background(), dsn, logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close(gdb)
	})

	if err := db.Seed(gdb, db.TestData()); err != nil {
		t.Fatalf("seed test database: %v", err)
	}
	return gdb
}
