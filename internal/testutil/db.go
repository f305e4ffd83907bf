package testutil

import (
	"context"
	"fmt"
	"leaguedash/pkg/config"
	"leaguedash/pkg/database"
	"leaguedash/pkg/logger"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// NewTestConnection starts a postgres container with the migrated schema.
// The test is skipped when no container runtime is available.
func NewTestConnection(t *testing.T, migrationsPath string) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Failed to start postgres container: %v", err)
	}
	tc.CleanupContainer(t, container)

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=test password=test dbname=testdb sslmode=disable TimeZone=UTC",
		host, port.Port(),
	)

	db, err := database.NewConnection(dsn)
	if err != nil {
		t.Fatalf("Failed to open gorm connection: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get SQL DB: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	// Run the migrations to replicate the full schema.
	cfg := &config.Config{Database: config.DatabaseConfiguration{
		Database:       "testdb",
		MigrationsPath: migrationsPath,
	}}
	if err := database.RunMigrations(cfg, sqlDB, logger.Discard()); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}
