package database

import (
	"database/sql"
	"errors"
	"fmt"
	"leaguedash/pkg/config"
	"leaguedash/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const migrationsLock = "leaguedash_migrations_lock"

// ErrNoDatabase is returned when no database url is configured.
var ErrNoDatabase = errors.New("no database configured")

// RunMigrations applies all pending migrations to the database.
func RunMigrations(cfg *config.Config, db *sql.DB, log *logger.Logger) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cfg.Database.MigrationsPath),
		cfg.Database.Database,
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	// Acquire an advisory lock to prevent concurrent migrations between instances.
	var lockAcquired bool
	err = db.QueryRow("SELECT pg_try_advisory_lock(hashtext($1))", migrationsLock).Scan(&lockAcquired)
	if err != nil {
		return err
	}

	if !lockAcquired {
		log.Infof("Another process is already running migrations, skipping...")
		return nil
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	var lockReleased bool
	err = db.QueryRow("SELECT pg_advisory_unlock(hashtext($1))", migrationsLock).Scan(&lockReleased)
	if err != nil || !lockReleased {
		return fmt.Errorf("could not release advisory lock: %w", err)
	}

	return nil
}
