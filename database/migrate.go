package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migration/*.sql
var migrationFS embed.FS

func newMigrator(dsn string) (*migrate.Migrate, *sql.DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open DB for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("create migration driver: %w", err)
	}

	source, err := iofs.New(migrationFS, "migration")
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("initialize migrator: %w", err)
	}
	return m, sqlDB, nil
}

// MigrateUp applies every pending migration. Already up to date is not an error.
func MigrateUp(dsn string) error {
	m, sqlDB, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Println("Database migrations applied (or already up to date)")
	return nil
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(dsn string, steps int) error {
	m, sqlDB, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if steps <= 0 {
		steps = 1
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("roll back migrations: %w", err)
	}

	log.Printf("Rolled back %d migration(s)", steps)
	return nil
}

func Version(dsn string) (uint, bool, error) {
	m, sqlDB, err := newMigrator(dsn)
	if err != nil {
		return 0, false, err
	}
	defer sqlDB.Close()

	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}
