package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"cognitive-pathways/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator applies the embedded schema migrations.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator wraps db with golang-migrate using the embedded migration files.
func NewMigrator(db *sql.DB) (*Migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return &Migrator{m: m}, nil
}

// Up applies all pending migrations. Being already up to date is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	mg.logVersion("Migrations applied")
	return nil
}

// Down rolls back steps migrations, or all of them when all is true.
func (mg *Migrator) Down(steps int, all bool) error {
	var err error
	if all {
		err = mg.m.Down()
	} else {
		if steps <= 0 {
			steps = 1
		}
		err = mg.m.Steps(-steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	mg.logVersion("Migrations rolled back")
	return nil
}

// Version reports the current schema version. ok is false when no migration has run.
func (mg *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, err
	}
	return version, dirty, true, nil
}

func (mg *Migrator) logVersion(msg string) {
	version, dirty, ok, err := mg.Version()
	if err != nil {
		logger.Get().Warn("Could not read schema version", zap.Error(err))
		return
	}
	logger.Get().Info(msg, zap.Uint("version", version), zap.Bool("dirty", dirty), zap.Bool("initialized", ok))
}

// RunMigrations applies all pending migrations on db.
func RunMigrations(db *sql.DB) error {
	mg, err := NewMigrator(db)
	if err != nil {
		return err
	}
	return mg.Up()
}
