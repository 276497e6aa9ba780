package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// Config points the Migrator at a set of embedded SQL files.
type Config struct {
	MigrationsPath string
	MigrationsFS   fs.FS
	// Table defaults to schema_migrations.
	Table string
}

func (c Config) table() string {
	if c.Table == "" {
		return "schema_migrations"
	}
	return c.Table
}

// Migrator applies schema migrations through a pgx pool.
type Migrator struct {
	config Config
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewMigrator(config Config, pool *pgxpool.Pool, logger *zap.Logger) *Migrator {
	return &Migrator{
		config: config,
		pool:   pool,
		logger: logger.Named("Migrator").With(
			zap.String("migrations_path", config.MigrationsPath),
			zap.String("migrations_table", config.table()),
		),
	}
}

// Up applies all pending migrations and logs the version moved from and to.
func (m *Migrator) Up() error {
	migrator, err := m.newMigrate()
	if err != nil {
		return err
	}
	defer migrator.Close()

	from, _, err := currentVersion(migrator)
	if err != nil {
		return err
	}
	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.Info("Stories schema is up to date", zap.Uint("version", from))
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	to, _, err := currentVersion(migrator)
	if err != nil {
		return err
	}
	m.logger.Info("Stories schema migrated", zap.Uint("from_version", from), zap.Uint("to_version", to))
	return nil
}

// Down rolls back every migration.
func (m *Migrator) Down() error {
	migrator, err := m.newMigrate()
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	m.logger.Info("Database migrations rolled back")
	return nil
}

// ForceVersion sets the version without running migrations, clearing the dirty flag.
func (m *Migrator) ForceVersion(version uint) error {
	migrator, err := m.newMigrate()
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Force(int(version)); err != nil {
		return fmt.Errorf("failed to force migration version: %w", err)
	}
	m.logger.Info("Database migration version forced", zap.Uint("version", version))
	return nil
}

// Version returns the current version; zero when nothing was applied.
func (m *Migrator) Version() (uint, bool, error) {
	migrator, err := m.newMigrate()
	if err != nil {
		return 0, false, err
	}
	defer migrator.Close()
	return currentVersion(migrator)
}

func currentVersion(migrator *migrate.Migrate) (uint, bool, error) {
	version, dirty, err := migrator.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

func (m *Migrator) newMigrate() (*migrate.Migrate, error) {
	source, err := iofs.New(m.config.MigrationsFS, m.config.MigrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create source driver: %w", err)
	}

	db := stdlib.OpenDBFromPool(m.pool)
	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: m.config.table(),
	})
	if err != nil {
		_ = source.Close()
		_ = db.Close()
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = source.Close()
		_ = driver.Close()
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	migrator.LockTimeout = 30 * time.Second
	return migrator, nil
}
