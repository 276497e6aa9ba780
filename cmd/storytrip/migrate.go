package main

import (
	"fmt"
	"strconv"
	"time"

	"storytrip-server/internal/config"
	"storytrip-server/internal/database"
	"storytrip-server/internal/logger"
	"storytrip-server/pkg/migration"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the stories database schema",
		Long: `Manage the stories database schema.

The database is configured with the same DATABASE_URL / DB_* variables as the server.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, func(m *migration.Migrator) error { return m.Up() })
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration (drops the stories table)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, func(m *migration.Migrator) error { return m.Down() })
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, func(m *migration.Migrator) error {
					version, dirty, err := m.Version()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "force VERSION",
			Short: "Set the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.ParseUint(args[0], 10, 32)
				if err != nil {
					return fmt.Errorf("invalid version %q", args[0])
				}
				return withMigrator(cmd, func(m *migration.Migrator) error { return m.ForceVersion(uint(version)) })
			},
		},
	)
	return cmd
}

func withMigrator(cmd *cobra.Command, fn func(*migration.Migrator) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		Encoding:   "console",
		OutputPath: "stderr",
		Env:        cfg.Env,
		Component:  "cli",
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	pool, err := database.Connect(cmd.Context(), database.PoolConfig{
		DSN:        cfg.GetDSN(),
		MaxConns:   2,
		MaxRetries: 3,
		RetryDelay: time.Second,
	}, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(migration.NewMigrator(migration.Config{
		MigrationsFS:   database.MigrationsFS,
		MigrationsPath: database.MigrationsPath,
	}, pool, log))
}
