package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ogurasousui/codex-grpc-hr/internal/platform/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultMigrationsDir = "assets/migrations"

type migrateOptions struct {
	configPath    string
	migrationsDir string
}

func newRootCmd(logger logrus.FieldLogger) *cobra.Command {
	opts := &migrateOptions{}

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the employee directory schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadEnv()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.migrationsDir, "dir", defaultMigrationsDir, "directory containing migration files")

	rootCmd.AddCommand(
		newActionCmd("up", "Apply all pending migrations", opts, logger),
		newActionCmd("down", "Revert all applied migrations", opts, logger),
		newActionCmd("drop", "Drop everything in the database", opts, logger),
		newActionCmd("version", "Print the current migration version", opts, logger),
	)

	return rootCmd
}

func newActionCmd(action, short string, opts *migrateOptions, logger logrus.FieldLogger) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.ResolvePath(opts.configPath))
			if err != nil {
				logger.WithError(err).Error("failed to load config")
				return err
			}

			if err := runMigration(action, opts.migrationsDir, cfg.Database.DSN(), logger); err != nil {
				logger.WithError(err).WithField("action", action).Error("migration failed")
				return err
			}

			logger.WithField("action", action).Info("migration completed")
			return nil
		},
	}
}

func runMigration(action, dir, dsn string, logger logrus.FieldLogger) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	absDir = filepath.ToSlash(absDir)

	m, err := migrate.New(fmt.Sprintf("file://%s", absDir), dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		return ignoreNoChange(m.Up())
	case "down":
		return ignoreNoChange(m.Down())
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				logger.Info("no migration applied")
				return nil
			}
			return err
		}
		logger.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("current migration version")
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
