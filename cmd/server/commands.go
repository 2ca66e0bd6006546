package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phrazzld/swapi-gateway/internal/platform/postgres"
)

// newRootCommand builds the swapi-gateway command tree.
func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "swapi-gateway",
		Short:         "Authenticated gateway in front of the Star Wars API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a config file (default: ./config.yaml if present)")

	root.AddCommand(newServeCommand(&configPath), newMigrateCommand(&configPath))
	return root
}

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, *configPath)
		},
	}
}

func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|version]",
		Short:     "Apply or inspect database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus, postgres.MigrateVersion},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath, args[0])
		},
	}
}

// runServer loads configuration, wires the application and serves until ctx
// is cancelled.
func runServer(ctx context.Context, configPath string) error {
	cfg, err := loadAppConfig(configPath)
	if err != nil {
		return err
	}

	log, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// runMigrations executes a goose command against the configured database.
func runMigrations(ctx context.Context, configPath, command string) error {
	cfg, err := loadAppConfig(configPath)
	if err != nil {
		return err
	}

	log, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database connection", "error", err)
		}
	}()

	if err := postgres.Migrate(ctx, db, command, log); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}
