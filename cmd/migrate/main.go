package main

import (
	"context"
	"fmt"
	"os"

	"cognitive-pathways/internal/config"
	"cognitive-pathways/internal/database"
	"cognitive-pathways/internal/logger"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	cmd := &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "Apply all pending migrations",
				Action: withMigrator(func(_ context.Context, _ *cli.Command, m *database.Migrator) error { return m.Up() }),
			},
			{
				Name:  "down",
				Usage: "Roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "Number of migrations to roll back"},
					&cli.BoolFlag{Name: "all", Usage: "Roll back every migration"},
				},
				Action: withMigrator(func(_ context.Context, cmd *cli.Command, m *database.Migrator) error {
					return m.Down(int(cmd.Int("steps")), cmd.Bool("all"))
				}),
			},
			{
				Name:  "version",
				Usage: "Print the current schema version",
				Action: withMigrator(func(_ context.Context, _ *cli.Command, m *database.Migrator) error {
					version, dirty, ok, err := m.Version()
					if err != nil {
						return err
					}
					if !ok {
						fmt.Println("no migrations applied")
						return nil
					}
					fmt.Printf("version %d (dirty: %t)\n", version, dirty)
					return nil
				}),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type migratorAction func(ctx context.Context, cmd *cli.Command, m *database.Migrator) error

// withMigrator loads configuration, connects and hands a Migrator to fn.
func withMigrator(fn migratorAction) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := logger.Initialize(cfg.Logger); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		db, err := database.NewPostgresDB(ctx, cfg.DB, cfg.GetDSN())
		if err != nil {
			return err
		}
		defer db.Close()

		m, err := database.NewMigrator(db.DB)
		if err != nil {
			return err
		}
		if err := fn(ctx, cmd, m); err != nil {
			logger.Get().Error("Migration command failed", zap.String("command", cmd.Name), zap.Error(err))
			return err
		}
		return nil
	}
}
