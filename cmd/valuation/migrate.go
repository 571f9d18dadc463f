package main

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/urfave/cli/v2"
)

//go:embed migrations/*.sql
var migrations embed.FS

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Apply database schema migrations",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "down",
			Usage: "Revert all migrations instead of applying them",
		},
		&cli.IntFlag{
			Name:  "steps",
			Usage: "Number of migrations to run (positive=up, negative=down)",
		},
		&cli.BoolFlag{
			Name:  "version",
			Usage: "Print the current migration version",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		source, err := iofs.New(migrations, "migrations")
		if err != nil {
			return fmt.Errorf("failed to create migration source: %w", err)
		}

		m, err := migrate.NewWithSourceInstance("iofs", source, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to create migrator: %w", err)
		}
		defer m.Close()

		switch {
		case c.Bool("version"):
			v, dirty, err := m.Version()
			if err != nil {
				return fmt.Errorf("failed to get version: %w", err)
			}
			fmt.Printf("version: %d, dirty: %v\n", v, dirty)
		case c.Bool("down"):
			if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("failed to revert migrations: %w", err)
			}
			fmt.Println("migrations reverted successfully")
		case c.Int("steps") != 0:
			if err := m.Steps(c.Int("steps")); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			fmt.Println("migrations applied successfully")
		default:
			if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			fmt.Println("migrations applied successfully")
		}

		return nil
	},
}
