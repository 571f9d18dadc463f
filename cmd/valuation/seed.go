package main

import (
	"context"
	"fmt"

	"github.com/zvz23/valuation-app-sub001/internal/db"
	"github.com/zvz23/valuation-app-sub001/internal/seed"
	"github.com/zvz23/valuation-app-sub001/internal/store"

	"github.com/k0kubun/pp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with sample valuation records",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of sample records to create",
			Value:   10,
		},
		&cli.BoolFlag{
			Name:  "reset",
			Usage: "Delete previously seeded records first",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		recordRepo := store.NewRecordRepository(pool)

		logrus.Info("Seeding sample records...")
		if err := seed.SeedSampleRecords(ctx, pool, recordRepo, c.Int("count"), c.Bool("reset")); err != nil {
			return fmt.Errorf("failed to seed records: %w", err)
		}

		records, err := recordRepo.Records(ctx)
		if err != nil {
			return fmt.Errorf("failed to list seeded records: %w", err)
		}

		logrus.WithField("total", len(records)).Info("Records seeded successfully")
		if len(records) > 0 {
			pp.Println(records[0].Overview)
		}

		return nil
	},
}
