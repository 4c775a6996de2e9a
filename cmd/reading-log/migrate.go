package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ameese/reading-log/internal/config"
	"github.com/ameese/reading-log/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.Store.Driver, cfg.Store.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.Store.Driver); err != nil {
				return err
			}

			log.Println("migrations complete")
			return nil
		},
	}
}
