package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ameese/reading-log/internal/api"
	"github.com/ameese/reading-log/internal/auth"
	"github.com/ameese/reading-log/internal/config"
	"github.com/ameese/reading-log/internal/db"
	"github.com/ameese/reading-log/internal/render"
	"github.com/ameese/reading-log/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
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

			kv, err := store.NewSQLKV(database, cfg.Store.Driver)
			if err != nil {
				return err
			}
			items := store.NewItemStore(kv)

			if cfg.Token == "" {
				log.Println("READING_TOKEN not set; /reading/add will refuse all requests")
			}

			router := api.NewRouter(api.Deps{
				Items: items,
				Auth:  auth.NewTokenMiddleware(cfg.Token),
				Site: render.Config{
					SiteTitle: cfg.SiteTitle,
					SiteURL:   cfg.SiteURL,
					MoreURL:   cfg.MoreURL,
				},
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
