// cmd/importmenu/main.go: replaces the menu from a CSV file.
// Usage: go run ./cmd/importmenu data/menu.csv
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Pujitha233/restaurant-billing-software/internal/config"
	"github.com/Pujitha233/restaurant-billing-software/internal/infra"
	"github.com/Pujitha233/restaurant-billing-software/internal/repository"
	"github.com/Pujitha233/restaurant-billing-software/internal/service"

	"github.com/rs/zerolog/log"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: importmenu <menu.csv>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	infra.ConfigureLogger(cfg.Env, cfg.LogLevel)

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open menu file")
	}
	defer f.Close()

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	svc := service.NewCatalogService(repository.NewMenuRepository(db))
	resp, err := svc.ImportCSV(context.Background(), f)
	if err != nil {
		log.Fatal().Err(err).Str("file", os.Args[1]).Msg("menu import failed")
	}
	fmt.Printf("imported %d of %d rows (%d skipped) into %s\n",
		resp.Imported, resp.TotalRows, resp.Skipped, cfg.DatabaseURL)
}
