package main

import (
	"context"
	"log"
	"os"

	"assetreg/internal/cli"
	"assetreg/internal/config"
	"assetreg/internal/db"
	"assetreg/internal/logging"
	"assetreg/internal/service"
	"assetreg/internal/store"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	locationStore := store.NewLocationStore(database)
	assetStore := store.NewAssetStore(database)

	svc := service.NewRegisterService(locationStore, assetStore, logger)
	menu := cli.New(svc, os.Stdin, os.Stdout, logger)

	if err := menu.Run(context.Background()); err != nil {
		logger.Error("menu error", "error", err)
	}
}
