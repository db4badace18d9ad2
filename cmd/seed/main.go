package main

import (
	"context"
	"log"

	"github.com/Kariqs/hanythrift-api/initializers"
)

func main() {
	cfg, err := initializers.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := initializers.NewLogger("hanythrift-seed", cfg.AppEnv, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	db, err := initializers.ConnectToDB(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := initializers.SeedCatalog(ctx, db, cfg, logger); err != nil {
		log.Fatal(err)
	}
}
