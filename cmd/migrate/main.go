package main

import (
	"context"
	"fmt"
	"os"

	"neuro-site/internal/config"
	"neuro-site/internal/database"
	"neuro-site/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	ctx := context.Background()
	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if _, err := database.RunMigrations(ctx, db, database.Migrations()); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
}
