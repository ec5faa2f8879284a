package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"neuro-site/internal/adapter/source"
	"neuro-site/internal/config"
	"neuro-site/internal/database"
	"neuro-site/internal/logger"
	"neuro-site/internal/repository"

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Loading seed document", zap.String("path", cfg.Catalog.Path))
	ds, err := source.NewFileSource(cfg.Catalog.Path).Fetch(ctx)
	if err != nil {
		log.Fatal("Failed to load seed document", zap.Error(err))
	}

	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	s := &seeder{
		tm:   repository.NewTransactionManager(db),
		repo: repository.NewCatalogDatabaseAdapter(db),
	}
	if err := s.seed(ctx, ds); err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Catalog seeding completed",
		zap.Int("categories", len(ds.Categories)),
		zap.Int("exercises", ds.Len()),
	)
}
