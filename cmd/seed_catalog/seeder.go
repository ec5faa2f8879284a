package main

import (
	"context"
	"fmt"

	"neuro-site/internal/domain"
	"neuro-site/internal/logger"

	"go.uber.org/zap"
)

// transactor runs fn inside one transaction. *repository.TransactionManager satisfies it.
type transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// seeder replaces the catalog tables with the contents of one document.
type seeder struct {
	tm   transactor
	repo domain.CatalogRepository
}

// seed validates ds first and then writes it in a single transaction, so a
// failed run leaves the previous catalog in place.
func (s *seeder) seed(ctx context.Context, ds domain.Dataset) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("seed document is invalid: %w", err)
	}

	log := logger.Get()
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.DeleteAll(txCtx); err != nil {
			return err
		}
		for i, c := range ds.Categories {
			if err := s.repo.SaveCategory(txCtx, c, i); err != nil {
				return fmt.Errorf("failed to save category %s: %w", c.ID, err)
			}
			log.Info("Seeded category",
				zap.String("id", c.ID),
				zap.String("name", c.Name),
				zap.Int("exercises", len(c.Exercises)),
			)
		}
		return nil
	})
}
