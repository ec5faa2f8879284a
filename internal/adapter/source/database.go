package source

import (
	"context"

	"neuro-site/internal/domain"
)

// DatabaseSource reads the exercise document from the catalog tables.
type DatabaseSource struct {
	repo domain.CatalogRepository
}

func NewDatabaseSource(repo domain.CatalogRepository) *DatabaseSource {
	return &DatabaseSource{repo: repo}
}

func (s *DatabaseSource) Fetch(ctx context.Context) (domain.Dataset, error) {
	ds, err := s.repo.LoadDataset(ctx)
	if err != nil {
		return domain.Dataset{}, &FetchError{Kind: KindStorage, Source: "database", Err: err}
	}
	if err := ds.Validate(); err != nil {
		return domain.Dataset{}, &FetchError{Kind: KindMalformed, Source: "database", Err: err}
	}
	return ds, nil
}
