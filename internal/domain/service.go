package domain

import "context"

// CatalogSource fetches the exercise document. One call is one attempt.
type CatalogSource interface {
	Fetch(ctx context.Context) (Dataset, error)
}

// CatalogRepository persists the exercise document in a relational store.
type CatalogRepository interface {
	// LoadDataset returns categories and exercises in display order.
	LoadDataset(ctx context.Context) (Dataset, error)

	// DeleteAll removes every category and exercise.
	DeleteAll(ctx context.Context) error

	// SaveCategory inserts a category and its exercises at the given position.
	SaveCategory(ctx context.Context, category Category, position int) error
}

// LocationSource fetches the location document.
type LocationSource interface {
	FetchLocations(ctx context.Context) (LocationSet, error)
}

// Translator resolves display strings. T never returns an empty string.
type Translator interface {
	T(key string) string
	Locale() string
}
