package source

import (
	"context"
	"errors"
	"testing"

	"neuro-site/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDatabaseSource_Fetch(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("LoadDataset", mock.Anything).Return(sampleDataset(), nil).Once()

	ds, err := NewDatabaseSource(repo).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
	repo.AssertExpectations(t)
}

func TestDatabaseSource_Fetch_StorageError(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("LoadDataset", mock.Anything).Return(domain.Dataset{}, errors.New("ORA-12541: no listener")).Once()

	_, err := NewDatabaseSource(repo).Fetch(context.Background())

	assert.True(t, IsFetchError(err, KindStorage))
	repo.AssertExpectations(t)
}

func TestDatabaseSource_Fetch_InvalidRows(t *testing.T) {
	bad := domain.Dataset{Categories: []domain.Category{
		{ID: "a", Name: "A", Exercises: []domain.Exercise{{ID: "x", Name: "X", Difficulty: "expert"}}},
	}}
	repo := new(MockCatalogRepository)
	repo.On("LoadDataset", mock.Anything).Return(bad, nil).Once()

	_, err := NewDatabaseSource(repo).Fetch(context.Background())

	assert.True(t, IsFetchError(err, KindMalformed))
}
