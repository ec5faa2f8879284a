package service

import (
	"context"

	"neuro-site/internal/catalog"
	"neuro-site/internal/domain"
	"neuro-site/internal/i18n"

	"github.com/stretchr/testify/mock"
)

type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) Fetch(ctx context.Context) (domain.Dataset, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Dataset), args.Error(1)
}

func testDataset() domain.Dataset {
	return domain.Dataset{Categories: []domain.Category{
		{ID: "stretching", Name: "Stretching", Description: "Mobility", Exercises: []domain.Exercise{
			{ID: "cat-cow", Name: "Cat-Cow Stretch", Description: "Gentle spinal flexion", Difficulty: domain.DifficultyBeginner, Image: "cat-cow.jpg", Instructions: []string{"Start on all fours", "Arch your back"}},
			{ID: "child-pose", Name: "Child's Pose", Description: "Lower back release", Difficulty: domain.DifficultyBeginner},
		}},
		{ID: "core", Name: "Core Strength", Exercises: []domain.Exercise{
			{ID: "bird-dog", Name: "Bird Dog", Description: "Core stability", Difficulty: domain.DifficultyIntermediate, Cautions: []string{"Keep the spine neutral"}},
			{ID: "plank", Name: "Plank", Description: "Full core hold", Difficulty: domain.DifficultyAdvanced},
		}},
	}}
}

func activatedStore(ds domain.Dataset, err error) *catalog.Store {
	src := new(MockCatalogSource)
	src.On("Fetch", mock.Anything).Return(ds, err).Once()
	store := catalog.NewStore(src)
	store.Activate(context.Background())
	return store
}

func testTranslator() domain.Translator {
	return i18n.New("en", nil).For("en")
}

var testImages = catalog.NewImageResolver("/images", "placeholder.svg")
