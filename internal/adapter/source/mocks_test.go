package source

import (
	"context"
	"time"

	"neuro-site/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) Fetch(ctx context.Context) (domain.Dataset, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Dataset), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Dataset), args.Error(1)
}

func (m *MockCatalogRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogRepository) SaveCategory(ctx context.Context, category domain.Category, position int) error {
	args := m.Called(ctx, category, position)
	return args.Error(0)
}

const sampleDocument = `{
  "categories": [
    {
      "id": "balance",
      "name": "Balance",
      "description": "Stability work",
      "exercises": [
        {"id": "tandem-stand", "name": "Tandem Stand", "description": "Heel to toe", "difficulty": "beginner", "image": "tandem.jpg", "instructions": ["Stand"], "cautions": []},
        {"id": "single-leg", "name": "Single Leg Stand", "description": "One foot", "difficulty": "intermediate", "image": "", "instructions": [], "cautions": ["Use a chair"]}
      ]
    },
    {
      "id": "strength",
      "name": "Strength",
      "description": "",
      "exercises": [
        {"id": "bridge", "name": "Bridge", "description": "Glutes", "difficulty": "advanced", "image": "bridge.jpg", "instructions": [], "cautions": []}
      ]
    }
  ]
}`

func sampleDataset() domain.Dataset {
	return domain.Dataset{Categories: []domain.Category{
		{ID: "balance", Name: "Balance", Exercises: []domain.Exercise{
			{ID: "tandem-stand", Name: "Tandem Stand", Difficulty: domain.DifficultyBeginner},
		}},
	}}
}
