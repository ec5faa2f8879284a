package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"neuro-site/internal/domain"
	"neuro-site/internal/repository/models"
	"neuro-site/internal/util"
)

const (
	selectCategoriesQuery = `SELECT id, name, description, position, created_at, updated_at FROM exercise_categories ORDER BY position, id`
	selectExercisesQuery  = `SELECT id, category_id, name, description, difficulty, image, instructions, cautions, position, created_at, updated_at FROM exercises ORDER BY category_id, position, id`

	insertCategoryQuery = `INSERT INTO exercise_categories (id, name, description, position, created_at, updated_at)
              VALUES (:id, :name, :description, :position, :created_at, :updated_at)`
	insertExerciseQuery = `INSERT INTO exercises (id, category_id, name, description, difficulty, image, instructions, cautions, position, created_at, updated_at)
              VALUES (:id, :category_id, :name, :description, :difficulty, :image, :instructions, :cautions, :position, :created_at, :updated_at)`

	deleteExercisesQuery  = `DELETE FROM exercises`
	deleteCategoriesQuery = `DELETE FROM exercise_categories`
)

// CatalogDatabaseAdapter stores the exercise document in two tables.
type CatalogDatabaseAdapter struct {
	db DBTX
}

// NewCatalogDatabaseAdapter accepts *sqlx.DB or *sqlx.Tx.
func NewCatalogDatabaseAdapter(db DBTX) domain.CatalogRepository {
	return &CatalogDatabaseAdapter{db: db}
}

// LoadDataset rebuilds the document: categories by position, exercises by position within their category.
func (r *CatalogDatabaseAdapter) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	exec := GetExecutor(ctx, r.db)

	var categories []models.Category
	if err := exec.SelectContext(ctx, &categories, selectCategoriesQuery); err != nil && err != sql.ErrNoRows {
		return domain.Dataset{}, fmt.Errorf("failed to select categories: %w", err)
	}

	var exercises []models.Exercise
	if err := exec.SelectContext(ctx, &exercises, selectExercisesQuery); err != nil && err != sql.ErrNoRows {
		return domain.Dataset{}, fmt.Errorf("failed to select exercises: %w", err)
	}

	byCategory := make(map[string][]domain.Exercise, len(categories))
	for i := range exercises {
		e := &exercises[i]
		byCategory[e.CategoryID] = append(byCategory[e.CategoryID], convertToDomainExercise(e))
	}

	ds := domain.Dataset{Categories: make([]domain.Category, 0, len(categories))}
	for i := range categories {
		c := convertToDomainCategory(&categories[i])
		c.Exercises = byCategory[c.ID]
		if c.Exercises == nil {
			c.Exercises = []domain.Exercise{}
		}
		ds.Categories = append(ds.Categories, c)
	}
	return ds, nil
}

func (r *CatalogDatabaseAdapter) DeleteAll(ctx context.Context) error {
	exec := GetExecutor(ctx, r.db)
	if _, err := exec.ExecContext(ctx, deleteExercisesQuery); err != nil {
		return fmt.Errorf("failed to delete exercises: %w", err)
	}
	if _, err := exec.ExecContext(ctx, deleteCategoriesQuery); err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	return nil
}

func (r *CatalogDatabaseAdapter) SaveCategory(ctx context.Context, category domain.Category, position int) error {
	exec := GetExecutor(ctx, r.db)
	now := time.Now()

	modelCategory := convertToModelCategory(category, position, now)
	if _, err := exec.NamedExecContext(ctx, insertCategoryQuery, modelCategory); err != nil {
		return fmt.Errorf("failed to insert category %s: %w", category.ID, err)
	}

	for i, e := range category.Exercises {
		modelExercise := convertToModelExercise(e, category.ID, i, now)
		if _, err := exec.NamedExecContext(ctx, insertExerciseQuery, modelExercise); err != nil {
			return fmt.Errorf("failed to insert exercise %s: %w", e.ID, err)
		}
	}
	return nil
}

// Helper functions for converting between domain and model types
func convertToDomainCategory(c *models.Category) domain.Category {
	return domain.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description.String,
	}
}

func convertToModelCategory(c domain.Category, position int, now time.Time) *models.Category {
	return &models.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: util.StringToNullString(c.Description),
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func convertToDomainExercise(e *models.Exercise) domain.Exercise {
	return domain.Exercise{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description.String,
		Difficulty:   domain.Difficulty(e.Difficulty),
		Image:        e.Image.String,
		Instructions: []string(e.Instructions),
		Cautions:     []string(e.Cautions),
	}
}

func convertToModelExercise(e domain.Exercise, categoryID string, position int, now time.Time) *models.Exercise {
	return &models.Exercise{
		ID:           e.ID,
		CategoryID:   categoryID,
		Name:         e.Name,
		Description:  util.StringToNullString(e.Description),
		Difficulty:   string(e.Difficulty),
		Image:        util.StringToNullString(e.Image),
		Instructions: models.StringSlice(e.Instructions),
		Cautions:     models.StringSlice(e.Cautions),
		Position:     position,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
