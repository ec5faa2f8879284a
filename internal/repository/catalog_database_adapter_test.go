package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"neuro-site/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var (
	categoryColumns = []string{"ID", "NAME", "DESCRIPTION", "POSITION", "CREATED_AT", "UPDATED_AT"}
	exerciseColumns = []string{"ID", "CATEGORY_ID", "NAME", "DESCRIPTION", "DIFFICULTY", "IMAGE", "INSTRUCTIONS", "CAUTIONS", "POSITION", "CREATED_AT", "UPDATED_AT"}
)

func TestLoadDataset(t *testing.T) {
	db, mock := setupCatalogTestDB(t)
	repo := NewCatalogDatabaseAdapter(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(selectCategoriesQuery)).WillReturnRows(
		sqlmock.NewRows(categoryColumns).
			AddRow("balance", "Balance", "Stability work", 0, now, now).
			AddRow("strength", "Strength", nil, 1, now, now).
			AddRow("empty", "Empty", nil, 2, now, now),
	)
	mock.ExpectQuery(regexp.QuoteMeta(selectExercisesQuery)).WillReturnRows(
		sqlmock.NewRows(exerciseColumns).
			AddRow("tandem-stand", "balance", "Tandem Stand", "Heel to toe", "beginner", "tandem.jpg", `["Stand","Hold"]`, `["Use a wall"]`, 0, now, now).
			AddRow("single-leg", "balance", "Single Leg Stand", nil, "intermediate", nil, `["Lift one foot"]`, nil, 1, now, now).
			AddRow("bridge", "strength", "Bridge", "Glutes", "advanced", nil, nil, "[]", 0, now, now),
	)

	ds, err := repo.LoadDataset(context.Background())

	require.NoError(t, err)
	require.Len(t, ds.Categories, 3)
	assert.Equal(t, "balance", ds.Categories[0].ID)
	assert.Equal(t, "Stability work", ds.Categories[0].Description)
	assert.Equal(t, "", ds.Categories[1].Description)

	balance := ds.Categories[0].Exercises
	require.Len(t, balance, 2)
	assert.Equal(t, "tandem-stand", balance[0].ID)
	assert.Equal(t, domain.DifficultyBeginner, balance[0].Difficulty)
	assert.Equal(t, []string{"Stand", "Hold"}, balance[0].Instructions)
	assert.Equal(t, []string{"Use a wall"}, balance[0].Cautions)
	assert.Equal(t, "single-leg", balance[1].ID)
	assert.Empty(t, balance[1].Image)
	assert.Empty(t, balance[1].Cautions)

	require.Len(t, ds.Categories[1].Exercises, 1)
	assert.Equal(t, domain.DifficultyAdvanced, ds.Categories[1].Exercises[0].Difficulty)

	assert.NotNil(t, ds.Categories[2].Exercises)
	assert.Empty(t, ds.Categories[2].Exercises)
	assert.NoError(t, ds.Validate())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadDataset_CategoryQueryError(t *testing.T) {
	db, mock := setupCatalogTestDB(t)
	repo := NewCatalogDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(selectCategoriesQuery)).WillReturnError(errors.New("ORA-00942"))

	_, err := repo.LoadDataset(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select categories")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCategory(t *testing.T) {
	db, mock := setupCatalogTestDB(t)
	repo := NewCatalogDatabaseAdapter(db)

	category := domain.Category{
		ID:   "balance",
		Name: "Balance",
		Exercises: []domain.Exercise{
			{ID: "tandem-stand", Name: "Tandem Stand", Difficulty: domain.DifficultyBeginner},
			{ID: "single-leg", Name: "Single Leg Stand", Difficulty: domain.DifficultyIntermediate},
		},
	}

	mock.ExpectExec("INSERT INTO exercise_categories").
		WithArgs("balance", "Balance", nil, 3, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO exercises").
		WithArgs("tandem-stand", "balance", "Tandem Stand", nil, "beginner", nil, "[]", "[]", 0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO exercises").
		WithArgs("single-leg", "balance", "Single Leg Stand", nil, "intermediate", nil, "[]", "[]", 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveCategory(context.Background(), category, 3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCategory_ExerciseInsertFails(t *testing.T) {
	db, mock := setupCatalogTestDB(t)
	repo := NewCatalogDatabaseAdapter(db)

	category := domain.Category{
		ID:        "balance",
		Name:      "Balance",
		Exercises: []domain.Exercise{{ID: "tandem-stand", Name: "Tandem Stand", Difficulty: domain.DifficultyBeginner}},
	}

	mock.ExpectExec("INSERT INTO exercise_categories").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO exercises").WillReturnError(errors.New("ORA-00001: unique constraint violated"))

	err := repo.SaveCategory(context.Background(), category, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tandem-stand")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAll(t *testing.T) {
	db, mock := setupCatalogTestDB(t)
	repo := NewCatalogDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(deleteExercisesQuery)).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta(deleteCategoriesQuery)).WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := setupCatalogTestDB(t)
		tm := NewTransactionManager(db)
		repo := NewCatalogDatabaseAdapter(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(deleteExercisesQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(deleteCategoriesQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
			_, ok := GetExecutor(ctx, db).(*sqlx.Tx)
			assert.True(t, ok)
			return repo.DeleteAll(ctx)
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := setupCatalogTestDB(t)
		tm := NewTransactionManager(db)
		boom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
