package service

import (
	"neuro-site/internal/catalog"
	"neuro-site/internal/domain"
	"neuro-site/internal/dto"
	"neuro-site/internal/logger"

	"go.uber.org/zap"
)

// CatalogService answers exercise library queries from the activated store.
type CatalogService interface {
	Status() *dto.CatalogStatusResponse
	FilterOptions(tr domain.Translator) *dto.FilterOptionsResponse
	ListExercises(criteria catalog.Criteria, tr domain.Translator) *dto.ExerciseListResponse
	GetExercise(id string) (*dto.ExerciseDetailResponse, error)
	Snapshot() catalog.Snapshot
	Images() catalog.ImageResolver
}

type catalogService struct {
	store  *catalog.Store
	images catalog.ImageResolver
}

func NewCatalogService(store *catalog.Store, images catalog.ImageResolver) CatalogService {
	return &catalogService{store: store, images: images}
}

func (s *catalogService) Snapshot() catalog.Snapshot {
	return s.store.Snapshot()
}

func (s *catalogService) Images() catalog.ImageResolver {
	return s.images
}

func (s *catalogService) Status() *dto.CatalogStatusResponse {
	snap := s.store.Snapshot()
	resp := &dto.CatalogStatusResponse{
		State:         string(snap.State),
		CategoryCount: len(snap.Dataset.Categories),
		ExerciseCount: snap.Dataset.Len(),
	}
	if snap.Err != nil {
		resp.Message = snap.Err.Error()
	}
	if !snap.LoadedAt.IsZero() {
		loadedAt := snap.LoadedAt
		resp.LoadedAt = &loadedAt
	}
	return resp
}

// FilterOptions always lists "all" and every difficulty, so the filters
// render even when the catalog failed to load.
func (s *catalogService) FilterOptions(tr domain.Translator) *dto.FilterOptionsResponse {
	snap := s.store.Snapshot()

	categories := make([]dto.CategoryOption, 0, len(snap.Dataset.Categories)+1)
	categories = append(categories, dto.CategoryOption{
		ID:    catalog.All,
		Name:  tr.T("exercises.filter.allCats"),
		Count: snap.Dataset.Len(),
	})
	for _, c := range snap.Dataset.Categories {
		categories = append(categories, dto.CategoryOption{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Count:       len(c.Exercises),
		})
	}

	difficulties := make([]dto.DifficultyOption, 0, len(domain.Difficulties)+1)
	difficulties = append(difficulties, dto.DifficultyOption{ID: catalog.All, Label: tr.T("exercises.filter.allLevels")})
	for _, d := range domain.Difficulties {
		difficulties = append(difficulties, dto.DifficultyOption{ID: string(d), Label: tr.T("difficulty." + string(d))})
	}

	return &dto.FilterOptionsResponse{
		State:        string(snap.State),
		Categories:   categories,
		Difficulties: difficulties,
	}
}

// ListExercises never fails: a loading or failed catalog yields an empty list
// with the state and a visible message.
func (s *catalogService) ListExercises(criteria catalog.Criteria, tr domain.Translator) *dto.ExerciseListResponse {
	criteria = criteria.Normalized()
	snap := s.store.Snapshot()
	resp := &dto.ExerciseListResponse{
		State:      string(snap.State),
		Category:   orAll(criteria.Category),
		Difficulty: orAll(criteria.Difficulty),
		Query:      criteria.Query,
		Exercises:  []dto.ExerciseSummary{},
	}

	switch snap.State {
	case catalog.StateLoading:
		resp.Message = tr.T("exercises.loading")
		return resp
	case catalog.StateFailed:
		resp.Message = tr.T("exercises.error")
		return resp
	}

	owner := make(map[string]string, snap.Dataset.Len())
	for _, c := range snap.Dataset.Categories {
		for _, e := range c.Exercises {
			owner[e.ID] = c.ID
		}
	}

	result := catalog.Filter(snap.Dataset, criteria)
	resp.Count = result.Count
	for _, e := range result.Exercises {
		resp.Exercises = append(resp.Exercises, s.summary(e, owner[e.ID]))
	}
	if result.Empty() {
		resp.Message = tr.T("exercises.empty")
	}

	logger.Get().Debug("Filtered exercises",
		zap.String("category", resp.Category),
		zap.String("difficulty", resp.Difficulty),
		zap.String("query", criteria.Query),
		zap.Int("count", result.Count),
	)
	return resp
}

func (s *catalogService) GetExercise(id string) (*dto.ExerciseDetailResponse, error) {
	snap := s.store.Snapshot()
	switch snap.State {
	case catalog.StateLoading:
		return nil, domain.NewCatalogLoadingError()
	case catalog.StateFailed:
		return nil, domain.NewCatalogUnavailableError(snap.Err)
	}

	e, ok := snap.Dataset.Exercise(id)
	if !ok {
		return nil, domain.NewExerciseNotFoundError(id)
	}

	view := catalog.NewDetailView(e, s.images)
	resp := &dto.ExerciseDetailResponse{
		ID:           view.ID,
		Name:         view.Name,
		Description:  view.Description,
		Difficulty:   view.Difficulty,
		Image:        view.Image,
		Instructions: view.Instructions,
		Cautions:     view.Cautions,
	}
	if c, ok := snap.Dataset.CategoryOf(id); ok {
		resp.CategoryID = c.ID
	}
	return resp, nil
}

func (s *catalogService) summary(e domain.Exercise, categoryID string) dto.ExerciseSummary {
	return dto.ExerciseSummary{
		ID:          e.ID,
		CategoryID:  categoryID,
		Name:        e.Name,
		Description: e.Description,
		Difficulty:  string(e.Difficulty),
		Image:       s.images.Resolve(e.Image),
	}
}

func orAll(s string) string {
	if s == "" {
		return catalog.All
	}
	return s
}
