package handler

import (
	"net/url"

	"neuro-site/internal/catalog"
	"neuro-site/internal/domain"
	"neuro-site/internal/dto"
	"neuro-site/internal/logger"
	"neuro-site/internal/middleware"
	"neuro-site/internal/service"
	"neuro-site/internal/validation"
	"neuro-site/internal/view"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	catalog   service.CatalogService
	locations service.LocationService
	templates *view.Templates
	validator *validation.Validator
}

func NewPageHandler(catalog service.CatalogService, locations service.LocationService, templates *view.Templates) *PageHandler {
	return &PageHandler{
		catalog:   catalog,
		locations: locations,
		templates: templates,
		validator: validation.NewValidator(),
	}
}

// ExercisePage is the data behind exercises.html.
type ExercisePage struct {
	T        domain.Translator
	Lang     string
	Criteria catalog.Criteria
	Options  *dto.FilterOptionsResponse
	List     *dto.ExerciseListResponse
	Detail   *dto.ExerciseDetailResponse
}

// Loading and Failed drive the page states. The filter form renders in both.
func (p ExercisePage) Loading() bool { return p.List.State == string(catalog.StateLoading) }
func (p ExercisePage) Failed() bool  { return p.List.State == string(catalog.StateFailed) }

// DetailURL keeps the current filter and opens the given exercise. Opening
// another exercise replaces the detail parameter.
func (p ExercisePage) DetailURL(id string) string {
	q := p.query()
	q.Set("detail", id)
	return "/exercises?" + q.Encode()
}

// CloseURL keeps the current filter and clears the detail slot.
func (p ExercisePage) CloseURL() string {
	if q := p.query().Encode(); q != "" {
		return "/exercises?" + q
	}
	return "/exercises"
}

func (p ExercisePage) query() url.Values {
	q := url.Values{}
	if p.Criteria.HasCategory() {
		q.Set("category", p.Criteria.Category)
	}
	if p.Criteria.HasDifficulty() {
		q.Set("difficulty", p.Criteria.Difficulty)
	}
	if p.Criteria.Query != "" {
		q.Set("q", p.Criteria.Query)
	}
	if p.Lang != "" {
		q.Set("lang", p.Lang)
	}
	return q
}

// Exercises renders the exercise library. Invalid filter values fall back to "all".
func (h *PageHandler) Exercises(c *fiber.Ctx) error {
	tr := middleware.Translator(c)
	criteria := h.sanitizeCriteria(middleware.CriteriaFromQuery(c))

	page := ExercisePage{
		T:        tr,
		Lang:     c.Query("lang"),
		Criteria: criteria,
		Options:  h.catalog.FilterOptions(tr),
		List:     h.catalog.ListExercises(criteria, tr),
	}

	var slot catalog.DetailSlot
	if id := c.Query("detail"); id != "" && len(h.validator.ValidateID("detail", id)) == 0 {
		if snap := h.catalog.Snapshot(); snap.State == catalog.StateReady {
			if e, ok := snap.Dataset.Exercise(id); ok {
				slot.Open(e)
			}
		}
	}
	if e, ok := slot.Current(); ok {
		if detail, err := h.catalog.GetExercise(e.ID); err == nil {
			page.Detail = detail
		}
	}

	status := fiber.StatusOK
	if page.Failed() {
		status = fiber.StatusServiceUnavailable
	}
	return h.render(c, status, "exercises.html", page)
}

// LocationsPage is the data behind locations.html.
type LocationsPage struct {
	T         domain.Translator
	Locations []dto.LocationResponse
}

func (h *PageHandler) Locations(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "locations.html", LocationsPage{
		T:         middleware.Translator(c),
		Locations: h.locations.ListLocations().Locations,
	})
}

func (h *PageHandler) render(c *fiber.Ctx, status int, name string, data interface{}) error {
	body, err := h.templates.Render(name, data)
	if err != nil {
		logger.Get().Error("Failed to render page", zap.String("template", name), zap.Error(err))
		return domain.NewInternalError("Failed to render page", err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(body)
}

func (h *PageHandler) sanitizeCriteria(criteria catalog.Criteria) catalog.Criteria {
	criteria = criteria.Normalized()
	for _, verr := range h.validator.ValidateCriteria(criteria) {
		switch verr.Field {
		case "category":
			criteria.Category = catalog.All
		case "difficulty":
			criteria.Difficulty = catalog.All
		case "q":
			criteria.Query = string([]rune(criteria.Query)[:validation.MaxQueryLength])
		}
	}
	return criteria
}
