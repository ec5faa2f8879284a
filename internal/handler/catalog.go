package handler

import (
	"neuro-site/internal/catalog"
	"neuro-site/internal/middleware"
	"neuro-site/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles exercise library API requests
type CatalogHandler struct {
	service service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// GetStatus godoc
// @Summary Exercise catalog state
// @Description Reports whether the exercise document is still loading, loaded or failed
// @Tags exercises
// @Produce json
// @Success 200 {object} dto.CatalogStatusResponse
// @Router /catalog/status [get]
func (h *CatalogHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// GetCategories godoc
// @Summary Filter options
// @Description Returns the category and difficulty filter options. They are returned even when the catalog failed to load.
// @Tags exercises
// @Produce json
// @Param lang query string false "Locale for labels"
// @Success 200 {object} dto.FilterOptionsResponse
// @Router /categories [get]
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.FilterOptions(middleware.Translator(c)))
}

// GetExercises godoc
// @Summary List exercises
// @Description Filters the exercise library by category, difficulty and free text
// @Tags exercises
// @Produce json
// @Param category query string false "Category id or all"
// @Param difficulty query string false "beginner, intermediate, advanced or all"
// @Param q query string false "Case-insensitive text matched against name and description"
// @Param lang query string false "Locale for messages"
// @Success 200 {object} dto.ExerciseListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} dto.ExerciseListResponse "Catalog failed to load"
// @Router /exercises [get]
func (h *CatalogHandler) GetExercises(c *fiber.Ctx) error {
	resp := h.service.ListExercises(middleware.ValidatedCriteria(c), middleware.Translator(c))
	if resp.State == string(catalog.StateFailed) {
		c.Status(fiber.StatusServiceUnavailable)
	}
	return c.JSON(resp)
}

// GetExercise godoc
// @Summary Exercise detail
// @Description Returns the content of the detail overlay for one exercise
// @Tags exercises
// @Produce json
// @Param id path string true "Exercise id"
// @Success 200 {object} dto.ExerciseDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /exercises/{id} [get]
func (h *CatalogHandler) GetExercise(c *fiber.Ctx) error {
	detail, err := h.service.GetExercise(middleware.ValidatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(detail)
}
