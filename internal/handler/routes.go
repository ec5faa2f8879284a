package handler

import (
	"neuro-site/internal/i18n"
	"neuro-site/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Catalog      *CatalogHandler
	Locations    *LocationHandler
	Translations *TranslationHandler
	Pages        *PageHandler
	Assets       *AssetHandler
	Health       *HealthHandler
	I18n         *i18n.Catalog
}

// RegisterRoutes mounts the API, pages, images and health check.
func RegisterRoutes(app *fiber.App, h Handlers) {
	vm := middleware.NewValidationMiddleware()
	locale := middleware.Locale(h.I18n)

	app.Get("/health", h.Health.GetHealth)
	app.Get("/images/*", h.Assets.ServeImage)

	api := app.Group("/api", locale)
	api.Get("/catalog/status", h.Catalog.GetStatus)
	api.Get("/categories", h.Catalog.GetCategories)
	api.Get("/exercises", vm.ValidateExerciseFilter(), h.Catalog.GetExercises)
	api.Get("/exercises/:id", vm.ValidateIDParam(), h.Catalog.GetExercise)
	api.Get("/locations", h.Locations.GetLocations)
	api.Get("/locations/:id", vm.ValidateIDParam(), h.Locations.GetLocation)
	api.Get("/i18n/:locale", h.Translations.GetTranslations)

	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/exercises", fiber.StatusFound) })
	app.Get("/exercises", locale, h.Pages.Exercises)
	app.Get("/locations", locale, h.Pages.Locations)
}
