package handler

import (
	"neuro-site/internal/dto"
	"neuro-site/internal/i18n"
	"neuro-site/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type TranslationHandler struct {
	catalog   *i18n.Catalog
	validator *validation.Validator
}

func NewTranslationHandler(catalog *i18n.Catalog) *TranslationHandler {
	return &TranslationHandler{catalog: catalog, validator: validation.NewValidator()}
}

// GetTranslations godoc
// @Summary Page copy for a locale
// @Description Every known key resolved for the locale. Unknown locales get the default locale and embedded defaults.
// @Tags i18n
// @Produce json
// @Param locale path string true "Locale, e.g. en or es"
// @Success 200 {object} dto.TranslationsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /i18n/{locale} [get]
func (h *TranslationHandler) GetTranslations(c *fiber.Ctx) error {
	locale := c.Params("locale")
	if errors := h.validator.ValidateLocale(locale); len(errors) > 0 {
		return errors
	}
	tr := h.catalog.For(locale)
	return c.JSON(dto.TranslationsResponse{
		Locale:    tr.Locale(),
		Supported: h.catalog.Has(locale),
		Strings:   h.catalog.Resolve(locale),
	})
}
