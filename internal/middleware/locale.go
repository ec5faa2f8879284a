package middleware

import (
	"strings"

	"neuro-site/internal/domain"
	"neuro-site/internal/i18n"

	"github.com/gofiber/fiber/v2"
)

const localsTranslator = "translator"

// Locale binds a Translator to the request. The "lang" query parameter wins
// over the first Accept-Language entry the catalog knows.
func Locale(catalog *i18n.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localsTranslator, catalog.For(pickLocale(c, catalog)))
		return c.Next()
	}
}

func pickLocale(c *fiber.Ctx, catalog *i18n.Catalog) string {
	if lang := c.Query("lang"); lang != "" && catalog.Has(lang) {
		return lang
	}
	for _, part := range strings.Split(c.Get(fiber.HeaderAcceptLanguage), ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag != "" && tag != "*" && catalog.Has(tag) {
			return tag
		}
	}
	return ""
}

// Translator returns the request's translator. Without the Locale middleware
// it falls back to the embedded defaults.
func Translator(c *fiber.Ctx) domain.Translator {
	if tr, ok := c.Locals(localsTranslator).(domain.Translator); ok {
		return tr
	}
	return i18n.New("", nil).For("")
}
