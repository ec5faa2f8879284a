package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"neuro-site/internal/catalog"
	"neuro-site/internal/domain"
)

// MaxQueryLength bounds the free-text search, in runes.
const MaxQueryLength = 200

var localePattern = regexp.MustCompile(`^[a-zA-Z]{2,3}([-_][a-zA-Z0-9]{2,8})?$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCriteria checks the exercise filter inputs. Empty values and "all"
// are accepted for category and difficulty.
func (v *Validator) ValidateCriteria(c catalog.Criteria) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if c.HasCategory() && !domain.ValidID(c.Category) {
		errors = append(errors, domain.NewInvalidFormatError("category", c.Category))
	}

	if c.HasDifficulty() {
		if _, err := domain.ParseDifficulty(c.Difficulty); err != nil {
			errors = append(errors, domain.NewInvalidDifficultyError(c.Difficulty))
		}
	}

	if n := utf8.RuneCountInString(c.Query); n > MaxQueryLength {
		errors = append(errors, domain.NewOutOfRangeError("q", n, 0, MaxQueryLength))
	}

	return errors
}

// ValidateID checks an exercise or location identifier from the path. It
// accepts exactly the ids a loaded dataset can contain.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !domain.ValidID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

// ValidateLocale accepts tags like "en", "es", "pt-BR" and "zh_Hant".
func (v *Validator) ValidateLocale(locale string) domain.ValidationErrors {
	if strings.TrimSpace(locale) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("locale")}
	}
	if !localePattern.MatchString(locale) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("locale", locale)}
	}
	return nil
}
