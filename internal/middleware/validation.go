package middleware

import (
	"neuro-site/internal/catalog"
	"neuro-site/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	localsCriteria = "validated_criteria"
	localsID       = "validated_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateExerciseFilter validates category, difficulty and q from the query string.
func (vm *ValidationMiddleware) ValidateExerciseFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		criteria := CriteriaFromQuery(c).Normalized()
		if errors := vm.validator.ValidateCriteria(criteria); len(errors) > 0 {
			return errors
		}
		c.Locals(localsCriteria, criteria)
		return c.Next()
	}
}

// ValidateIDParam validates the :id path parameter.
func (vm *ValidationMiddleware) ValidateIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateID("id", id); len(errors) > 0 {
			return errors
		}
		c.Locals(localsID, id)
		return c.Next()
	}
}

// CriteriaFromQuery reads the filter without validating it. The query is kept
// as typed.
func CriteriaFromQuery(c *fiber.Ctx) catalog.Criteria {
	return catalog.Criteria{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Query:      c.Query("q"),
	}
}

// ValidatedCriteria returns what ValidateExerciseFilter stored.
func ValidatedCriteria(c *fiber.Ctx) catalog.Criteria {
	if criteria, ok := c.Locals(localsCriteria).(catalog.Criteria); ok {
		return criteria
	}
	return CriteriaFromQuery(c)
}

// ValidatedID returns what ValidateIDParam stored.
func ValidatedID(c *fiber.Ctx) string {
	if id, ok := c.Locals(localsID).(string); ok {
		return id
	}
	return c.Params("id")
}
