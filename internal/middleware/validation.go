package middleware

import (
	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedCategoryKey = "validated_category"
	ValidatedIDKey       = "validated_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	if v == nil {
		v = validation.NewValidator()
	}
	return &ValidationMiddleware{validator: v}
}

// ValidateCategory parses the :category path parameter into a canonical category
func (vm *ValidationMiddleware) ValidateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := vm.validator.ValidateCategory(c.Params("category"))
		if err != nil {
			return err // This will be handled by ErrorHandler middleware
		}
		c.Locals(ValidatedCategoryKey, category)
		return c.Next()
	}
}

// ValidateID checks the :id path parameter.
func (vm *ValidationMiddleware) ValidateID(field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateID(field, id); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}

// CategoryFromLocals returns the category stored by ValidateCategory.
func CategoryFromLocals(c *fiber.Ctx) domain.Category {
	category, _ := c.Locals(ValidatedCategoryKey).(domain.Category)
	return category
}

// IDFromLocals returns the id stored by ValidateID.
func IDFromLocals(c *fiber.Ctx) string {
	id, _ := c.Locals(ValidatedIDKey).(string)
	return id
}
