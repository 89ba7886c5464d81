package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"cognitive-pathways/internal/domain"

	"github.com/go-playground/validator/v10"
)

var ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance. Field names in errors follow the json tags.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateStruct checks s against its validate tags.
func (v *Validator) ValidateStruct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ValidationErrors{domain.NewInvalidValueError("body", nil, "is not a valid object")}
	}

	var errs domain.ValidationErrors
	for _, fe := range fieldErrs {
		errs = append(errs, translate(fe))
	}
	return errs
}

func translate(fe validator.FieldError) domain.ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.NewMissingFieldError(field)
	case "email":
		return domain.NewInvalidValueError(field, nil, "must be a valid email address")
	case "min", "max":
		length := 0
		if s, ok := fe.Value().(string); ok {
			length = len(s)
		}
		return domain.NewOutOfRangeError(field, length, minParam(fe), maxParam(fe))
	default:
		return domain.NewInvalidValueError(field, nil, fmt.Sprintf("failed %q validation", fe.Tag()))
	}
}

// Registration bounds are reported as a single range whichever side was violated.
var lengthBounds = map[string][2]int{
	"firstName": {3, 50},
	"lastName":  {3, 50},
	"email":     {3, 50},
	"password":  {6, 72},
}

func minParam(fe validator.FieldError) int {
	if b, ok := lengthBounds[fe.Field()]; ok {
		return b[0]
	}
	return 0
}

func maxParam(fe validator.FieldError) int {
	if b, ok := lengthBounds[fe.Field()]; ok {
		return b[1]
	}
	return 0
}

// ValidateCategory parses a category path parameter.
func (v *Validator) ValidateCategory(raw string) (domain.Category, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domain.ValidationErrors{domain.NewMissingFieldError("category")}
	}
	category, ok := domain.ParseCategory(raw)
	if !ok {
		return "", domain.NewInvalidCategoryError(raw)
	}
	return category, nil
}

// ValidateID checks that id looks like a ULID.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !ulidPattern.MatchString(strings.ToUpper(id)) {
		return domain.ValidationErrors{domain.NewInvalidValueError(field, id, "is not a valid id")}
	}
	return nil
}
