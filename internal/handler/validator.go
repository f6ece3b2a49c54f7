package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ItemForge_Go/internal/utils"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("quality", validateQuality)
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator errors into a field to message map
// without leaking Go struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "quality":
			errs[field] = "Unknown item quality"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateQuality accepts empty values and catalog or display quality names.
func validateQuality(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true
	}
	_, ok := utils.ParseQuality(name)
	return ok
}
