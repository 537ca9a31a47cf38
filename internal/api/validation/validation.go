package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Intentionally permissive: no whitespace, exactly one @, a dot in the domain.
// Not RFC-5322-complete.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterValidators registers custom validators, replacing the stock email
// check with the permissive pattern above.
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("email", validateEmail)
}

// validateEmail checks if the email is email-shaped
func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// IsValidEmail reports whether s looks like local@domain.tld
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// FieldError represents a single field validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatValidationError converts a validator error into field-level failures
func FormatValidationError(err error) []FieldError {
	var errors []FieldError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errors = append(errors, FieldError{
				Field:   strings.ToLower(e.Field()),
				Message: fieldMessage(e),
			})
		}
	}
	return errors
}

// ErrorMessage flattens validation failures into one human-readable string
func ErrorMessage(err error) string {
	fieldErrors := FormatValidationError(err)
	if len(fieldErrors) == 0 {
		return "Invalid request body"
	}

	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fe.Message)
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
