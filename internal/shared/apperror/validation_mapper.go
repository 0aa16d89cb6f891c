package apperror

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

func formatFieldName(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", " ")
}

// MapValidationError converts a validator.ValidationErrors into a single
// AppError describing the first failed field.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return ErrInvalidInput
}
