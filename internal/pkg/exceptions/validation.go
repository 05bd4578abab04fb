package exceptions

import (
	"errors"
	"lifeledger-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError returns the user-facing message of the first violated
// rule. Fields are checked in declaration order and each field stops at its first
// failing tag, so the first entry is the highest-priority violation.
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		key := firstErr.StructField() + "." + firstErr.Tag()
		if message, ok := constvars.RegistrationValidationMessages[key]; ok {
			return message
		}
		return firstErr.Field() + " is invalid"
	}
	return constvars.ErrDevInvalidInput
}
