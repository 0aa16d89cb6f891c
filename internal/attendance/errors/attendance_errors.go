package attendanceerrors

import (
	"net/http"

	"nursery-admin/internal/shared/apperror"
)

var (
	ErrNegativeLateMinutes = apperror.New(
		apperror.CodeInvalidInput,
		"late minutes cannot be negative",
		http.StatusBadRequest,
	)
	ErrNegativeFineAmount = apperror.New(
		apperror.CodeInvalidInput,
		"fine amount cannot be negative",
		http.StatusBadRequest,
	)
	ErrUnknownShiftStatus = apperror.New(
		apperror.CodeInvalidConfiguration,
		"unknown shift status on attendance record",
		http.StatusUnprocessableEntity,
	)
)

// SourceUnavailable wraps an infrastructure failure from the attendance
// store so callers can distinguish it from business errors.
func SourceUnavailable(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeServiceUnavailable,
		"attendance source unavailable",
		http.StatusServiceUnavailable,
	)
}
