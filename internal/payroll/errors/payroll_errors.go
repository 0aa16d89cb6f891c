package payrollerrors

import (
	"net/http"

	"nursery-admin/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee has no compensation profile",
		http.StatusNotFound,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll period",
		http.StatusBadRequest,
	)
	ErrRecalculationInProgress = apperror.New(
		apperror.CodeConflict,
		"a recalculation for this employee and period is already running",
		http.StatusConflict,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll record not found",
		http.StatusNotFound,
	)
	ErrUnknownStatus = apperror.New(
		apperror.CodeInvalidState,
		"unknown payroll record status",
		http.StatusUnprocessableEntity,
	)
)

// StoreUnavailable wraps an infrastructure failure from the payroll store.
func StoreUnavailable(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeServiceUnavailable,
		"payroll store unavailable",
		http.StatusServiceUnavailable,
	)
}
