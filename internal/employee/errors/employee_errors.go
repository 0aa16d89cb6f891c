package employeeerrors

import (
	"net/http"

	"nursery-admin/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"compensation profile not found for employee",
		http.StatusNotFound,
	)
	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"compensation profile already exists for employee",
		http.StatusConflict,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"monetary fields on a compensation profile cannot be negative",
		http.StatusBadRequest,
	)
	ErrUnknownSalaryBasis = apperror.New(
		apperror.CodeInvalidConfiguration,
		"unknown salary basis on compensation profile",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownPenaltyType = apperror.New(
		apperror.CodeInvalidConfiguration,
		"unknown penalty type on compensation profile",
		http.StatusUnprocessableEntity,
	)
)
