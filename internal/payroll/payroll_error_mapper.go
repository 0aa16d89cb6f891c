package payroll

import (
	"errors"

	employeeerrors "nursery-admin/internal/employee/errors"
	payrollerrors "nursery-admin/internal/payroll/errors"
)

// mapProfileError translates the attendance source's missing-profile error
// into the engine's own not-found sentinel; everything else passes through.
func mapProfileError(err error) error {
	if errors.Is(err, employeeerrors.ErrProfileNotFound) {
		return payrollerrors.ErrEmployeeNotFound
	}
	return err
}
