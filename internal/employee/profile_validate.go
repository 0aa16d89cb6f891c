package employee

import (
	employeeerrors "nursery-admin/internal/employee/errors"
	"nursery-admin/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the invariants the payroll engine relies on: enum fields
// inside their closed sets and every monetary field non-negative.
func (p *CompensationProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return apperror.MapValidationError(err)
	}

	if p.SalaryBase.IsNegative() || p.ShiftRate.IsNegative() || p.PenaltyAmount.IsNegative() {
		return employeeerrors.ErrNegativeAmount
	}

	return nil
}
