package payroll

import (
	"nursery-admin/internal/employee"
	employeeerrors "nursery-admin/internal/employee/errors"

	"github.com/shopspring/decimal"
)

// ComputeAccrual derives the gross accrual for a period from the
// compensation profile and the worked-time aggregates.
//
//	PER_MONTH: flat salary base, regardless of days worked
//	PER_DAY:   salary base per distinct worked day
//	PER_SHIFT: shift rate per worked shift
//
// An unrecognized basis is a configuration error, not a zero accrual.
func ComputeAccrual(profile *employee.CompensationProfile, workedDays, workedShifts int) (decimal.Decimal, error) {
	switch profile.SalaryBasis {
	case employee.BasisPerMonth:
		return profile.SalaryBase, nil
	case employee.BasisPerDay:
		return profile.SalaryBase.Mul(decimal.NewFromInt(int64(workedDays))), nil
	case employee.BasisPerShift:
		return profile.ShiftRate.Mul(decimal.NewFromInt(int64(workedShifts))), nil
	default:
		return decimal.Zero, employeeerrors.ErrUnknownSalaryBasis
	}
}
