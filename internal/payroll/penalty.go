package payroll

import (
	"nursery-admin/internal/attendance"
	"nursery-admin/internal/employee"
	employeeerrors "nursery-admin/internal/employee/errors"

	"github.com/shopspring/decimal"
)

// WorkingDaysPerMonth is the fixed divisor used to turn a monthly salary
// into a daily rate for percent-based lateness penalties. It is a business
// assumption, not a value derived from the actual calendar.
// TODO: move to per-organization configuration together with
// AbsencePenaltyUnits.
const WorkingDaysPerMonth = 22

// AbsencePenaltyUnits is the flat charge for every NO_SHOW shift, in
// currency units. Same caveat as WorkingDaysPerMonth.
const AbsencePenaltyUnits = 630

var (
	workingDaysPerMonth = decimal.NewFromInt(WorkingDaysPerMonth)
	absencePenalty      = decimal.NewFromInt(AbsencePenaltyUnits)
	hundred             = decimal.NewFromInt(100)
)

// ComputeLatePenalties applies the employee's lateness policy to every
// shift with positive late minutes and sums the results. Shifts with zero
// late minutes contribute nothing.
func ComputeLatePenalties(profile *employee.CompensationProfile, lateShifts []attendance.ShiftRecord) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, shift := range lateShifts {
		if shift.LateMinutes <= 0 {
			continue
		}

		penalty, err := latePenaltyForShift(profile, shift.LateMinutes)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(penalty)
	}

	return total, nil
}

func latePenaltyForShift(profile *employee.CompensationProfile, lateMinutes int) (decimal.Decimal, error) {
	switch profile.PenaltyType {
	case employee.PenaltyPerMinute:
		return profile.PenaltyAmount.Mul(decimal.NewFromInt(int64(lateMinutes))), nil
	case employee.PenaltyPer5Minutes:
		return profile.PenaltyAmount.Mul(decimal.NewFromInt(ceilDiv(lateMinutes, 5))), nil
	case employee.PenaltyPer10Minutes:
		return profile.PenaltyAmount.Mul(decimal.NewFromInt(ceilDiv(lateMinutes, 10))), nil
	case employee.PenaltyFixed:
		return profile.PenaltyAmount, nil
	case employee.PenaltyPercent:
		rate, err := dailyRate(profile)
		if err != nil {
			return decimal.Zero, err
		}
		return rate.Mul(profile.PenaltyAmount).Div(hundred), nil
	default:
		return decimal.Zero, employeeerrors.ErrUnknownPenaltyType
	}
}

// dailyRate is the reference day value used by percent penalties.
func dailyRate(profile *employee.CompensationProfile) (decimal.Decimal, error) {
	switch profile.SalaryBasis {
	case employee.BasisPerMonth:
		return profile.SalaryBase.Div(workingDaysPerMonth), nil
	case employee.BasisPerDay:
		return profile.SalaryBase, nil
	case employee.BasisPerShift:
		return profile.ShiftRate, nil
	default:
		return decimal.Zero, employeeerrors.ErrUnknownSalaryBasis
	}
}

// ComputeAbsencePenalties charges the flat absence penalty for every
// NO_SHOW shift in the period.
func ComputeAbsencePenalties(noShowCount int) decimal.Decimal {
	if noShowCount <= 0 {
		return decimal.Zero
	}
	return absencePenalty.Mul(decimal.NewFromInt(int64(noShowCount)))
}

func ceilDiv(n, d int) int64 {
	return int64((n + d - 1) / d)
}
