package payroll_test

import (
	"nursery-admin/internal/attendance"
	"nursery-admin/internal/employee"
	employeeerrors "nursery-admin/internal/employee/errors"
	"nursery-admin/internal/payroll"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lateShift(minutes int) attendance.ShiftRecord {
	return attendance.ShiftRecord{Status: attendance.ShiftCompleted, LateMinutes: minutes}
}

func TestComputeLatePenalties_PerMinute(t *testing.T) {
	profile := &employee.CompensationProfile{
		PenaltyType:   employee.PenaltyPerMinute,
		PenaltyAmount: money(10),
	}

	total, err := payroll.ComputeLatePenalties(profile, []attendance.ShiftRecord{
		lateShift(7), lateShift(3),
	})
	assert.NoError(t, err)
	assert.True(t, total.Equal(money(100)), "got %s", total)
}

func TestComputeLatePenalties_Per5Minutes(t *testing.T) {
	profile := &employee.CompensationProfile{
		PenaltyType:   employee.PenaltyPer5Minutes,
		PenaltyAmount: money(200),
	}

	cases := []struct {
		minutes int
		want    int64
	}{
		{minutes: 12, want: 600}, // ceil(12/5) = 3 blocks
		{minutes: 5, want: 200},
		{minutes: 1, want: 200},
		{minutes: 0, want: 0},
	}
	for _, tc := range cases {
		total, err := payroll.ComputeLatePenalties(profile, []attendance.ShiftRecord{lateShift(tc.minutes)})
		assert.NoError(t, err)
		assert.True(t, total.Equal(money(tc.want)), "minutes=%d got %s", tc.minutes, total)
	}
}

func TestComputeLatePenalties_Per10Minutes(t *testing.T) {
	profile := &employee.CompensationProfile{
		PenaltyType:   employee.PenaltyPer10Minutes,
		PenaltyAmount: money(150),
	}

	total, err := payroll.ComputeLatePenalties(profile, []attendance.ShiftRecord{lateShift(21)})
	assert.NoError(t, err)
	assert.True(t, total.Equal(money(450)), "got %s", total)
}

func TestComputeLatePenalties_Fixed(t *testing.T) {
	profile := &employee.CompensationProfile{
		PenaltyType:   employee.PenaltyFixed,
		PenaltyAmount: money(500),
	}

	// Flat per late shift, regardless of how late.
	total, err := payroll.ComputeLatePenalties(profile, []attendance.ShiftRecord{
		lateShift(1), lateShift(120),
	})
	assert.NoError(t, err)
	assert.True(t, total.Equal(money(1000)), "got %s", total)
}

func TestComputeLatePenalties_Percent(t *testing.T) {
	t.Run("monthly basis uses the 22 working day convention", func(t *testing.T) {
		profile := &employee.CompensationProfile{
			SalaryBase:    money(220000),
			SalaryBasis:   employee.BasisPerMonth,
			PenaltyType:   employee.PenaltyPercent,
			PenaltyAmount: money(50),
		}

		// dailyRate = 220000 / 22 = 10000, penalty = 10000 * 50% = 5000
		total, err := payroll.ComputeLatePenalties(profile, []attendance.ShiftRecord{lateShift(30)})
		assert.NoError(t, err)
		assert.True(t, total.Equal(money(5000)), "got %s", total)
	})

	t.Run("daily basis uses salary base directly", func(t *testing.T) {
		profile := &employee.CompensationProfile{
			SalaryBase:    money(4000),
			SalaryBasis:   employee.BasisPerDay,
			PenaltyType:   employee.PenaltyPercent,
			PenaltyAmount: money(25),
		}

		total, err := payroll.ComputeLatePenalties(profile, []attendance.ShiftRecord{lateShift(10)})
		assert.NoError(t, err)
		assert.True(t, total.Equal(money(1000)), "got %s", total)
	})

	t.Run("shift basis uses shift rate", func(t *testing.T) {
		profile := &employee.CompensationProfile{
			ShiftRate:     money(6000),
			SalaryBasis:   employee.BasisPerShift,
			PenaltyType:   employee.PenaltyPercent,
			PenaltyAmount: money(10),
		}

		total, err := payroll.ComputeLatePenalties(profile, []attendance.ShiftRecord{lateShift(10)})
		assert.NoError(t, err)
		assert.True(t, total.Equal(money(600)), "got %s", total)
	})
}

func TestComputeLatePenalties_ZeroLateMinutesContributeNothing(t *testing.T) {
	profile := &employee.CompensationProfile{
		PenaltyType:   employee.PenaltyFixed,
		PenaltyAmount: money(500),
	}

	total, err := payroll.ComputeLatePenalties(profile, []attendance.ShiftRecord{
		lateShift(0), lateShift(0),
	})
	assert.NoError(t, err)
	assert.True(t, total.IsZero(), "got %s", total)
}

func TestComputeLatePenalties_UnknownPenaltyType(t *testing.T) {
	profile := &employee.CompensationProfile{
		PenaltyType:   employee.PenaltyType("EXPONENTIAL"),
		PenaltyAmount: money(500),
	}

	_, err := payroll.ComputeLatePenalties(profile, []attendance.ShiftRecord{lateShift(5)})
	assert.ErrorIs(t, err, employeeerrors.ErrUnknownPenaltyType)
}

func TestComputeAbsencePenalties(t *testing.T) {
	total := payroll.ComputeAbsencePenalties(3)
	assert.True(t, total.Equal(money(3*payroll.AbsencePenaltyUnits)), "got %s", total)
	assert.True(t, total.Equal(money(1890)))

	assert.True(t, payroll.ComputeAbsencePenalties(0).IsZero())
	assert.True(t, payroll.ComputeAbsencePenalties(-1).IsZero())
}

func TestWorkingDaysConvention(t *testing.T) {
	// The divisor is a fixed business convention, not derived from the
	// calendar. Percent penalties for monthly employees depend on it.
	assert.Equal(t, 22, payroll.WorkingDaysPerMonth)

	profile := &employee.CompensationProfile{
		SalaryBase:    money(110000),
		SalaryBasis:   employee.BasisPerMonth,
		PenaltyType:   employee.PenaltyPercent,
		PenaltyAmount: money(100),
	}

	// 100% of one daily rate: 110000 / 22 = 5000
	total, err := payroll.ComputeLatePenalties(profile, []attendance.ShiftRecord{lateShift(45)})
	assert.NoError(t, err)
	assert.True(t, total.Equal(money(5000)), "got %s", total)
}
