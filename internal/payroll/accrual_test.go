package payroll_test

import (
	"nursery-admin/internal/employee"
	employeeerrors "nursery-admin/internal/employee/errors"
	"nursery-admin/internal/payroll"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestComputeAccrual_PerMonth(t *testing.T) {
	profile := &employee.CompensationProfile{
		SalaryBase:  money(100000),
		SalaryBasis: employee.BasisPerMonth,
	}

	// Flat accrual, independent of worked time.
	for _, workedDays := range []int{0, 10, 22} {
		accrual, err := payroll.ComputeAccrual(profile, workedDays, 0)
		assert.NoError(t, err)
		assert.True(t, accrual.Equal(money(100000)), "workedDays=%d got %s", workedDays, accrual)
	}
}

func TestComputeAccrual_PerDay(t *testing.T) {
	profile := &employee.CompensationProfile{
		SalaryBase:  money(2000),
		SalaryBasis: employee.BasisPerDay,
	}

	accrual, err := payroll.ComputeAccrual(profile, 20, 25)
	assert.NoError(t, err)
	assert.True(t, accrual.Equal(money(40000)), "got %s", accrual)
}

func TestComputeAccrual_PerShift(t *testing.T) {
	profile := &employee.CompensationProfile{
		SalaryBase:  money(999999),
		ShiftRate:   money(5000),
		SalaryBasis: employee.BasisPerShift,
	}

	accrual, err := payroll.ComputeAccrual(profile, 10, 15)
	assert.NoError(t, err)
	assert.True(t, accrual.Equal(money(75000)), "got %s", accrual)
}

func TestComputeAccrual_UnknownBasis(t *testing.T) {
	profile := &employee.CompensationProfile{
		SalaryBase:  money(100000),
		SalaryBasis: employee.SalaryBasis("WEEKLY"),
	}

	_, err := payroll.ComputeAccrual(profile, 20, 20)
	assert.ErrorIs(t, err, employeeerrors.ErrUnknownSalaryBasis)
}
