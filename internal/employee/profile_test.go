package employee_test

import (
	"testing"

	"nursery-admin/internal/employee"
	employeeerrors "nursery-admin/internal/employee/errors"
	"nursery-admin/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validProfile() *employee.CompensationProfile {
	return &employee.CompensationProfile{
		ID:            uuid.New(),
		EmployeeID:    uuid.New(),
		SalaryBase:    decimal.NewFromInt(100000),
		SalaryBasis:   employee.BasisPerMonth,
		ShiftRate:     decimal.NewFromInt(5000),
		PenaltyType:   employee.PenaltyFixed,
		PenaltyAmount: decimal.NewFromInt(500),
	}
}

func TestProfileValidate_OK(t *testing.T) {
	assert.NoError(t, validProfile().Validate())
}

func TestProfileValidate_NegativeMoney(t *testing.T) {
	for name, mutate := range map[string]func(*employee.CompensationProfile){
		"salary base":    func(p *employee.CompensationProfile) { p.SalaryBase = decimal.NewFromInt(-1) },
		"shift rate":     func(p *employee.CompensationProfile) { p.ShiftRate = decimal.NewFromInt(-1) },
		"penalty amount": func(p *employee.CompensationProfile) { p.PenaltyAmount = decimal.NewFromInt(-1) },
	} {
		p := validProfile()
		mutate(p)
		assert.ErrorIs(t, p.Validate(), employeeerrors.ErrNegativeAmount, name)
	}
}

func TestProfileValidate_BadEnums(t *testing.T) {
	p := validProfile()
	p.SalaryBasis = "WEEKLY"
	err := p.Validate()

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)

	p = validProfile()
	p.PenaltyType = ""
	assert.Error(t, p.Validate())
}

func TestParseSalaryBasis(t *testing.T) {
	b, err := employee.ParseSalaryBasis("PER_DAY")
	assert.NoError(t, err)
	assert.Equal(t, employee.BasisPerDay, b)

	_, err = employee.ParseSalaryBasis("per_day")
	assert.ErrorIs(t, err, employeeerrors.ErrUnknownSalaryBasis)

	_, err = employee.ParseSalaryBasis("")
	assert.ErrorIs(t, err, employeeerrors.ErrUnknownSalaryBasis)
}

func TestParsePenaltyType(t *testing.T) {
	p, err := employee.ParsePenaltyType("PER_5_MINUTES")
	assert.NoError(t, err)
	assert.Equal(t, employee.PenaltyPer5Minutes, p)

	_, err = employee.ParsePenaltyType("HOURLY")
	assert.ErrorIs(t, err, employeeerrors.ErrUnknownPenaltyType)
}
