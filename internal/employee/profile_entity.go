package employee

import (
	employeeerrors "nursery-admin/internal/employee/errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryBasis selects how the nominal salary scales into a period accrual.
type SalaryBasis string

const (
	BasisPerMonth SalaryBasis = "PER_MONTH"
	BasisPerDay   SalaryBasis = "PER_DAY"
	BasisPerShift SalaryBasis = "PER_SHIFT"
)

// ParseSalaryBasis rejects values outside the closed set. There is no
// default branch on purpose: a stale or mistyped basis must surface as a
// configuration error, never as a silently wrong pay amount.
func ParseSalaryBasis(s string) (SalaryBasis, error) {
	switch b := SalaryBasis(s); b {
	case BasisPerMonth, BasisPerDay, BasisPerShift:
		return b, nil
	default:
		return "", employeeerrors.ErrUnknownSalaryBasis
	}
}

// PenaltyType selects the lateness-penalty policy for an employee.
type PenaltyType string

const (
	PenaltyFixed        PenaltyType = "FIXED"
	PenaltyPercent      PenaltyType = "PERCENT"
	PenaltyPerMinute    PenaltyType = "PER_MINUTE"
	PenaltyPer5Minutes  PenaltyType = "PER_5_MINUTES"
	PenaltyPer10Minutes PenaltyType = "PER_10_MINUTES"
)

// ParsePenaltyType rejects values outside the closed set, see ParseSalaryBasis.
func ParsePenaltyType(s string) (PenaltyType, error) {
	switch p := PenaltyType(s); p {
	case PenaltyFixed, PenaltyPercent, PenaltyPerMinute, PenaltyPer5Minutes, PenaltyPer10Minutes:
		return p, nil
	default:
		return "", employeeerrors.ErrUnknownPenaltyType
	}
}

// CompensationProfile holds the per-employee pay and penalty configuration.
// It is owned by HR actions; the payroll engine only reads it.
type CompensationProfile struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID    uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_profile_employee"`
	SalaryBase    decimal.Decimal `gorm:"column:salary_base;type:numeric(14,2);not null"`
	SalaryBasis   SalaryBasis     `gorm:"column:salary_basis;type:varchar(20);not null" validate:"required,oneof=PER_MONTH PER_DAY PER_SHIFT"`
	ShiftRate     decimal.Decimal `gorm:"column:shift_rate;type:numeric(14,2);not null"`
	PenaltyType   PenaltyType     `gorm:"column:penalty_type;type:varchar(20);not null" validate:"required,oneof=FIXED PERCENT PER_MINUTE PER_5_MINUTES PER_10_MINUTES"`
	PenaltyAmount decimal.Decimal `gorm:"column:penalty_amount;type:numeric(14,2);not null"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (CompensationProfile) TableName() string {
	return "compensation_profiles"
}
