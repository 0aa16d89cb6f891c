package payroll

import (
	payrollerrors "nursery-admin/internal/payroll/errors"
	"nursery-admin/internal/period"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the payroll record state machine. Recalculation always moves a
// record to CALCULATED, including records previously approved, paid or
// archived: a fresh recompute is authoritative over a stale approval.
type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusCalculated Status = "CALCULATED"
	StatusApproved   Status = "APPROVED"
	StatusPaid       Status = "PAID"
	StatusArchived   Status = "ARCHIVED"
)

// ParseStatus rejects values outside the closed set.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusDraft, StatusCalculated, StatusApproved, StatusPaid, StatusArchived:
		return st, nil
	default:
		return "", payrollerrors.ErrUnknownStatus
	}
}

// Record is the engine's sole output, uniquely keyed by
// (employee_id, period_year, period_month). Total may be negative; payout
// workflows downstream decide how to treat that.
type Record struct {
	ID               uuid.UUID
	EmployeeID       uuid.UUID
	PeriodYear       int
	PeriodMonth      int
	Accruals         decimal.Decimal
	LatePenalties    decimal.Decimal
	AbsencePenalties decimal.Decimal
	AdHocFines       decimal.Decimal
	TotalPenalties   decimal.Decimal
	Total            decimal.Decimal
	WorkedDays       int
	WorkedShifts     int
	Status           Status
	CalculatedAt     time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Period returns the structured month the record covers.
func (r *Record) Period() period.Month {
	return period.Month{Year: r.PeriodYear, Month: time.Month(r.PeriodMonth)}
}
