package attendance

import (
	attendanceerrors "nursery-admin/internal/attendance/errors"
	"time"

	"github.com/google/uuid"
)

// ShiftStatus is the lifecycle of one scheduled shift.
type ShiftStatus string

const (
	ShiftPlanned    ShiftStatus = "PLANNED"
	ShiftInProgress ShiftStatus = "IN_PROGRESS"
	ShiftCompleted  ShiftStatus = "COMPLETED"
	ShiftNoShow     ShiftStatus = "NO_SHOW"
	ShiftCancelled  ShiftStatus = "CANCELLED"
)

// ParseShiftStatus rejects values outside the closed set.
func ParseShiftStatus(s string) (ShiftStatus, error) {
	switch st := ShiftStatus(s); st {
	case ShiftPlanned, ShiftInProgress, ShiftCompleted, ShiftNoShow, ShiftCancelled:
		return st, nil
	default:
		return "", attendanceerrors.ErrUnknownShiftStatus
	}
}

// Worked reports whether the shift counts toward worked-time aggregates.
// Planned and cancelled shifts are excluded from all payroll calculations;
// a no-show is an absence event, not worked time.
func (s ShiftStatus) Worked() bool {
	return s == ShiftCompleted || s == ShiftInProgress
}

// ShiftRecord is one scheduled work shift for an employee on a date.
// Attendance tracking owns it; payroll only reads it.
type ShiftRecord struct {
	ID             uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID     uuid.UUID   `gorm:"column:employee_id;type:uuid;not null;index"`
	ShiftDate      time.Time   `gorm:"column:shift_date;type:date;not null;index"`
	ScheduledStart *time.Time  `gorm:"column:scheduled_start;type:timestamptz"`
	ScheduledEnd   *time.Time  `gorm:"column:scheduled_end;type:timestamptz"`
	ActualStart    *time.Time  `gorm:"column:actual_start;type:timestamptz"`
	ActualEnd      *time.Time  `gorm:"column:actual_end;type:timestamptz"`
	Status         ShiftStatus `gorm:"column:status;type:varchar(20);not null;default:PLANNED"`
	LateMinutes    int         `gorm:"column:late_minutes;not null;default:0"`
	Notes          *string     `gorm:"column:notes;type:text"`
	CreatedAt      time.Time   `gorm:"column:created_at"`
	UpdatedAt      time.Time   `gorm:"column:updated_at"`
}

func (ShiftRecord) TableName() string {
	return "shift_records"
}
