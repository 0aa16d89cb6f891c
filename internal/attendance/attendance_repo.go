package attendance

import (
	"context"
	attendanceerrors "nursery-admin/internal/attendance/errors"
	"nursery-admin/internal/period"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type ShiftRepository interface {
	FindByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]ShiftRecord, error)
	Create(ctx context.Context, shift *ShiftRecord) error
}

type FineRepository interface {
	FindByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]AdHocFine, error)
	Create(ctx context.Context, fine *AdHocFine) error
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) FindByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]ShiftRecord, error) {
	start, end := m.Bounds()

	var shifts []ShiftRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("shift_date >= ? AND shift_date < ?", start, end).
		Order("shift_date ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) Create(ctx context.Context, shift *ShiftRecord) error {
	if shift.LateMinutes < 0 {
		return attendanceerrors.ErrNegativeLateMinutes
	}
	if shift.ID == uuid.Nil {
		shift.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(shift).Error
}

type fineRepository struct {
	db *gorm.DB
}

func NewFineRepository(db *gorm.DB) FineRepository {
	return &fineRepository{db: db}
}

func (r *fineRepository) FindByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]AdHocFine, error) {
	start, end := m.Bounds()

	var fines []AdHocFine
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("fine_date >= ? AND fine_date < ?", start, end).
		Order("fine_date ASC").
		Find(&fines).Error
	return fines, err
}

func (r *fineRepository) Create(ctx context.Context, fine *AdHocFine) error {
	if fine.Amount.IsNegative() {
		return attendanceerrors.ErrNegativeFineAmount
	}
	if fine.ID == uuid.Nil {
		fine.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(fine).Error
}
