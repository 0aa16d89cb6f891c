package attendance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nursery-admin/internal/attendance"
	"nursery-admin/internal/employee"
	employeeerrors "nursery-admin/internal/employee/errors"
	"nursery-admin/internal/period"
	"nursery-admin/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeProfileRepo struct {
	findFn func(ctx context.Context, employeeID uuid.UUID) (*employee.CompensationProfile, error)
}

func (f *fakeProfileRepo) FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*employee.CompensationProfile, error) {
	return f.findFn(ctx, employeeID)
}

func (f *fakeProfileRepo) ListEmployeeIDs(ctx context.Context) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeProfileRepo) Save(ctx context.Context, profile *employee.CompensationProfile) error {
	return nil
}

type fakeShiftRepo struct {
	findFn func(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]attendance.ShiftRecord, error)
}

func (f *fakeShiftRepo) FindByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]attendance.ShiftRecord, error) {
	return f.findFn(ctx, employeeID, m)
}

func (f *fakeShiftRepo) Create(ctx context.Context, shift *attendance.ShiftRecord) error {
	return nil
}

type fakeFineRepo struct {
	findFn func(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]attendance.AdHocFine, error)
}

func (f *fakeFineRepo) FindByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]attendance.AdHocFine, error) {
	return f.findFn(ctx, employeeID, m)
}

func (f *fakeFineRepo) Create(ctx context.Context, fine *attendance.AdHocFine) error {
	return nil
}

func TestSourceGetProfile_NotFoundPassesThrough(t *testing.T) {
	source := attendance.NewSource(
		&fakeProfileRepo{findFn: func(ctx context.Context, id uuid.UUID) (*employee.CompensationProfile, error) {
			return nil, employeeerrors.ErrProfileNotFound
		}},
		&fakeShiftRepo{},
		&fakeFineRepo{},
	)

	_, err := source.GetProfile(context.Background(), uuid.New())

	assert.ErrorIs(t, err, employeeerrors.ErrProfileNotFound)
}

func TestSourceGetProfile_InfraErrorWrapped(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	source := attendance.NewSource(
		&fakeProfileRepo{findFn: func(ctx context.Context, id uuid.UUID) (*employee.CompensationProfile, error) {
			return nil, cause
		}},
		&fakeShiftRepo{},
		&fakeFineRepo{},
	)

	_, err := source.GetProfile(context.Background(), uuid.New())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeServiceUnavailable, appErr.Code)
	assert.ErrorIs(t, err, cause)
}

func TestSourceGetShifts_InfraErrorWrapped(t *testing.T) {
	source := attendance.NewSource(
		&fakeProfileRepo{},
		&fakeShiftRepo{findFn: func(ctx context.Context, id uuid.UUID, m period.Month) ([]attendance.ShiftRecord, error) {
			return nil, errors.New("query timeout")
		}},
		&fakeFineRepo{},
	)

	_, err := source.GetShifts(context.Background(), uuid.New(), period.Month{Year: 2025, Month: time.November})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeServiceUnavailable, appErr.Code)
}

func TestSourceGetFines_OK(t *testing.T) {
	employeeID := uuid.New()
	source := attendance.NewSource(
		&fakeProfileRepo{},
		&fakeShiftRepo{},
		&fakeFineRepo{findFn: func(ctx context.Context, id uuid.UUID, m period.Month) ([]attendance.AdHocFine, error) {
			return []attendance.AdHocFine{
				{EmployeeID: id, Amount: decimal.NewFromInt(500)},
			}, nil
		}},
	)

	fines, err := source.GetFines(context.Background(), employeeID, period.Month{Year: 2025, Month: time.November})

	assert.NoError(t, err)
	assert.Len(t, fines, 1)
	assert.True(t, fines[0].Amount.Equal(decimal.NewFromInt(500)))
}

func TestShiftStatusWorked(t *testing.T) {
	assert.True(t, attendance.ShiftCompleted.Worked())
	assert.True(t, attendance.ShiftInProgress.Worked())
	assert.False(t, attendance.ShiftPlanned.Worked())
	assert.False(t, attendance.ShiftNoShow.Worked())
	assert.False(t, attendance.ShiftCancelled.Worked())
}

func TestParseShiftStatus(t *testing.T) {
	s, err := attendance.ParseShiftStatus("NO_SHOW")
	assert.NoError(t, err)
	assert.Equal(t, attendance.ShiftNoShow, s)

	_, err = attendance.ParseShiftStatus("GHOSTED")
	assert.Error(t, err)
}
