package attendance

import (
	"context"
	"errors"
	attendanceerrors "nursery-admin/internal/attendance/errors"
	"nursery-admin/internal/employee"
	employeeerrors "nursery-admin/internal/employee/errors"
	"nursery-admin/internal/period"

	"github.com/google/uuid"
)

// Source bundles everything the payroll engine reads for one recalculation:
// the employee's compensation profile, the month's shift records and the
// month's ad-hoc fines. Infrastructure failures come back wrapped as
// source-unavailable so the engine can abort without a partial write;
// a missing profile keeps its not-found identity.
type Source struct {
	profiles employee.Repository
	shifts   ShiftRepository
	fines    FineRepository
}

func NewSource(profiles employee.Repository, shifts ShiftRepository, fines FineRepository) *Source {
	return &Source{profiles: profiles, shifts: shifts, fines: fines}
}

func (s *Source) GetProfile(ctx context.Context, employeeID uuid.UUID) (*employee.CompensationProfile, error) {
	profile, err := s.profiles.FindByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrProfileNotFound) {
			return nil, err
		}
		return nil, attendanceerrors.SourceUnavailable(err)
	}
	return profile, nil
}

func (s *Source) GetShifts(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]ShiftRecord, error) {
	shifts, err := s.shifts.FindByEmployeeAndPeriod(ctx, employeeID, m)
	if err != nil {
		return nil, attendanceerrors.SourceUnavailable(err)
	}
	return shifts, nil
}

func (s *Source) GetFines(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]AdHocFine, error) {
	fines, err := s.fines.FindByEmployeeAndPeriod(ctx, employeeID, m)
	if err != nil {
		return nil, attendanceerrors.SourceUnavailable(err)
	}
	return fines, nil
}
