package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"nursery-admin/internal/attendance"
	"nursery-admin/internal/employee"
	"nursery-admin/internal/events"
	"nursery-admin/internal/messaging/kafka"
	payrollerrors "nursery-admin/internal/payroll/errors"
	"nursery-admin/internal/period"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// AttendanceSource supplies everything one recalculation reads.
type AttendanceSource interface {
	GetProfile(ctx context.Context, employeeID uuid.UUID) (*employee.CompensationProfile, error)
	GetShifts(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]attendance.ShiftRecord, error)
	GetFines(ctx context.Context, employeeID uuid.UUID, m period.Month) ([]attendance.AdHocFine, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Recalculate(ctx context.Context, employeeID uuid.UUID, m period.Month) (*Record, error)
}

type service struct {
	db     *sql.DB
	store  Store
	source AttendanceSource
	outbox kafka.OutboxRepository
	lock   *RecalcLock
	sf     *singleflight.Group
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, store Store, source AttendanceSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		store:  store,
		source: source,
		sf:     &singleflight.Group{},
		logger: l,
		now:    time.Now,
	}
}

// NewServiceWithOutbox additionally writes a payroll.recalculated outbox
// row in the same transaction as the record upsert.
func NewServiceWithOutbox(db *sql.DB, store Store, source AttendanceSource, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	svc := NewService(db, store, source, logger...).(*service)
	svc.outbox = outbox
	return svc
}

// NewServiceWithLock additionally serializes recalculations per
// (employee, period) key across processes through the given redis lock.
// outbox may be nil.
func NewServiceWithLock(db *sql.DB, store Store, source AttendanceSource, outbox kafka.OutboxRepository, lock *RecalcLock, logger ...*zap.Logger) Service {
	svc := NewService(db, store, source, logger...).(*service)
	svc.outbox = outbox
	svc.lock = lock
	return svc
}

// Recalculate derives the payroll record for one employee and month from
// scratch and upserts it. The computation never partially writes: every
// read and every calculation happens before the transaction opens, so a
// failing run leaves any prior record untouched.
func (s *service) Recalculate(ctx context.Context, employeeID uuid.UUID, m period.Month) (*Record, error) {
	if err := m.Validate(); err != nil {
		return nil, payrollerrors.ErrInvalidPeriod
	}

	key := employeeID.String() + "|" + m.String()

	// Concurrent calls for the same key collapse onto one computation.
	result, err, _ := s.sf.Do(key, func() (any, error) {
		return s.recalculate(ctx, employeeID, m, key)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Record), nil
}

func (s *service) recalculate(ctx context.Context, employeeID uuid.UUID, m period.Month, key string) (*Record, error) {
	log := s.logger.With(
		zap.String("employee_id", employeeID.String()),
		zap.String("period", m.String()),
	)
	log.Debug("recalculation requested")

	if s.lock != nil {
		release, err := s.lock.Acquire(ctx, key)
		if err != nil {
			log.Warn("recalculation lock not acquired", zap.Error(err))
			return nil, err
		}
		defer release()
	}

	profile, err := s.source.GetProfile(ctx, employeeID)
	if err != nil {
		log.Warn("load profile failed", zap.Error(err))
		return nil, mapProfileError(err)
	}

	shifts, err := s.source.GetShifts(ctx, employeeID, m)
	if err != nil {
		log.Error("load shifts failed", zap.Error(err))
		return nil, err
	}

	fines, err := s.source.GetFines(ctx, employeeID, m)
	if err != nil {
		log.Error("load fines failed", zap.Error(err))
		return nil, err
	}

	record, err := s.build(profile, shifts, fines, employeeID, m)
	if err != nil {
		log.Warn("calculation failed", zap.Error(err))
		return nil, err
	}

	if err := s.persist(ctx, record); err != nil {
		log.Error("persist payroll record failed", zap.Error(err))
		return nil, err
	}

	log.Info("recalculation complete",
		zap.String("total", record.Total.String()),
		zap.Int("worked_days", record.WorkedDays),
		zap.Int("worked_shifts", record.WorkedShifts),
	)
	return record, nil
}

// build runs the pure part of a recalculation.
func (s *service) build(
	profile *employee.CompensationProfile,
	shifts []attendance.ShiftRecord,
	fines []attendance.AdHocFine,
	employeeID uuid.UUID,
	m period.Month,
) (*Record, error) {
	var (
		workedShifts int
		noShowCount  int
		workedDates  = map[string]struct{}{}
		lateShifts   []attendance.ShiftRecord
	)

	for _, shift := range shifts {
		switch {
		case shift.Status.Worked():
			workedShifts++
			workedDates[shift.ShiftDate.Format("2006-01-02")] = struct{}{}
			if shift.LateMinutes > 0 {
				lateShifts = append(lateShifts, shift)
			}
		case shift.Status == attendance.ShiftNoShow:
			noShowCount++
		}
	}
	workedDays := len(workedDates)

	accruals, err := ComputeAccrual(profile, workedDays, workedShifts)
	if err != nil {
		return nil, err
	}

	latePenalties, err := ComputeLatePenalties(profile, lateShifts)
	if err != nil {
		return nil, err
	}

	absencePenalties := ComputeAbsencePenalties(noShowCount)

	adHocFines := decimal.Zero
	for _, fine := range fines {
		adHocFines = adHocFines.Add(fine.Amount)
	}

	totalPenalties := latePenalties.Add(absencePenalties).Add(adHocFines)

	return &Record{
		EmployeeID:       employeeID,
		PeriodYear:       m.Year,
		PeriodMonth:      int(m.Month),
		Accruals:         accruals,
		LatePenalties:    latePenalties,
		AbsencePenalties: absencePenalties,
		AdHocFines:       adHocFines,
		TotalPenalties:   totalPenalties,
		Total:            accruals.Sub(totalPenalties),
		WorkedDays:       workedDays,
		WorkedShifts:     workedShifts,
		Status:           StatusCalculated,
		CalculatedAt:     s.now().UTC(),
	}, nil
}

func (s *service) persist(ctx context.Context, record *Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return payrollerrors.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.store.WithTx(tx)
	if err := qtx.Upsert(ctx, record); err != nil {
		return err
	}

	if s.outbox != nil {
		if err := s.writeOutboxEvent(ctx, tx, record); err != nil {
			return payrollerrors.StoreUnavailable(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return payrollerrors.StoreUnavailable(err)
	}
	return nil
}

func (s *service) writeOutboxEvent(ctx context.Context, tx *sql.Tx, record *Record) error {
	payload, err := json.Marshal(events.PayrollRecalculatedEvent{
		EventType:    "payroll.recalculated",
		RecordID:     record.ID.String(),
		EmployeeID:   record.EmployeeID.String(),
		Period:       record.Period().String(),
		Total:        record.Total.String(),
		Status:       string(record.Status),
		CalculatedAt: record.CalculatedAt,
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "payroll_record",
		AggregateID:   record.ID.String(),
		EventType:     "payroll.recalculated",
		Topic:         events.PayrollRecalculatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
