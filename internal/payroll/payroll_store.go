package payroll

import (
	"context"
	"database/sql"
	"errors"
	payrollerrors "nursery-admin/internal/payroll/errors"
	"nursery-admin/internal/period"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payroll_store.go -destination=mock/payroll_store_mock.go -package=mock
type Store interface {
	WithTx(tx *sql.Tx) Store
	Upsert(ctx context.Context, record *Record) error
	FindByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, m period.Month) (*Record, error)
	ListByPeriod(ctx context.Context, m period.Month) ([]Record, error)
}

type store struct {
	db *sql.DB
	tx *sql.Tx
}

func NewStore(db *sql.DB) Store {
	return &store{db: db}
}

func (s *store) WithTx(tx *sql.Tx) Store {
	return &store{db: s.db, tx: tx}
}

// Upsert inserts the record or overwrites the existing row for the same
// (employee, period) key in place. The stored row keeps its original id and
// created_at across recalculations; both are written back into record.
func (s *store) Upsert(ctx context.Context, record *Record) error {
	query := `
INSERT INTO payroll_records (
	id, employee_id, period_year, period_month,
	accruals, late_penalties, absence_penalties, ad_hoc_fines,
	total_penalties, total, worked_days, worked_shifts,
	status, calculated_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
ON CONFLICT (employee_id, period_year, period_month) DO UPDATE SET
	accruals = EXCLUDED.accruals,
	late_penalties = EXCLUDED.late_penalties,
	absence_penalties = EXCLUDED.absence_penalties,
	ad_hoc_fines = EXCLUDED.ad_hoc_fines,
	total_penalties = EXCLUDED.total_penalties,
	total = EXCLUDED.total,
	worked_days = EXCLUDED.worked_days,
	worked_shifts = EXCLUDED.worked_shifts,
	status = EXCLUDED.status,
	calculated_at = EXCLUDED.calculated_at,
	updated_at = NOW()
RETURNING id, created_at
`

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	row := s.querier().QueryRowContext(
		ctx, query,
		record.ID, record.EmployeeID, record.PeriodYear, record.PeriodMonth,
		record.Accruals, record.LatePenalties, record.AbsencePenalties, record.AdHocFines,
		record.TotalPenalties, record.Total, record.WorkedDays, record.WorkedShifts,
		record.Status, record.CalculatedAt,
	)

	if err := row.Scan(&record.ID, &record.CreatedAt); err != nil {
		return payrollerrors.StoreUnavailable(err)
	}
	return nil
}

func (s *store) FindByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, m period.Month) (*Record, error) {
	query := selectColumns + `
WHERE employee_id = $1 AND period_year = $2 AND period_month = $3
`

	row := s.querier().QueryRowContext(ctx, query, employeeID, m.Year, int(m.Month))

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payrollerrors.ErrRecordNotFound
		}
		return nil, payrollerrors.StoreUnavailable(err)
	}
	return record, nil
}

func (s *store) ListByPeriod(ctx context.Context, m period.Month) ([]Record, error) {
	query := selectColumns + `
WHERE period_year = $1 AND period_month = $2
ORDER BY employee_id ASC
`

	rows, err := s.querier().QueryContext(ctx, query, m.Year, int(m.Month))
	if err != nil {
		return nil, payrollerrors.StoreUnavailable(err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, payrollerrors.StoreUnavailable(err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, payrollerrors.StoreUnavailable(err)
	}
	return records, nil
}

const selectColumns = `
SELECT
	id, employee_id, period_year, period_month,
	accruals, late_penalties, absence_penalties, ad_hoc_fines,
	total_penalties, total, worked_days, worked_shifts,
	status, calculated_at, created_at, updated_at
FROM payroll_records
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		record Record
		status string
	)
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.PeriodYear, &record.PeriodMonth,
		&record.Accruals, &record.LatePenalties, &record.AbsencePenalties, &record.AdHocFines,
		&record.TotalPenalties, &record.Total, &record.WorkedDays, &record.WorkedShifts,
		&status, &record.CalculatedAt, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Status, err = ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *store) querier() interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
} {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}
