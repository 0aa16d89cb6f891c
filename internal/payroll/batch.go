package payroll

import (
	"context"
	"nursery-admin/internal/period"
	"nursery-admin/internal/shared/contextutil"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultBatchParallelism = 8

// EmployeeLister yields the employees that take part in a month-end run.
type EmployeeLister interface {
	ListEmployeeIDs(ctx context.Context) ([]uuid.UUID, error)
}

// BatchResult reports a month-end run. Failed holds the error per employee
// whose recalculation aborted; those employees keep their prior record.
type BatchResult struct {
	Month     period.Month
	Succeeded int
	Failed    map[uuid.UUID]error
}

// BatchRunner recalculates every employee for one month. Employees are
// independent, so recalculations run in parallel up to the configured
// limit. One failing employee never aborts the rest of the run.
type BatchRunner struct {
	employees   EmployeeLister
	svc         Service
	parallelism int
	logger      *zap.Logger
}

func NewBatchRunner(employees EmployeeLister, svc Service, parallelism int, logger ...*zap.Logger) *BatchRunner {
	if parallelism <= 0 {
		parallelism = defaultBatchParallelism
	}
	l := zap.L().Named("payroll.batch")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.batch")
	}
	return &BatchRunner{
		employees:   employees,
		svc:         svc,
		parallelism: parallelism,
		logger:      l,
	}
}

// Run recalculates the month for every employee with a compensation
// profile. The returned error is non-nil only when the employee list
// cannot be loaded or the context is cancelled; per-employee failures are
// collected in the result instead.
func (r *BatchRunner) Run(ctx context.Context, m period.Month) (BatchResult, error) {
	result := BatchResult{Month: m, Failed: map[uuid.UUID]error{}}

	if err := m.Validate(); err != nil {
		return result, err
	}

	runID := contextutil.GetRunID(ctx)
	if runID == "" {
		runID = uuid.NewString()
		ctx = contextutil.WithRunID(ctx, runID)
	}
	log := r.logger.With(zap.String("run_id", runID), zap.String("period", m.String()))

	ids, err := r.employees.ListEmployeeIDs(ctx)
	if err != nil {
		log.Error("list employees failed", zap.Error(err))
		return result, err
	}

	log.Info("month-end run started", zap.Int("employees", len(ids)))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if _, err := r.svc.Recalculate(gctx, id, m); err != nil {
				log.Warn("employee recalculation failed",
					zap.String("employee_id", id.String()),
					zap.Error(err),
				)
				mu.Lock()
				result.Failed[id] = err
				mu.Unlock()
				// Business failures stay per-employee; only cancellation
				// stops the group.
				return nil
			}

			mu.Lock()
			result.Succeeded++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	log.Info("month-end run finished",
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}
