package app

import (
	"context"
	"nursery-admin/internal/attendance"
	"nursery-admin/internal/employee"
	"nursery-admin/internal/messaging/kafka"
	"nursery-admin/internal/payroll"
	"nursery-admin/internal/period"
	"nursery-admin/internal/shared/connection"
	"nursery-admin/internal/shared/contextutil"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunRecalc executes one month-end payroll run for the given period.
// periodArg uses the "YYYY-MM" edge format; empty means the previous
// calendar month.
func RunRecalc(periodArg string) error {
	logger := zap.L().Named("app.recalc")

	m := period.MonthOf(time.Now().UTC()).Prev()
	if periodArg != "" {
		parsed, err := period.Parse(periodArg)
		if err != nil {
			return err
		}
		m = parsed
	}

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	profileRepo := employee.NewRepository(gormDB)
	shiftRepo := attendance.NewShiftRepository(gormDB)
	fineRepo := attendance.NewFineRepository(gormDB)
	source := attendance.NewSource(profileRepo, shiftRepo, fineRepo)
	store := payroll.NewStore(sqlDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	var lock *payroll.RecalcLock
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err := connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		defer rdb.Close()
		lock = payroll.NewRecalcLock(rdb, 30*time.Second)
	}

	svc := payroll.NewServiceWithLock(sqlDB, store, source, outboxRepo, lock)
	runner := payroll.NewBatchRunner(profileRepo, svc, 8)

	ctx := contextutil.WithRunID(context.Background(), uuid.NewString())

	result, err := runner.Run(ctx, m)
	if err != nil {
		return err
	}

	for id, runErr := range result.Failed {
		logger.Warn("payroll record not updated",
			zap.String("employee_id", id.String()),
			zap.Error(runErr),
		)
	}
	logger.Info("recalc run done",
		zap.String("period", m.String()),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", len(result.Failed)),
	)

	return nil
}
