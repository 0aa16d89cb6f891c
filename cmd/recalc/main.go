package main

import (
	"flag"
	"nursery-admin/internal/app"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	periodArg := flag.String("period", "", "payroll period as YYYY-MM, defaults to the previous month")
	flag.Parse()

	if err := app.RunRecalc(*periodArg); err != nil {
		logger.Fatal("recalc run failed", zap.Error(err))
	}
}
