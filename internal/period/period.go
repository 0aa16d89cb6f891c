// Package period models the payroll aggregation window as a structured
// (year, month) value instead of a "YYYY-MM" string, so period arithmetic
// around year boundaries cannot go through string parsing.
package period

import (
	"fmt"
	"net/http"
	"nursery-admin/internal/shared/apperror"
	"time"
)

var ErrInvalidPeriod = apperror.New(
	apperror.CodeInvalidInput,
	"invalid payroll period, expected YYYY-MM",
	http.StatusBadRequest,
)

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Parse reads the canonical "YYYY-MM" form used at system edges.
func Parse(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, ErrInvalidPeriod
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Validate rejects zero values and out-of-range month numbers.
func (m Month) Validate() error {
	if m.Year < 1 || m.Month < time.January || m.Month > time.December {
		return ErrInvalidPeriod
	}
	return nil
}

// Start returns midnight UTC on the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Bounds returns the half-open [start, end) range covering the month.
func (m Month) Bounds() (time.Time, time.Time) {
	start := m.Start()
	return start, m.Next().Start()
}

func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	start, end := m.Bounds()
	return !t.Before(start) && t.Before(end)
}
