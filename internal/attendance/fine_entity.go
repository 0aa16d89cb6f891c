package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdHocFine is a manually entered deduction independent of lateness.
type AdHocFine struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;index"`
	FineDate   time.Time       `gorm:"column:fine_date;type:date;not null;index"`
	Amount     decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	Reason     *string         `gorm:"column:reason;type:text"`
	CreatedBy  uuid.UUID       `gorm:"column:created_by;type:uuid"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
}

func (AdHocFine) TableName() string {
	return "ad_hoc_fines"
}
