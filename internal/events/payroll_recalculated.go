package events

import "time"

const PayrollRecalculatedTopic = "nursery.payroll.recalculated.v1"

type PayrollRecalculatedEvent struct {
	EventType    string    `json:"event_type"`
	RecordID     string    `json:"record_id"`
	EmployeeID   string    `json:"employee_id"`
	Period       string    `json:"period"`
	Total        string    `json:"total"`
	Status       string    `json:"status"`
	CalculatedAt time.Time `json:"calculated_at"`
}
