package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyReport is a derived aggregate for one (month, year) period. It is a
// regenerable cache, never a source of truth: recomputing it from the same
// students and payments always yields the same figures.
type MonthlyReport struct {
	ID              string          `json:"id"`
	Month           Month           `json:"month"`
	Year            int             `json:"year"`
	TotalCollection decimal.Decimal `json:"total_collection"`
	TotalPending    decimal.Decimal `json:"total_pending"`
	TotalDue        decimal.Decimal `json:"total_due"`
	TotalAdvance    decimal.Decimal `json:"total_advance"`
	StudentsPaid    int             `json:"students_paid"`
	StudentsPartial int             `json:"students_partial"`
	StudentsPending int             `json:"students_pending"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
