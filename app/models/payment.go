package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeePayment represents one student's fee status for exactly one
// (month, year) period. A pending record means nothing has been collected
// and the full monthly fee is owed regardless of the stored amount.
//
// Storage does not enforce uniqueness on (student_id, month, year);
// duplicates are collapsed by ledger.Normalize before any computation.
type FeePayment struct {
	ID        string          `json:"id"`
	StudentID string          `json:"student_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Month     Month           `json:"month" validate:"required"`
	Year      int             `json:"year" validate:"required,gt=2000"`
	PaidDate  *time.Time      `json:"paid_date,omitempty"`
	IsAdvance bool            `json:"is_advance"`
	IsPending bool            `json:"is_pending"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Status classifies the record against the student's monthly fee.
func (p *FeePayment) Status(feeAmount decimal.Decimal) PaymentStatus {
	if p.IsPending {
		return StatusPending
	}
	if p.Amount.LessThan(feeAmount) {
		return StatusPartial
	}
	return StatusPaid
}
