package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Student represents an enrolled student and their fixed monthly fee.
// Students are never hard-deleted; deactivation excludes them from bulk
// billing and reporting.
type Student struct {
	ID              string          `json:"id"`
	Name            string          `json:"name" validate:"required"`
	Grade           string          `json:"grade" validate:"required"`
	Contact         string          `json:"contact"`
	Address         *string         `json:"address,omitempty"`
	GuardianName    *string         `json:"guardian_name,omitempty"`
	GuardianContact *string         `json:"guardian_contact,omitempty"`
	JoiningDate     time.Time       `json:"joining_date"`
	Active          bool            `json:"active"`
	FeeAmount       decimal.Decimal `json:"fee_amount" validate:"required"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
