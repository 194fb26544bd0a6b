package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

// LineKind identifies a bill line item.
type LineKind string

const (
	LineCurrentFee     LineKind = "current_fee"
	LineExtraDue       LineKind = "previous_extra_due"
	LineRemainingDue   LineKind = "remaining_due"
	LinePreviousUnpaid LineKind = "previous_unpaid"
	LineTotalDue       LineKind = "total_due"
)

// Institution is the letterhead printed on every receipt.
type Institution struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// BillLine is one row of a composed receipt or bill.
type BillLine struct {
	Kind        LineKind        `json:"kind"`
	Description string          `json:"description"`
	Period      *nepali.Period  `json:"period,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Highlight   bool            `json:"highlight"`
}

// Bill is the structured document handed to the renderer. It is a pure
// function of the obligation and the passed timestamp: composing it twice
// from the same inputs yields the same document byte for byte.
type Bill struct {
	ReceiptNo   string          `json:"receipt_no"`
	Institution Institution     `json:"institution"`
	Student     models.Student  `json:"student"`
	Period      nepali.Period   `json:"period"`
	IssuedDate  string          `json:"issued_date"`
	Lines       []BillLine      `json:"lines"`
	TotalDue    decimal.Decimal `json:"total_due"`
	Pending     bool            `json:"pending"`
	Partial     bool            `json:"partial"`
	Notes       string          `json:"notes,omitempty"`
}

// ComposeBill turns one obligation computation into a line-itemized document,
// used both for single receipts and bulk-generated bills. asOf fixes the
// printed date; callers resolve it at the boundary.
func ComposeBill(student models.Student, ob Obligation, inst Institution, asOf time.Time) Bill {
	fee := student.FeeAmount
	bill := Bill{
		Institution: inst,
		Student:     student,
		Period:      ob.Period,
		IssuedDate:  nepali.FormatDate(asOf),
		TotalDue:    ob.TotalDue,
	}

	feeLine := fmt.Sprintf("Fee for %s", ob.Period)
	if cur := ob.Current; cur != nil {
		bill.ReceiptNo = cur.ID
		bill.Notes = cur.Notes
		bill.Pending = cur.IsPending
		bill.Partial = !cur.IsPending && cur.Amount.LessThan(fee)
		switch {
		case cur.IsAdvance:
			feeLine += " (Advance)"
		case cur.IsPending:
			feeLine += " (Pending)"
		case bill.Partial:
			feeLine += " (Partial Payment)"
		}
	} else {
		bill.Pending = true
		feeLine += " (Pending)"
	}
	period := ob.Period
	bill.Lines = append(bill.Lines, BillLine{
		Kind:        LineCurrentFee,
		Description: feeLine,
		Period:      &period,
		Amount:      fee,
	})

	// Extra due riding on the current record's amount: for a generated bill
	// this is the previously unpaid partial remainder folded in, for a paid
	// record it is the surplus collected above the fee.
	if ob.Current != nil && ob.Current.Amount.GreaterThan(fee) {
		bill.Lines = append(bill.Lines, BillLine{
			Kind:        LineExtraDue,
			Description: "Previous extra due payment",
			Amount:      ob.Current.Amount.Sub(fee),
		})
	}

	if bill.Partial {
		bill.Lines = append(bill.Lines, BillLine{
			Kind:        LineRemainingDue,
			Description: fmt.Sprintf("Remaining due for %s", ob.Period),
			Period:      &period,
			Amount:      fee.Sub(ob.Current.Amount),
		})
	}

	for _, unpaid := range ob.PreviousUnpaid {
		p := nepali.Period{Month: unpaid.Month, Year: unpaid.Year}
		bill.Lines = append(bill.Lines, BillLine{
			Kind:        LinePreviousUnpaid,
			Description: fmt.Sprintf("Previous unpaid: %s (Pending)", p),
			Period:      &p,
			Amount:      CappedAmount(unpaid, fee),
		})
	}

	bill.Lines = append(bill.Lines, BillLine{
		Kind:        LineTotalDue,
		Description: "Total due",
		Amount:      ob.TotalDue,
		Highlight:   true,
	})

	return bill
}
