package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

// Obligation is the computed financial position of one student as of one
// target period. Each strictly-earlier period contributes to exactly one of
// CarriedOver or RemainingDue, never both.
type Obligation struct {
	StudentID string        `json:"student_id"`
	Period    nepali.Period `json:"period"`

	// Current is the canonical record for the target period, nil if absent.
	Current *models.FeePayment `json:"current,omitempty"`

	// CurrentDue is what the target period itself still requires: the full
	// fee when no record exists or the record is pending, zero when paid in
	// full, the shortfall for a partial payment.
	CurrentDue decimal.Decimal `json:"current_due"`

	// CarriedOver is the base fee owed for each strictly-earlier pending
	// period. PreviousUnpaid lists the contributing records in ledger order.
	CarriedOver    decimal.Decimal     `json:"carried_over"`
	PreviousUnpaid []models.FeePayment `json:"previous_unpaid,omitempty"`

	// RemainingDue sums the uncollected shortfalls of earlier partial
	// payments whose make-up has not already been billed elsewhere.
	// PartialPeriods lists the periods contributing to it.
	RemainingDue   decimal.Decimal `json:"remaining_due"`
	PartialPeriods []nepali.Period `json:"partial_periods,omitempty"`

	// AdvanceCredit is informational: the surplus paid above the fee across
	// overpaid periods. It does not reduce TotalDue.
	AdvanceCredit decimal.Decimal `json:"advance_credit"`

	// TotalDue is the figure a newly generated bill for the target period
	// should request: CurrentDue + CarriedOver + RemainingDue.
	TotalDue decimal.Decimal `json:"total_due"`
}

// ComputeObligation reconciles a student's raw payment history against a
// target period. Records are normalized first, so duplicate rows in storage
// cannot inflate any bucket.
func ComputeObligation(student models.Student, records []models.FeePayment, target nepali.Period) Obligation {
	fee := student.FeeAmount
	ob := Obligation{
		StudentID:     student.ID,
		Period:        target,
		CurrentDue:    decimal.Zero,
		CarriedOver:   decimal.Zero,
		RemainingDue:  decimal.Zero,
		AdvanceCredit: decimal.Zero,
	}

	// A partial period's shortfall is consumed exactly once a surplus record
	// for the same period key exists anywhere in the ledger, meaning the
	// make-up amount was already billed as extra due. The scan runs over the
	// raw records: the surplus row may be a non-canonical duplicate that
	// normalization would drop.
	surplus := make(map[string]struct{})
	for _, r := range records {
		if r.Amount.GreaterThan(fee) {
			surplus[nepali.Period{Month: r.Month, Year: r.Year}.Key()] = struct{}{}
		}
	}

	for _, r := range Normalize(records) {
		p := nepali.Period{Month: r.Month, Year: r.Year}
		if p == target {
			rec := r
			ob.Current = &rec
			continue
		}
		if !p.Before(target) {
			// Future periods never influence the target's obligation.
			continue
		}
		switch {
		case r.IsPending:
			// Nothing was collected for this period, so the full base fee is
			// owed regardless of whatever amount the record carries. Capping
			// at the fee keeps any extra due folded into a generated bill's
			// amount from being counted a second time here.
			ob.CarriedOver = ob.CarriedOver.Add(fee)
			ob.PreviousUnpaid = append(ob.PreviousUnpaid, r)
		case r.Amount.LessThan(fee):
			if _, consumed := surplus[p.Key()]; !consumed {
				ob.RemainingDue = ob.RemainingDue.Add(fee.Sub(r.Amount))
				ob.PartialPeriods = append(ob.PartialPeriods, p)
			}
		case r.Amount.GreaterThan(fee):
			ob.AdvanceCredit = ob.AdvanceCredit.Add(r.Amount.Sub(fee))
		}
	}

	switch {
	case ob.Current == nil || ob.Current.IsPending:
		ob.CurrentDue = fee
	case ob.Current.Amount.GreaterThanOrEqual(fee):
		if !ob.Current.IsPending && ob.Current.Amount.GreaterThan(fee) {
			ob.AdvanceCredit = ob.AdvanceCredit.Add(ob.Current.Amount.Sub(fee))
		}
	default:
		ob.CurrentDue = fee.Sub(ob.Current.Amount)
	}

	ob.TotalDue = ob.CurrentDue.Add(ob.CarriedOver).Add(ob.RemainingDue)
	return ob
}

// CappedAmount returns the displayable amount for a previous-unpaid record:
// the base fee owed for that period, never any extra folded into the record.
func CappedAmount(r models.FeePayment, feeAmount decimal.Decimal) decimal.Decimal {
	if r.IsPending {
		return feeAmount
	}
	return decimal.Min(r.Amount, feeAmount)
}
