// Package ledger is the fee reconciliation core: it decides, from a student's
// raw payment history, what is owed for a period, what was carried over
// unpaid, what remains from partial payments, and what was overpaid. Every
// call site (receipts, bulk billing, reports, dashboard) derives its figures
// from this package so that no amount is ever counted twice across views.
//
// All functions here are pure: they operate on in-memory snapshots, hold no
// state, and never read the clock or the database.
package ledger

import (
	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

// Normalize collapses duplicate records for the same (month, year) period
// into one canonical record per period, keeping the first record seen in
// input order. The tie-break is deliberately "first", not "latest" or
// "largest": it is deterministic for any input ordering the store returns.
//
// Every obligation computation runs on normalized records, which makes all
// downstream totals immune to accidental duplicate insertion.
func Normalize(records []models.FeePayment) []models.FeePayment {
	seen := make(map[string]struct{}, len(records))
	out := make([]models.FeePayment, 0, len(records))
	for _, r := range records {
		key := nepali.Period{Month: r.Month, Year: r.Year}.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
