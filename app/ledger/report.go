package ledger

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

// Aggregate rolls up per-student obligations for one period into an
// institution-wide report. Only active students are counted; each lands in
// exactly one of the paid / partial / pending buckets.
//
// Records that reference an unknown student or carry a month name outside
// the canonical 12 are skipped and reported through the returned warning
// count; they never abort the batch.
//
// The aggregate is idempotent: the same students and records always produce
// the same report, so it doubles as the cache-refresh computation for the
// stored monthly_reports row.
func Aggregate(students []models.Student, records []models.FeePayment, period nepali.Period) (models.MonthlyReport, int) {
	report := models.MonthlyReport{
		Month:           period.Month,
		Year:            period.Year,
		TotalCollection: decimal.Zero,
		TotalPending:    decimal.Zero,
		TotalDue:        decimal.Zero,
		TotalAdvance:    decimal.Zero,
	}

	known := make(map[string]struct{}, len(students))
	for _, s := range students {
		known[s.ID] = struct{}{}
	}

	warnings := 0
	byStudent := make(map[string][]models.FeePayment)
	for _, r := range records {
		if _, ok := known[r.StudentID]; !ok {
			log.Printf("report %s: skipping payment %s: unknown student %s", period, r.ID, r.StudentID)
			warnings++
			continue
		}
		if !nepali.ValidMonth(r.Month) {
			log.Printf("report %s: skipping payment %s: unknown month %q", period, r.ID, r.Month)
			warnings++
			continue
		}
		byStudent[r.StudentID] = append(byStudent[r.StudentID], r)
	}

	for _, s := range students {
		if !s.Active {
			continue
		}
		ob := ComputeObligation(s, byStudent[s.ID], period)
		report.TotalDue = report.TotalDue.Add(ob.TotalDue)
		report.TotalAdvance = report.TotalAdvance.Add(ob.AdvanceCredit)

		cur := ob.Current
		switch {
		case cur == nil || cur.IsPending:
			report.StudentsPending++
			report.TotalPending = report.TotalPending.Add(s.FeeAmount)
		case cur.Amount.LessThan(s.FeeAmount):
			report.StudentsPartial++
			report.TotalCollection = report.TotalCollection.Add(cur.Amount)
		default:
			report.StudentsPaid++
			report.TotalCollection = report.TotalCollection.Add(cur.Amount)
		}
	}

	return report, warnings
}
