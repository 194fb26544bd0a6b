package services

import (
	"database/sql"
	"fmt"
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/MITHLESH24364/fee-management-system-educo/app/database"
	"github.com/MITHLESH24364/fee-management-system-educo/app/ledger"
	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

const bulkSaveWorkers = 8

// BillPlan is one student's planned bill for a bulk generation run: the
// obligation behind it and the pending record to insert.
type BillPlan struct {
	Student    models.Student    `json:"student"`
	Obligation ledger.Obligation `json:"obligation"`
	Draft      models.FeePayment `json:"draft"`
}

// PlanBulkBills decides which active students need a bill for the period and
// what each bill should contain. Students who already have a record for the
// period are excluded and returned separately so the caller can surface
// their existing bills.
//
// The planned bill's amount folds the remaining due from earlier partial
// payments into the period fee; carried-over pending periods are itemized on
// the composed document instead, so no amount appears in both places.
func PlanBulkBills(students []models.Student, payments []models.FeePayment, period nepali.Period, inst ledger.Institution) ([]BillPlan, map[string]models.FeePayment) {
	byStudent := make(map[string][]models.FeePayment)
	for _, p := range payments {
		byStudent[p.StudentID] = append(byStudent[p.StudentID], p)
	}

	var plans []BillPlan
	existing := make(map[string]models.FeePayment)
	for _, s := range students {
		if !s.Active {
			continue
		}
		ob := ledger.ComputeObligation(s, byStudent[s.ID], period)
		if ob.Current != nil {
			existing[s.ID] = *ob.Current
			continue
		}

		notes := fmt.Sprintf("Generated as part of bulk bill from %s", inst.Name)
		if ob.CarriedOver.IsPositive() {
			notes += fmt.Sprintf(" (Previous unpaid total: Rs. %s)", ob.CarriedOver.StringFixed(2))
		}
		if ob.RemainingDue.IsPositive() {
			notes += fmt.Sprintf(" (Includes Rs. %s from previous partial payments)", ob.RemainingDue.StringFixed(2))
		}

		plans = append(plans, BillPlan{
			Student:    s,
			Obligation: ob,
			Draft: models.FeePayment{
				StudentID: s.ID,
				Amount:    s.FeeAmount.Add(ob.RemainingDue),
				Month:     period.Month,
				Year:      period.Year,
				IsPending: true,
				Notes:     notes,
			},
		})
	}
	return plans, existing
}

// GenerateBulkBills saves the planned bills. Students are independent, so
// saves fan out across a bounded worker pool; a failed save is logged and
// counted but never aborts the rest of the batch.
func GenerateBulkBills(db *sql.DB, plans []BillPlan) (saved, failed int) {
	var savedCount, failedCount atomic.Int64

	var g errgroup.Group
	g.SetLimit(bulkSaveWorkers)
	for _, plan := range plans {
		plan := plan
		g.Go(func() error {
			draft := plan.Draft
			if err := database.InsertPayment(db, &draft); err != nil {
				log.Printf("bulk billing: failed to save bill for student %s (%s): %v",
					plan.Student.Name, plan.Student.ID, err)
				failedCount.Add(1)
				return nil
			}
			savedCount.Add(1)
			return nil
		})
	}
	g.Wait()

	return int(savedCount.Load()), int(failedCount.Load())
}
