package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MITHLESH24364/fee-management-system-educo/app/ledger"
	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

var inst = ledger.Institution{Name: "MKS Educational Institute"}

func stu(id string, fee float64, active bool) models.Student {
	return models.Student{ID: id, Name: "Student " + id, Active: active, FeeAmount: decimal.NewFromFloat(fee)}
}

func rec(studentID string, month models.Month, year int, amount float64, pending bool) models.FeePayment {
	return models.FeePayment{
		ID:        studentID + "-" + string(month),
		StudentID: studentID,
		Amount:    decimal.NewFromFloat(amount),
		Month:     month,
		Year:      year,
		IsPending: pending,
	}
}

func TestPlanBulkBillsSkipsBilledAndInactive(t *testing.T) {
	period := nepali.Period{Month: models.Jestha, Year: 2081}
	students := []models.Student{
		stu("s1", 2000, true),  // needs a bill
		stu("s2", 2000, true),  // already billed
		stu("s3", 2000, false), // inactive
	}
	payments := []models.FeePayment{
		rec("s2", models.Jestha, 2081, 2000, true),
	}

	plans, existing := PlanBulkBills(students, payments, period, inst)

	require.Len(t, plans, 1)
	assert.Equal(t, "s1", plans[0].Student.ID)
	require.Len(t, existing, 1)
	assert.Equal(t, "s2-Jestha", existing["s2"].ID)
}

func TestPlanBulkBillsDraftAmountFoldsRemainingDue(t *testing.T) {
	period := nepali.Period{Month: models.Jestha, Year: 2081}
	students := []models.Student{stu("s1", 2000, true)}
	payments := []models.FeePayment{
		rec("s1", models.Baisakh, 2081, 1200, false), // partial: 800 remaining
	}

	plans, _ := PlanBulkBills(students, payments, period, inst)

	require.Len(t, plans, 1)
	draft := plans[0].Draft
	assert.True(t, draft.IsPending)
	assert.Nil(t, draft.PaidDate)
	assert.True(t, draft.Amount.Equal(decimal.NewFromInt(2800)), "fee + remaining due, got %s", draft.Amount)
	assert.Contains(t, draft.Notes, "Includes Rs. 800.00 from previous partial payments")
}

func TestPlanBulkBillsCarryOverStaysOutOfDraftAmount(t *testing.T) {
	period := nepali.Period{Month: models.Jestha, Year: 2081}
	students := []models.Student{stu("s1", 2000, true)}
	payments := []models.FeePayment{
		rec("s1", models.Baisakh, 2081, 0, true), // pending period: carried over
	}

	plans, _ := PlanBulkBills(students, payments, period, inst)

	require.Len(t, plans, 1)
	draft := plans[0].Draft
	// Carried-over periods are itemized on the document, not folded into the
	// bill amount, so the amount stays the base fee.
	assert.True(t, draft.Amount.Equal(decimal.NewFromInt(2000)))
	assert.Contains(t, draft.Notes, "Previous unpaid total: Rs. 2000.00")
	assert.True(t, plans[0].Obligation.TotalDue.Equal(decimal.NewFromInt(4000)))
}

func TestPlanBulkBillsOrderIndependentPerStudent(t *testing.T) {
	period := nepali.Period{Month: models.Jestha, Year: 2081}
	students := []models.Student{
		stu("s1", 2000, true),
		stu("s2", 1500, true),
	}
	payments := []models.FeePayment{
		rec("s1", models.Baisakh, 2081, 0, true),
		rec("s2", models.Baisakh, 2081, 1500, false),
	}

	plans, _ := PlanBulkBills(students, payments, period, inst)
	require.Len(t, plans, 2)

	reversed := []models.Student{students[1], students[0]}
	plansReversed, _ := PlanBulkBills(reversed, payments, period, inst)
	require.Len(t, plansReversed, 2)

	assert.Equal(t, plans[0], plansReversed[1])
	assert.Equal(t, plans[1], plansReversed[0])
}
