package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

func student(id string, fee float64, active bool) models.Student {
	return models.Student{
		ID:        id,
		Name:      "Student " + id,
		Active:    active,
		FeeAmount: decimal.NewFromFloat(fee),
	}
}

func payFor(studentID string, month models.Month, year int, amount float64, pending bool) models.FeePayment {
	p := pay(studentID+"-"+string(month), month, year, amount, pending)
	p.StudentID = studentID
	return p
}

func TestAggregateBucketsAndTotals(t *testing.T) {
	period := nepali.Period{Month: models.Jestha, Year: 2081}
	students := []models.Student{
		student("s1", 2000, true), // paid in full
		student("s2", 2000, true), // partial
		student("s3", 2000, true), // pending record
		student("s4", 2000, true), // no record at all
		student("s5", 2000, false),
	}
	records := []models.FeePayment{
		payFor("s1", models.Jestha, 2081, 2000, false),
		payFor("s2", models.Jestha, 2081, 1200, false),
		payFor("s3", models.Jestha, 2081, 0, true),
		payFor("s5", models.Jestha, 2081, 2000, false), // inactive: excluded
	}

	report, warnings := Aggregate(students, records, period)

	assert.Zero(t, warnings)
	assert.Equal(t, 1, report.StudentsPaid)
	assert.Equal(t, 1, report.StudentsPartial)
	assert.Equal(t, 2, report.StudentsPending, "absent record counts as pending")

	activeCount := 0
	for _, s := range students {
		if s.Active {
			activeCount++
		}
	}
	assert.Equal(t, activeCount, report.StudentsPaid+report.StudentsPartial+report.StudentsPending)

	assert.True(t, report.TotalCollection.Equal(amt(3200)), "collected: 2000 + 1200")
	assert.True(t, report.TotalPending.Equal(amt(4000)), "pending: s3 + s4 fees")
	// Due: s1 0, s2 800, s3 2000, s4 2000.
	assert.True(t, report.TotalDue.Equal(amt(4800)))
}

func TestAggregateIncludesCarryOverInDue(t *testing.T) {
	period := nepali.Period{Month: models.Jestha, Year: 2081}
	students := []models.Student{student("s1", 2000, true)}
	records := []models.FeePayment{
		payFor("s1", models.Baisakh, 2081, 0, true), // carried over
	}

	report, _ := Aggregate(students, records, period)

	assert.True(t, report.TotalDue.Equal(amt(4000)), "current fee + carry-over")
}

func TestAggregateAdvanceCredit(t *testing.T) {
	period := nepali.Period{Month: models.Jestha, Year: 2081}
	students := []models.Student{student("s1", 2000, true)}
	records := []models.FeePayment{
		payFor("s1", models.Baisakh, 2081, 2500, false),
		payFor("s1", models.Jestha, 2081, 2300, false),
	}

	report, _ := Aggregate(students, records, period)

	assert.True(t, report.TotalAdvance.Equal(amt(800)), "500 earlier + 300 current surplus")
	assert.Equal(t, 1, report.StudentsPaid)
}

func TestAggregateSkipsBadRecordsWithWarnings(t *testing.T) {
	period := nepali.Period{Month: models.Jestha, Year: 2081}
	students := []models.Student{student("s1", 2000, true)}
	records := []models.FeePayment{
		payFor("s1", models.Jestha, 2081, 2000, false),
		payFor("ghost", models.Jestha, 2081, 2000, false), // unknown student
		payFor("s1", "Januray", 2081, 2000, false),        // unknown month
	}

	report, warnings := Aggregate(students, records, period)

	assert.Equal(t, 2, warnings)
	assert.Equal(t, 1, report.StudentsPaid)
	assert.True(t, report.TotalCollection.Equal(amt(2000)), "bad records do not contribute")
}

func TestAggregateIdempotent(t *testing.T) {
	period := nepali.Period{Month: models.Jestha, Year: 2081}
	students := []models.Student{
		student("s1", 2000, true),
		student("s2", 1500, true),
	}
	records := []models.FeePayment{
		payFor("s1", models.Jestha, 2081, 2000, false),
		payFor("s2", models.Baisakh, 2081, 700, false),
	}

	first, w1 := Aggregate(students, records, period)
	second, w2 := Aggregate(students, records, period)

	assert.Equal(t, first, second)
	assert.Equal(t, w1, w2)
}

func TestAggregateEmptyPeriod(t *testing.T) {
	period := nepali.Period{Month: models.Jestha, Year: 2081}
	report, warnings := Aggregate(nil, nil, period)

	assert.Zero(t, warnings)
	assert.True(t, report.TotalCollection.IsZero())
	assert.True(t, report.TotalDue.IsZero())
	assert.Zero(t, report.StudentsPaid+report.StudentsPartial+report.StudentsPending)
}
