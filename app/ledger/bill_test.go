package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

var testInstitution = Institution{
	Name:    "MKS Educational Institute",
	Address: "Lalitpur, Nepal",
	Contact: "9841157918",
}

func lineOfKind(t *testing.T, bill Bill, kind LineKind) BillLine {
	t.Helper()
	for _, l := range bill.Lines {
		if l.Kind == kind {
			return l
		}
	}
	t.Fatalf("bill has no %s line", kind)
	return BillLine{}
}

func TestComposeBillPendingWithHistory(t *testing.T) {
	student := testStudent(2000)
	target := nepali.Period{Month: models.Jestha, Year: 2081}
	records := []models.FeePayment{
		pay("cur", models.Jestha, 2081, 2000, true),
		pay("old", models.Baisakh, 2081, 0, true),
	}
	ob := ComputeObligation(student, records, target)

	asOf := time.Date(2024, time.June, 2, 10, 0, 0, 0, time.UTC)
	bill := ComposeBill(student, ob, testInstitution, asOf)

	assert.Equal(t, "cur", bill.ReceiptNo)
	assert.True(t, bill.Pending)
	assert.False(t, bill.Partial)
	assert.Equal(t, "2nd Ashad, 2081", bill.IssuedDate)

	fee := lineOfKind(t, bill, LineCurrentFee)
	assert.Contains(t, fee.Description, "Jestha 2081")
	assert.Contains(t, fee.Description, "(Pending)")
	assert.True(t, fee.Amount.Equal(amt(2000)))

	unpaid := lineOfKind(t, bill, LinePreviousUnpaid)
	assert.Contains(t, unpaid.Description, "Baisakh 2081")
	assert.True(t, unpaid.Amount.Equal(amt(2000)), "unpaid line shows base fee")

	total := lineOfKind(t, bill, LineTotalDue)
	assert.True(t, total.Highlight)
	assert.True(t, total.Amount.Equal(amt(4000)))
	assert.True(t, bill.TotalDue.Equal(amt(4000)))
}

func TestComposeBillPartialCurrent(t *testing.T) {
	student := testStudent(2000)
	target := nepali.Period{Month: models.Jestha, Year: 2081}
	records := []models.FeePayment{
		pay("cur", models.Jestha, 2081, 1200, false),
	}
	ob := ComputeObligation(student, records, target)

	bill := ComposeBill(student, ob, testInstitution, time.Unix(0, 0).UTC())

	assert.True(t, bill.Partial)
	remaining := lineOfKind(t, bill, LineRemainingDue)
	assert.True(t, remaining.Amount.Equal(amt(800)))
	assert.True(t, bill.TotalDue.Equal(amt(800)))
}

// A bulk-generated bill folds previous partial remainders into its amount;
// the composer surfaces them as an extra-due line without changing the total.
func TestComposeBillExtraDueFoldedIn(t *testing.T) {
	student := testStudent(2000)
	target := nepali.Period{Month: models.Jestha, Year: 2081}
	records := []models.FeePayment{
		pay("cur", models.Jestha, 2081, 2800, true),   // fee + 800 folded
		pay("old", models.Baisakh, 2081, 1200, false), // source of the 800
	}
	ob := ComputeObligation(student, records, target)

	bill := ComposeBill(student, ob, testInstitution, time.Unix(0, 0).UTC())

	extra := lineOfKind(t, bill, LineExtraDue)
	assert.True(t, extra.Amount.Equal(amt(800)))
	// Total: 2000 current + 800 remaining due, counted once.
	assert.True(t, bill.TotalDue.Equal(amt(2800)))
}

func TestComposeBillAbsentCurrentRecord(t *testing.T) {
	student := testStudent(2000)
	target := nepali.Period{Month: models.Jestha, Year: 2081}
	ob := ComputeObligation(student, nil, target)

	bill := ComposeBill(student, ob, testInstitution, time.Unix(0, 0).UTC())

	assert.True(t, bill.Pending)
	assert.Empty(t, bill.ReceiptNo)
	require.Len(t, bill.Lines, 2) // current fee + total
	assert.True(t, bill.TotalDue.Equal(amt(2000)))
}

func TestComposeBillReproducible(t *testing.T) {
	student := testStudent(2000)
	target := nepali.Period{Month: models.Poush, Year: 2081}
	records := []models.FeePayment{
		pay("a", models.Baisakh, 2081, 0, true),
		pay("b", models.Jestha, 2081, 1200, false),
	}
	ob := ComputeObligation(student, records, target)
	asOf := time.Date(2024, time.December, 25, 8, 30, 0, 0, time.UTC)

	first := ComposeBill(student, ob, testInstitution, asOf)
	second := ComposeBill(student, ob, testInstitution, asOf)

	assert.Equal(t, first, second)
}
