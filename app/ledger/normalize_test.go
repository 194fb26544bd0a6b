package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

func pay(id string, month models.Month, year int, amount float64, pending bool) models.FeePayment {
	return models.FeePayment{
		ID:        id,
		StudentID: "stu-1",
		Amount:    decimal.NewFromFloat(amount),
		Month:     month,
		Year:      year,
		IsPending: pending,
	}
}

func TestNormalizeDropsDuplicatePeriods(t *testing.T) {
	records := []models.FeePayment{
		pay("a", models.Baisakh, 2081, 2000, true),
		pay("b", models.Jestha, 2081, 2000, false),
		pay("c", models.Baisakh, 2081, 2000, false), // duplicate period, later insert
		pay("d", models.Jestha, 2081, 1500, true),   // duplicate period
	}

	got := Normalize(records)

	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID, "first-seen record is canonical")
	assert.Equal(t, "b", got[1].ID)
}

func TestNormalizeKeysAreUniqueAndComplete(t *testing.T) {
	records := []models.FeePayment{
		pay("a", models.Poush, 2080, 2000, false),
		pay("b", models.Poush, 2081, 2000, false), // same month, other year: distinct
		pay("c", models.Magh, 2081, 2000, true),
		pay("d", models.Poush, 2080, 900, true),
	}

	got := Normalize(records)

	inputKeys := make(map[string]struct{})
	for _, r := range records {
		inputKeys[nepali.Period{Month: r.Month, Year: r.Year}.Key()] = struct{}{}
	}
	outputKeys := make(map[string]struct{})
	for _, r := range got {
		key := nepali.Period{Month: r.Month, Year: r.Year}.Key()
		_, dup := outputKeys[key]
		assert.False(t, dup, "key %s appears twice in output", key)
		outputKeys[key] = struct{}{}
	}
	assert.Equal(t, inputKeys, outputKeys, "every input key present exactly once")
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]models.FeePayment{}))
}
