// Package nepali supplies the Bikram Sambat calendar used for fee periods:
// the canonical 12-month ordering, period comparisons, and the mapping from
// Gregorian wall-clock dates to the current Nepali period.
//
// The Gregorian conversion is the institution's simplified month-for-month
// mapping, not an exact BS calendar. It is only used at the boundary to
// resolve "today"; the ledger core never reads the clock itself.
package nepali

import (
	"fmt"
	"time"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
)

// Months is the canonical ordering of the 12-period calendar.
var Months = [12]models.Month{
	models.Baisakh, models.Jestha, models.Ashad, models.Shrawan,
	models.Bhadra, models.Ashoj, models.Kartik, models.Mangsir,
	models.Poush, models.Magh, models.Falgun, models.Chaitra,
}

// MonthIndex returns the position of m in the canonical ordering. Unknown
// month names map to 0 rather than failing; callers are expected to have
// validated month names on ingestion with ValidMonth.
func MonthIndex(m models.Month) int {
	for i, name := range Months {
		if name == m {
			return i
		}
	}
	return 0
}

// ValidMonth reports whether m is one of the canonical 12 month names.
func ValidMonth(m models.Month) bool {
	for _, name := range Months {
		if name == m {
			return true
		}
	}
	return false
}

// Period is one (month, year) billing period.
type Period struct {
	Month models.Month `json:"month"`
	Year  int          `json:"year"`
}

// Before reports whether p is strictly earlier than q: year first, then the
// canonical month ordering. Equal periods return false.
func (p Period) Before(q Period) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	return MonthIndex(p.Month) < MonthIndex(q.Month)
}

// Key returns the dedup key used to collapse duplicate records per period.
func (p Period) Key() string {
	return fmt.Sprintf("%s-%d", p.Month, p.Year)
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// Next returns the period immediately after p.
func (p Period) Next() Period {
	i := MonthIndex(p.Month)
	if i == 11 {
		return Period{Month: Months[0], Year: p.Year + 1}
	}
	return Period{Month: Months[i+1], Year: p.Year}
}

// Previous returns the period immediately before p.
func (p Period) Previous() Period {
	i := MonthIndex(p.Month)
	if i == 0 {
		return Period{Month: Months[11], Year: p.Year - 1}
	}
	return Period{Month: Months[i-1], Year: p.Year}
}

// gregorianMonths maps each Gregorian month to its rough Nepali equivalent.
var gregorianMonths = map[time.Month]models.Month{
	time.January:   models.Magh,
	time.February:  models.Falgun,
	time.March:     models.Chaitra,
	time.April:     models.Baisakh,
	time.May:       models.Jestha,
	time.June:      models.Ashad,
	time.July:      models.Shrawan,
	time.August:    models.Bhadra,
	time.September: models.Ashoj,
	time.October:   models.Kartik,
	time.November:  models.Mangsir,
	time.December:  models.Poush,
}

// CurrentPeriod resolves a Gregorian date to the institution's period.
// The BS year runs 57 years ahead from April onward, 56 before.
func CurrentPeriod(t time.Time) Period {
	year := t.Year() + 56
	if t.Month() >= time.April {
		year = t.Year() + 57
	}
	return Period{Month: gregorianMonths[t.Month()], Year: year}
}

// FormatDate renders a Gregorian date as a Nepali date string in
// "2nd Jestha, 2081" form, used on printed receipts.
func FormatDate(t time.Time) string {
	p := CurrentPeriod(t)
	return fmt.Sprintf("%s %s, %d", daySuffix(t.Day()), p.Month, p.Year)
}

func daySuffix(day int) string {
	if day > 3 && day < 21 {
		return fmt.Sprintf("%dth", day)
	}
	switch day % 10 {
	case 1:
		return fmt.Sprintf("%dst", day)
	case 2:
		return fmt.Sprintf("%dnd", day)
	case 3:
		return fmt.Sprintf("%drd", day)
	default:
		return fmt.Sprintf("%dth", day)
	}
}
