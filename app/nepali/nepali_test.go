package nepali

import (
	"testing"
	"time"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
)

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		month models.Month
		want  int
	}{
		{models.Baisakh, 0},
		{models.Ashoj, 5},
		{models.Chaitra, 11},
		{models.Month("January"), 0}, // unknown names fall back to position 0
		{models.Month(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.month), func(t *testing.T) {
			if got := MonthIndex(tt.month); got != tt.want {
				t.Errorf("MonthIndex(%q) = %d, want %d", tt.month, got, tt.want)
			}
		})
	}
}

func TestValidMonth(t *testing.T) {
	for _, m := range Months {
		if !ValidMonth(m) {
			t.Errorf("ValidMonth(%q) = false, want true", m)
		}
	}
	if ValidMonth("Januray") {
		t.Error("ValidMonth accepted an unknown month name")
	}
}

func TestPeriodBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b Period
		want bool
	}{
		{
			name: "earlier year",
			a:    Period{models.Chaitra, 2080},
			b:    Period{models.Baisakh, 2081},
			want: true,
		},
		{
			name: "later year",
			a:    Period{models.Baisakh, 2082},
			b:    Period{models.Chaitra, 2081},
			want: false,
		},
		{
			name: "same year earlier month",
			a:    Period{models.Jestha, 2081},
			b:    Period{models.Poush, 2081},
			want: true,
		},
		{
			name: "same year later month",
			a:    Period{models.Magh, 2081},
			b:    Period{models.Shrawan, 2081},
			want: false,
		},
		{
			name: "equal periods are not before each other",
			a:    Period{models.Ashad, 2081},
			b:    Period{models.Ashad, 2081},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.want {
				t.Errorf("%v.Before(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPeriodNextPrevious(t *testing.T) {
	p := Period{models.Chaitra, 2080}
	if next := p.Next(); next != (Period{models.Baisakh, 2081}) {
		t.Errorf("Next() across year boundary = %v", next)
	}
	q := Period{models.Baisakh, 2081}
	if prev := q.Previous(); prev != (Period{models.Chaitra, 2080}) {
		t.Errorf("Previous() across year boundary = %v", prev)
	}
	if got := (Period{models.Jestha, 2081}).Next(); got != (Period{models.Ashad, 2081}) {
		t.Errorf("Next() within year = %v", got)
	}
}

func TestCurrentPeriod(t *testing.T) {
	tests := []struct {
		date time.Time
		want Period
	}{
		{time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), Period{models.Magh, 2082}},
		{time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), Period{models.Chaitra, 2082}},
		{time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), Period{models.Baisakh, 2083}},
		{time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC), Period{models.Poush, 2083}},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			if got := CurrentPeriod(tt.date); got != tt.want {
				t.Errorf("CurrentPeriod(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), "1st Jestha, 2083"},
		{time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC), "2nd Jestha, 2083"},
		{time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC), "3rd Jestha, 2083"},
		{time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC), "11th Jestha, 2083"},
		{time.Date(2026, time.May, 22, 0, 0, 0, 0, time.UTC), "22nd Jestha, 2083"},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.date); got != tt.want {
			t.Errorf("FormatDate(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
