package holiday

import (
	"testing"

	fedcal "github.com/coredds/fedcal-go"
)

func date(y, m, d int) fedcal.Date {
	dt, err := fedcal.DateFromYMD(y, m, d)
	if err != nil {
		panic(err)
	}
	return dt
}

func TestIsHolidayKnownDates(t *testing.T) {
	cal := NewCalendar()

	cases := []struct {
		name string
		d    fedcal.Date
		want bool
	}{
		{"New Year's Day 2024 (Monday)", date(2024, 1, 1), true},
		{"Juneteenth observed 2021", date(2021, 6, 18), true},
		{"Juneteenth not yet enacted 2020", date(2020, 6, 19), false},
		{"ordinary Tuesday", date(2024, 3, 5), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := cal.IsHoliday(c.d); got != c.want {
				t.Errorf("IsHoliday(%s) = %v, want %v", c.d, got, c.want)
			}
		})
	}
}

func TestNearestWorkdayObservance(t *testing.T) {
	cal := NewCalendar()
	// Independence Day 2021-07-04 was a Sunday; observed Monday 2021-07-05.
	if !cal.IsHoliday(date(2021, 7, 5)) {
		t.Error("2021-07-05 should be the observed Independence Day")
	}
	if cal.IsHoliday(date(2021, 7, 4)) {
		t.Error("the nominal Sunday date itself is not the observed holiday")
	}
}

func TestNthWeekdayRules(t *testing.T) {
	cal := NewCalendar()
	// Thanksgiving 2023 is the 4th Thursday of November: Nov 23.
	if !cal.IsHoliday(date(2023, 11, 23)) {
		t.Error("2023-11-23 should be observed Thanksgiving")
	}
	// Memorial Day 2024 is the last Monday of May: May 27.
	if !cal.IsHoliday(date(2024, 5, 27)) {
		t.Error("2024-05-27 should be observed Memorial Day")
	}
}

func TestProclamationHolidays(t *testing.T) {
	cal := NewCalendar()
	if !cal.IsHoliday(date(2014, 12, 26)) {
		t.Error("2014-12-26 should be the Obama day-after-Christmas proclamation")
	}
	holidays := cal.ProclamationHolidaysIn(date(1970, 1, 1), date(2199, 12, 31))
	if len(holidays) != len(ProclamationHolidays) {
		t.Errorf("ProclamationHolidaysIn over the full range = %d, want %d", len(holidays), len(ProclamationHolidays))
	}
}

func TestHolidaysRangeIsSortedAndBounded(t *testing.T) {
	cal := NewCalendar()
	start, end := date(2024, 1, 1), date(2024, 12, 31)
	days := cal.Holidays(start, end, true)
	for i, d := range days {
		if d.Before(start) || d.After(end) {
			t.Fatalf("holiday %s out of requested range [%s, %s]", d, start, end)
		}
		if i > 0 && !days[i-1].Before(d) {
			t.Fatalf("holidays not strictly ascending at index %d", i)
		}
	}
}

func TestNameOn(t *testing.T) {
	cal := NewCalendar()
	name, ok := cal.NameOn(date(2024, 12, 25))
	if !ok || name != "Christmas Day" {
		t.Errorf("NameOn(2024-12-25) = %q, %v", name, ok)
	}
	if _, ok := cal.NameOn(date(2024, 12, 26)); ok {
		t.Error("2024-12-26 is not a scheduled holiday")
	}
}
