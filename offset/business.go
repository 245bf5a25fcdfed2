package offset

import (
	fedcal "github.com/coredds/fedcal-go"
	"github.com/coredds/fedcal-go/holiday"
)

// BusinessDay offsets test and shift dates against the federal business-day
// calendar: weekdays (Mon-Fri, the default weekmask) that are not federal
// holidays. Grounded on business.go's BusinessDayCalculator, generalized
// from "weekend days configured on the calculator" plus a holiday-aware
// IsBusinessDay to the spec's full roll/shift/sequence contract (§4.3).
type BusinessDay struct {
	calendar *holiday.Calendar
	weekmask map[int]bool
}

// NewBusinessDay builds a BusinessDay offset over the default Mon-Fri
// weekmask and the given holiday calendar.
func NewBusinessDay(cal *holiday.Calendar) *BusinessDay {
	return &BusinessDay{
		calendar: cal,
		weekmask: map[int]bool{
			holiday.Monday:    true,
			holiday.Tuesday:   true,
			holiday.Wednesday: true,
			holiday.Thursday:  true,
			holiday.Friday:    true,
		},
	}
}

// NewBusinessDayWithWeekmask builds a BusinessDay offset over a custom set
// of business weekdays (Monday=0..Sunday=6). Returns InvalidConfig if the
// weekmask is empty, since every day would then be a non-business day and
// roll/shift could never terminate.
func NewBusinessDayWithWeekmask(cal *holiday.Calendar, businessWeekdays []int) (*BusinessDay, error) {
	if len(businessWeekdays) == 0 {
		return nil, fedcal.NewInvalidConfigError("weekmask must contain at least one business weekday")
	}
	mask := make(map[int]bool, len(businessWeekdays))
	for _, wd := range businessWeekdays {
		mask[wd] = true
	}
	return &BusinessDay{calendar: cal, weekmask: mask}, nil
}

// IsOnOffset reports whether d is a business day (satisfies the Offset
// interface as an alias for IsBusinessDay).
func (b *BusinessDay) IsOnOffset(d fedcal.Date) bool { return b.IsBusinessDay(d) }

// IsBusinessDay reports whether d is a business day: its weekday is in the
// weekmask and it is not an observed federal holiday.
func (b *BusinessDay) IsBusinessDay(d fedcal.Date) bool {
	if !b.weekmask[d.Weekday()] {
		return false
	}
	return !b.calendar.IsHoliday(d)
}

// RollBack returns d if it is already a business day, else the greatest
// business day strictly less than d.
func (b *BusinessDay) RollBack(d fedcal.Date) fedcal.Date {
	for !b.IsBusinessDay(d) {
		d = d.AddDays(-1)
	}
	return d
}

// RollForward returns d if it is already a business day, else the least
// business day strictly greater than d.
func (b *BusinessDay) RollForward(d fedcal.Date) fedcal.Date {
	for !b.IsBusinessDay(d) {
		d = d.AddDays(1)
	}
	return d
}

// Shift returns the date n business days away from d; d itself does not
// count toward n. Shift(d, 0) rolls d forward onto the offset if it is not
// already on it (the offset's roll convention), matching the universal
// property in spec.md §8.4.
func (b *BusinessDay) Shift(d fedcal.Date, n int) fedcal.Date {
	if n == 0 {
		return b.RollForward(d)
	}
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	cur := d
	for i := 0; i < n; i++ {
		cur = cur.AddDays(step)
		for !b.IsBusinessDay(cur) {
			cur = cur.AddDays(step)
		}
	}
	return cur
}

// BusinessDays returns every business day in [start, end], ascending.
func (b *BusinessDay) BusinessDays(start, end fedcal.Date) fedcal.DateArray {
	out := fedcal.DateArray{}
	for d := start; !d.After(end); d = d.AddDays(1) {
		if b.IsBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsBusinessDayArray is the vectorized form of IsBusinessDay.
func (b *BusinessDay) IsBusinessDayArray(dates fedcal.DateArray) []bool {
	out := make([]bool, len(dates))
	for i, d := range dates {
		out[i] = b.IsBusinessDay(d)
	}
	return out
}

// ShiftArray is the vectorized form of Shift.
func (b *BusinessDay) ShiftArray(dates fedcal.DateArray, n int) fedcal.DateArray {
	out := make(fedcal.DateArray, len(dates))
	for i, d := range dates {
		out[i] = b.Shift(d, n)
	}
	return out
}
