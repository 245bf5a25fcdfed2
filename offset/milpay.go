package offset

import fedcal "github.com/coredds/fedcal-go"

// MilitaryPayday is the military payday offset: nominally the 1st and 15th
// of each month, rolled back to the most recent prior business day when the
// nominal date is not itself a business day. Grounded on business.go's
// roll-to-prior-business-day pattern, generalized per spec.md §4.5 from an
// ad hoc "next/previous business day" pair to a month-anchored nominal
// schedule with observance.
type MilitaryPayday struct {
	business *BusinessDay
}

// NewMilitaryPayday builds a MilitaryPayday offset over the given
// BusinessDay calendar.
func NewMilitaryPayday(business *BusinessDay) *MilitaryPayday {
	return &MilitaryPayday{business: business}
}

// IsOnOffset is an alias for IsPayday.
func (m *MilitaryPayday) IsOnOffset(d fedcal.Date) bool { return m.IsPayday(d) }

// IsPayday reports whether d is an observed military payday: there exists
// a nominal date n (the 1st or 15th of some month) such that
// RollBack(n) == d.
func (m *MilitaryPayday) IsPayday(d fedcal.Date) bool {
	y, mo, day := d.Decompose()
	// d can only be the observed payday for a nominal date in the same
	// month (if the nominal date is already a business day) or in the
	// following month (if the 1st of next month rolled back past a
	// month/weekend boundary into this month).
	nextY, nextMo := nextMonth(y, mo)
	for _, cand := range []fedcal.Date{
		mustDate(y, mo, 1), mustDate(y, mo, 15), mustDate(nextY, nextMo, 1),
	} {
		if m.business.RollBack(cand).Equal(d) {
			return true
		}
	}
	_ = day
	return false
}

func nextMonth(y, mo int) (int, int) {
	if mo == 12 {
		return y + 1, 1
	}
	return y, mo + 1
}

// RollBack returns d if it is an observed payday, else the greatest
// observed payday strictly less than d.
func (m *MilitaryPayday) RollBack(d fedcal.Date) fedcal.Date {
	for !m.IsPayday(d) {
		d = d.AddDays(-1)
	}
	return d
}

// RollForward returns d if it is an observed payday, else the least
// observed payday strictly greater than d.
func (m *MilitaryPayday) RollForward(d fedcal.Date) fedcal.Date {
	for !m.IsPayday(d) {
		d = d.AddDays(1)
	}
	return d
}

// Shift returns the n-th observed military payday after d (or before, for
// negative n); d itself does not count toward n.
func (m *MilitaryPayday) Shift(d fedcal.Date, n int) fedcal.Date {
	if n == 0 {
		return m.RollForward(d)
	}
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	cur := d
	for i := 0; i < n; i++ {
		cur = cur.AddDays(step)
		for !m.IsPayday(cur) {
			cur = cur.AddDays(step)
		}
	}
	return cur
}

// Paydays returns every observed military payday in [start, end].
func (m *MilitaryPayday) Paydays(start, end fedcal.Date) fedcal.DateArray {
	out := fedcal.DateArray{}
	for d := start; !d.After(end); d = d.AddDays(1) {
		if m.IsPayday(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsPaydayArray is the vectorized form of IsPayday.
func (m *MilitaryPayday) IsPaydayArray(dates fedcal.DateArray) []bool {
	out := make([]bool, len(dates))
	for i, d := range dates {
		out[i] = m.IsPayday(d)
	}
	return out
}
