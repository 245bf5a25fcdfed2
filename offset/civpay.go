package offset

import fedcal "github.com/coredds/fedcal-go"

// civPayAnchor is the first US federal civilian biweekly payday on or after
// the Unix epoch: 1970-01-02, a Friday. Per original_source/fedcal/constants.py
// this is one payday cycle (14 days) after FEDPAYDAY_REFERENCE_DATE
// (1969-12-19), the payday immediately preceding the epoch; the Go port
// exposes only the in-epoch anchor since that is all the public contract
// (spec.md §4.4) needs.
var civPayAnchor = mustDate(1970, 1, 2)

func mustDate(y, m, d int) fedcal.Date {
	date, err := fedcal.DateFromYMD(y, m, d)
	if err != nil {
		panic(err)
	}
	return date
}

// CivilianPayday is the every-other-Friday biweekly federal civilian
// payday offset, anchored on civPayAnchor. It ignores holidays: a payday
// that falls on a federal holiday remains a payday for this offset, per
// spec.md §4.4.
type CivilianPayday struct{}

// NewCivilianPayday builds a CivilianPayday offset. The cadence is fixed by
// construction and needs no configuration.
func NewCivilianPayday() *CivilianPayday { return &CivilianPayday{} }

// IsOnOffset is an alias for IsPayday.
func (c *CivilianPayday) IsOnOffset(d fedcal.Date) bool { return c.IsPayday(d) }

// IsPayday reports whether d is a Friday on the biweekly payday cadence:
// d is a Friday and floor((daycount(d) - 1) / 7) is even.
func (c *CivilianPayday) IsPayday(d fedcal.Date) bool {
	if d.Weekday() != 4 { // Friday
		return false
	}
	n := int(d.DayCount()) - 1
	week := floorDiv(n, 7)
	return week%2 == 0
}

// RollBack returns d if it is a payday, else the most recent prior payday.
func (c *CivilianPayday) RollBack(d fedcal.Date) fedcal.Date {
	for !c.IsPayday(d) {
		d = d.AddDays(-1)
	}
	return d
}

// RollForward returns d if it is a payday, else the next payday.
func (c *CivilianPayday) RollForward(d fedcal.Date) fedcal.Date {
	for !c.IsPayday(d) {
		d = d.AddDays(1)
	}
	return d
}

// Shift returns the n-th payday after d (or before, for negative n). d
// itself does not count toward n; Shift(d, 0) rolls d forward onto a
// payday if it is not already one.
func (c *CivilianPayday) Shift(d fedcal.Date, n int) fedcal.Date {
	if n == 0 {
		return c.RollForward(d)
	}
	if n > 0 {
		first := c.RollForward(d.AddDays(1)) // strictly after d; d itself never counts
		return first.AddDays(14 * (n - 1))
	}
	first := c.RollBack(d.AddDays(-1)) // strictly before d
	return first.AddDays(-14 * (-n - 1))
}

// Paydays returns every civilian payday in [start, end], ascending.
func (c *CivilianPayday) Paydays(start, end fedcal.Date) fedcal.DateArray {
	out := fedcal.DateArray{}
	for d := start; !d.After(end); d = d.AddDays(1) {
		if c.IsPayday(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsPaydayArray is the vectorized form of IsPayday.
func (c *CivilianPayday) IsPaydayArray(dates fedcal.DateArray) []bool {
	out := make([]bool, len(dates))
	for i, d := range dates {
		out[i] = c.IsPayday(d)
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
