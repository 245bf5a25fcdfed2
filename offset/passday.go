package offset

import (
	"fmt"

	fedcal "github.com/coredds/fedcal-go"
	"github.com/coredds/fedcal-go/holiday"
)

// PassdayMap maps the weekday (Monday=0..Friday=4) of an observed holiday to
// the weekday of its associated military pass day. Validated per spec.md
// §3: exactly five keys and five values covering Mon-Fri, no key equal to
// its value, and each pair within one business-day distance (|diff| in
// {1, 4}, where 4 represents the Fri<->Mon wrap).
type PassdayMap map[int]int

// DefaultPassdayMap is the default mapping: Mon->Fri, Tue->Mon, Wed->Thu,
// Thu->Fri, Fri->Mon.
var DefaultPassdayMap = PassdayMap{
	holiday.Monday:    holiday.Friday,
	holiday.Tuesday:   holiday.Monday,
	holiday.Wednesday: holiday.Thursday,
	holiday.Thursday:  holiday.Friday,
	holiday.Friday:    holiday.Monday,
}

// Validate checks the PassdayMap invariants from spec.md §3.
func (m PassdayMap) Validate() error {
	if len(m) != 5 {
		return fedcal.NewInvalidConfigError(fmt.Sprintf("passday map must have exactly 5 keys, got %d", len(m)))
	}
	seenKeys := map[int]bool{}
	seenValues := map[int]bool{}
	for k, v := range m {
		if k < holiday.Monday || k > holiday.Friday {
			return fedcal.NewInvalidConfigError(fmt.Sprintf("passday map key %d is not Mon-Fri", k))
		}
		if v < holiday.Monday || v > holiday.Friday {
			return fedcal.NewInvalidConfigError(fmt.Sprintf("passday map value %d is not Mon-Fri", v))
		}
		if k == v {
			return fedcal.NewInvalidConfigError(fmt.Sprintf("passday map key %d must not equal its value", k))
		}
		diff := v - k
		if diff < 0 {
			diff = -diff
		}
		if diff != 1 && diff != 4 {
			return fedcal.NewInvalidConfigError(fmt.Sprintf("passday map pair (%d, %d) is not within one business-day distance", k, v))
		}
		seenKeys[k] = true
		seenValues[v] = true
	}
	if len(seenKeys) != 5 || len(seenValues) != 5 {
		return fedcal.NewInvalidConfigError("passday map must cover Mon-Fri exactly once each as keys and as values")
	}
	return nil
}

// PassDay is the military pass-day offset: business days adjacent to
// holidays that are "probable" pass days under a configurable day-of-week
// mapping. Depends on both the holiday calendar and the business-day
// calendar, per spec.md §4.6.
type PassDay struct {
	calendar *holiday.Calendar
	business *BusinessDay
	passmap  PassdayMap
}

// NewPassDay builds a PassDay offset. Returns InvalidConfig if passmap
// fails validation.
func NewPassDay(cal *holiday.Calendar, business *BusinessDay, passmap PassdayMap) (*PassDay, error) {
	if err := passmap.Validate(); err != nil {
		return nil, err
	}
	return &PassDay{calendar: cal, business: business, passmap: passmap}, nil
}

// NearestHoliday returns the holiday nearest to d by absolute day
// difference; on ties, the later holiday. Exposed as a utility for both
// scalar and array use per spec.md §4.6.
func (p *PassDay) NearestHoliday(d fedcal.Date) (fedcal.Date, bool) {
	// Search outward in a symmetric window; the federal holiday calendar
	// never has a gap wider than ~105 days (Presidents Day to Memorial Day),
	// so every day lies within ~53 days of a holiday and this bound suffices.
	const maxSearch = 120
	for delta := 0; delta <= maxSearch; delta++ {
		later := d.AddDays(delta)
		earlier := d.AddDays(-delta)
		laterIsHoliday := p.calendar.IsHoliday(later)
		earlierIsHoliday := delta != 0 && p.calendar.IsHoliday(earlier)
		switch {
		case laterIsHoliday && earlierIsHoliday:
			// Equidistant: tie-break to the later holiday.
			return later, true
		case laterIsHoliday:
			return later, true
		case earlierIsHoliday:
			return earlier, true
		}
	}
	return fedcal.Date{}, false
}

// NearestHolidayArray is the vectorized form of NearestHoliday.
func (p *PassDay) NearestHolidayArray(dates fedcal.DateArray) []fedcal.Date {
	out := make([]fedcal.Date, len(dates))
	for i, d := range dates {
		if h, ok := p.NearestHoliday(d); ok {
			out[i] = h
		}
	}
	return out
}

// IsOnOffset is an alias for IsPassDay.
func (p *PassDay) IsOnOffset(d fedcal.Date) bool { return p.IsPassDay(d) }

// IsPassDay reports whether d is a probable military pass day, per the
// four-step algorithm in spec.md §4.6.
func (p *PassDay) IsPassDay(d fedcal.Date) bool {
	if !p.business.IsBusinessDay(d) {
		return false
	}
	h, ok := p.NearestHoliday(d)
	if !ok {
		return false
	}
	hw := h.Weekday()
	if hw > holiday.Friday {
		return false // observed holidays always land Mon-Fri; defensive only
	}
	want, ok := p.passmap[hw]
	if !ok || d.Weekday() != want {
		return false
	}
	delta := d.DaysSince(h)
	if delta < 0 {
		delta = -delta
	}
	if hw == holiday.Monday || hw == holiday.Friday {
		return delta == 3
	}
	return delta == 1
}

// Shift returns the pass day associated with the holiday nearest to d. The
// direction (before or after h) is derived from which side's weekday
// matches passmap[h.Weekday()], so this works for any validated PassdayMap,
// not only DefaultPassdayMap.
func (p *PassDay) Shift(d fedcal.Date, _ int) fedcal.Date {
	h, ok := p.NearestHoliday(d)
	if !ok {
		return d
	}
	hw := h.Weekday()
	want, ok := p.passmap[hw]
	if !ok {
		return d
	}
	offsetDays := 1
	if hw == holiday.Monday || hw == holiday.Friday {
		offsetDays = 3
	}
	after := h.AddDays(offsetDays)
	if after.Weekday() == want {
		return after
	}
	return h.AddDays(-offsetDays)
}

// RollBack returns d if it is a pass day, else the greatest pass day
// strictly less than d.
func (p *PassDay) RollBack(d fedcal.Date) fedcal.Date {
	for !p.IsPassDay(d) {
		d = d.AddDays(-1)
	}
	return d
}

// RollForward returns d if it is a pass day, else the least pass day
// strictly greater than d.
func (p *PassDay) RollForward(d fedcal.Date) fedcal.Date {
	for !p.IsPassDay(d) {
		d = d.AddDays(1)
	}
	return d
}

// PassDays returns every pass day in [start, end].
func (p *PassDay) PassDays(start, end fedcal.Date) fedcal.DateArray {
	out := fedcal.DateArray{}
	for d := start; !d.After(end); d = d.AddDays(1) {
		if p.IsPassDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsPassDayArray is the vectorized form of IsPassDay.
func (p *PassDay) IsPassDayArray(dates fedcal.DateArray) []bool {
	out := make([]bool, len(dates))
	for i, d := range dates {
		out[i] = p.IsPassDay(d)
	}
	return out
}
