package holiday

import (
	"sort"
	"sync"
	"time"

	fedcal "github.com/coredds/fedcal-go"
	"github.com/rs/zerolog/log"
)

// record pairs a realized (observed) holiday date with its name and whether
// it is a proclamation holiday.
type record struct {
	date          fedcal.Date
	name          string
	isProclaimed bool
}

// Calendar is the US federal holiday calendar: the scheduled rules plus the
// proclaimed one-offs, realized and cached over the full supported date
// range. Construction is lazy and one-time per SPEC_FULL.md's concurrency
// model (§5): the realization happens on first use behind a sync.Once and
// is immutable thereafter, so a *Calendar is safe for concurrent readers
// without further locking. Grounded on the Country type's lazy
// per-year cache in the source library's goholidays.go, generalized from
// "cache per year on demand" to "realize the whole supported range once",
// since the federal holiday set has no per-country variability to justify
// deferring by year.
type Calendar struct {
	once     sync.Once
	byDay    map[int32]record
	sorted   []record
}

// NewCalendar constructs a Calendar. Realization is deferred to first use.
func NewCalendar() *Calendar {
	return &Calendar{}
}

func (c *Calendar) ensureLoaded() {
	c.once.Do(func() {
		c.byDay = make(map[int32]record)
		year := fedcal.MinDate.Year()
		maxYear := fedcal.MaxDate.Year()
		for y := year; y <= maxYear; y++ {
			for _, rule := range ScheduledRules {
				observed, err := rule.ObservedDate(y)
				if err != nil {
					continue // rule not yet in effect this year
				}
				c.byDay[observed.DayCount()] = record{date: observed, name: rule.Name}
			}
		}
		for _, p := range ProclamationHolidays {
			d, err := p.Date()
			if err != nil {
				continue
			}
			c.byDay[d.DayCount()] = record{date: d, name: p.Name, isProclaimed: true}
		}
		c.sorted = make([]record, 0, len(c.byDay))
		for _, r := range c.byDay {
			c.sorted = append(c.sorted, r)
		}
		sort.Slice(c.sorted, func(i, j int) bool { return c.sorted[i].date.Before(c.sorted[j].date) })
		log.Debug().Int("holiday_count", len(c.sorted)).Msg("federal holiday calendar realized")
	})
}

// IsHoliday reports whether d is an observed federal holiday.
func (c *Calendar) IsHoliday(d fedcal.Date) bool {
	c.ensureLoaded()
	_, ok := c.byDay[d.DayCount()]
	return ok
}

// NameOn returns the holiday name observed on d, if any.
func (c *Calendar) NameOn(d fedcal.Date) (string, bool) {
	c.ensureLoaded()
	r, ok := c.byDay[d.DayCount()]
	if !ok {
		return "", false
	}
	return r.name, true
}

// Holidays returns the observed holiday dates in [start, end], ascending,
// including proclamations unless includeProclamations is false.
func (c *Calendar) Holidays(start, end fedcal.Date, includeProclamations bool) fedcal.DateArray {
	c.ensureLoaded()
	out := fedcal.DateArray{}
	lo := sort.Search(len(c.sorted), func(i int) bool { return !c.sorted[i].date.Before(start) })
	for i := lo; i < len(c.sorted) && !c.sorted[i].date.After(end); i++ {
		r := c.sorted[i]
		if r.isProclaimed && !includeProclamations {
			continue
		}
		out = append(out, r.date)
	}
	return out
}

// HolidaysWithNames is the named-returns form of Holidays.
func (c *Calendar) HolidaysWithNames(start, end fedcal.Date, includeProclamations bool) (fedcal.DateArray, []string) {
	c.ensureLoaded()
	var dates fedcal.DateArray
	var names []string
	lo := sort.Search(len(c.sorted), func(i int) bool { return !c.sorted[i].date.Before(start) })
	for i := lo; i < len(c.sorted) && !c.sorted[i].date.After(end); i++ {
		r := c.sorted[i]
		if r.isProclaimed && !includeProclamations {
			continue
		}
		dates = append(dates, r.date)
		names = append(names, r.name)
	}
	return dates, names
}

// ProclamationHolidaysIn returns only the proclamation-holiday subset of
// Holidays in [start, end].
func (c *Calendar) ProclamationHolidaysIn(start, end fedcal.Date) fedcal.DateArray {
	c.ensureLoaded()
	out := fedcal.DateArray{}
	lo := sort.Search(len(c.sorted), func(i int) bool { return !c.sorted[i].date.Before(start) })
	for i := lo; i < len(c.sorted) && !c.sorted[i].date.After(end); i++ {
		if c.sorted[i].isProclaimed {
			out = append(out, c.sorted[i].date)
		}
	}
	return out
}

// EstimateFutureProclamation returns the probability, in [0, 1], that a
// future weekday Christmas Eve d will be declared a proclamation holiday.
// It returns 0 unless d is Christmas Eve (Dec 24), a weekday, and strictly
// after the current date. Otherwise it returns the historical ratio of
// (Christmas Eves falling on d's weekday that were proclaimed holidays) to
// (Christmas Eves on that weekday overall), using the Dec-24-is-attributed-
// to-Dec-25's-weekday linkage from spec.md §4.2.
func (c *Calendar) EstimateFutureProclamation(d fedcal.Date) float64 {
	m, day := d.Month(), d.Day()
	if m != 12 || day != 24 {
		return 0
	}
	wd := d.Weekday()
	if wd == Saturday || wd == Sunday {
		return 0
	}
	today := fedcal.MustToDate(time.Now())
	if !d.After(today) {
		return 0
	}

	c.ensureLoaded()
	// Bucket by the weekday of that year's Dec 25, per the Christmas Day /
	// Christmas Eve linkage in spec.md §4.2: a proclamation is attributed
	// to the weekday of Dec 25 even when it lands on a different date (the
	// 2014 proclamation fell on Dec 26).
	targetDec25Weekday := (wd + 1) % 7

	proclaimedYears := make(map[int]bool, len(ProclamationHolidays))
	for _, p := range ProclamationHolidays {
		proclaimedYears[p.Year] = true
	}

	proclaimedByWeekday := 0
	totalByWeekday := 0
	for y := 1970; y < d.Year(); y++ {
		christmas, err := fedcal.DateFromYMD(y, 12, 25)
		if err != nil {
			continue
		}
		if christmas.Weekday() != targetDec25Weekday {
			continue
		}
		totalByWeekday++
		if proclaimedYears[y] {
			proclaimedByWeekday++
		}
	}
	if totalByWeekday == 0 {
		return 0
	}
	return float64(proclaimedByWeekday) / float64(totalByWeekday)
}
