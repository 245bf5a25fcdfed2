package fedcal

import (
	"fmt"
	"strings"
	"time"
)

// MinDate and MaxDate bound the supported range, inclusive, per spec.
var (
	MinDate = Date{days: 0} // 1970-01-01
	MaxDate = fromTime(time.Date(2199, 12, 31, 0, 0, 0, 0, time.UTC))
)

// secondsAt2200 is the Unix-seconds value of 2200-01-01T00:00:00Z. to_date's
// integer heuristic treats inputs at or above this as nanoseconds rather
// than seconds; see Design notes in SPEC_FULL.md.
const secondsAt2200 int64 = 7258118400

// Date is a whole-day, timezone-naive civil date in the closed range
// 1970-01-01..2199-12-31, represented internally as a day-count from the
// Unix epoch. Equality is by calendar day.
type Date struct {
	days int32
}

// DateArray is a vectorized sequence of Date. The range generators (the
// [start, end] form of ToDateArray and the offset/holiday range functions)
// produce it in ascending order; ToDateArray on a list keeps the list's order.
type DateArray []Date

// Weekday returns the ISO-ish weekday with Monday = 0 .. Sunday = 6.
func (d Date) Weekday() int {
	// 1970-01-01 was a Thursday (time.Thursday == 4 in time.Weekday, Sun=0).
	// Thursday maps to weekday 3 in the Monday=0 scheme.
	return int((int32(3) + d.days%7 + 7) % 7)
}

// Year, Month, Day decompose the date into its Gregorian components.
func (d Date) Year() int  { y, _, _ := d.Decompose(); return y }
func (d Date) Month() int { _, m, _ := d.Decompose(); return m }
func (d Date) Day() int   { _, _, day := d.Decompose(); return day }

// Decompose returns the (year, month, day) triple for d.
func (d Date) Decompose() (year, month, day int) {
	t := d.toTime()
	return t.Year(), int(t.Month()), t.Day()
}

// String renders the date as ISO-8601 (YYYY-MM-DD).
func (d Date) String() string {
	return d.toTime().Format("2006-01-02")
}

// Before, After, Equal compare Dates by calendar day.
func (d Date) Before(o Date) bool { return d.days < o.days }
func (d Date) After(o Date) bool  { return d.days > o.days }
func (d Date) Equal(o Date) bool  { return d.days == o.days }

// AddDays returns the date n calendar days away from d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{days: d.days + int32(n)}
}

// DaysSince returns d - o, in days.
func (d Date) DaysSince(o Date) int {
	return int(d.days - o.days)
}

// DayCount returns the underlying Unix-epoch day count.
func (d Date) DayCount() int32 {
	return d.days
}

func (d Date) toTime() time.Time {
	return time.Unix(0, 0).UTC().AddDate(0, 0, int(d.days))
}

func fromTime(t time.Time) Date {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := int32(t.Sub(time.Unix(0, 0).UTC()).Hours() / 24)
	return Date{days: days}
}

// inRange reports whether t falls within the supported calendar bounds.
func inRange(t time.Time) bool {
	return !t.Before(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)) &&
		!t.After(time.Date(2199, 12, 31, 0, 0, 0, 0, time.UTC))
}

// ToDate normalizes any of the accepted representations to a canonical Date:
//
//   - int, int32, int64: a day-count since the epoch if |x| < 86400,
//     otherwise a second-count since the epoch, unless the magnitude is at
//     or beyond the seconds value of 2200-01-01, in which case it is
//     interpreted as nanoseconds. This ambiguous-at-epoch heuristic is
//     inherited deliberately from the source library; see SPEC_FULL.md.
//   - string: ISO-8601 (YYYY-MM-DD), then American (MM/DD/YYYY, MM-DD-YYYY),
//     then European (DD/MM/YYYY, DD-MM-YYYY), tried in that order.
//   - [3]int: a (y, m, d) calendar-date triple (see also DateFromYMD).
//   - time.Time: truncated to the civil day, time zone stripped.
//   - Date: returned unchanged.
func ToDate(x any) (Date, error) {
	switch v := x.(type) {
	case Date:
		return v, nil
	case time.Time:
		return dateFromTime(v)
	case int:
		return dateFromInt(int64(v))
	case int32:
		return dateFromInt(int64(v))
	case int64:
		return dateFromInt(v)
	case string:
		return dateFromString(v)
	case [3]int:
		return DateFromYMD(v[0], v[1], v[2])
	default:
		return Date{}, newError(ErrParse, fmt.Sprintf("unsupported input type %T for to_date", x))
	}
}

// DateFromYMD builds a Date from explicit year/month/day components.
func DateFromYMD(y, m, d int) (Date, error) {
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return Date{}, newError(ErrShape, fmt.Sprintf("invalid (y, m, d) triple: (%d, %d, %d)", y, m, d))
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflowed day/month silently; reject that here
	// since the caller asked for a specific calendar date.
	if int(t.Month()) != m || t.Day() != d || t.Year() != y {
		return Date{}, newError(ErrShape, fmt.Sprintf("(%d, %d, %d) is not a valid calendar date", y, m, d))
	}
	return dateFromTime(t)
}

func dateFromTime(t time.Time) (Date, error) {
	t = t.UTC()
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if !inRange(t) {
		return Date{}, newError(ErrOutOfRange, fmt.Sprintf("%s is outside the supported range 1970-01-01..2199-12-31", t.Format("2006-01-02")))
	}
	return fromTime(t), nil
}

func dateFromInt(v int64) (Date, error) {
	var t time.Time
	switch {
	case v >= secondsAt2200 || v <= -secondsAt2200:
		t = time.Unix(0, v).UTC()
	case v < 86400 && v > -86400:
		t = time.Unix(0, 0).UTC().AddDate(0, 0, int(v))
	default:
		t = time.Unix(v, 0).UTC()
	}
	return dateFromTime(t)
}

var dateLayouts = []string{
	"2006-01-02", // ISO-8601
	"01/02/2006", // American slash
	"01-02-2006", // American dash
	"02/01/2006", // European slash
	"02-01-2006", // European dash
}

func dateFromString(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateFromTime(t)
		}
	}
	return Date{}, newError(ErrParse, fmt.Sprintf("could not parse %q as a date in any supported format", s))
}

// ToDateArray normalizes an input into a DateArray. Accepted inputs: a
// [2]any{start, end} pair (expanded to every day in the inclusive range, in
// ascending order), or any []any of date-convertible values (converted
// element by element; the input order and any duplicates are kept).
func ToDateArray(x any) (DateArray, error) {
	switch v := x.(type) {
	case [2]any:
		start, err := ToDate(v[0])
		if err != nil {
			return nil, err
		}
		end, err := ToDate(v[1])
		if err != nil {
			return nil, err
		}
		return dateRange(start, end), nil
	case []any:
		if len(v) == 0 {
			return nil, newError(ErrShape, "date array input must not be empty")
		}
		out := make(DateArray, 0, len(v))
		for _, item := range v {
			d, err := ToDate(item)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
		return out, nil
	case DateArray:
		return v, nil
	default:
		return nil, newError(ErrShape, fmt.Sprintf("unsupported input type %T for to_date_array", x))
	}
}

// MustToDate is ToDate with a panicking signature, for constant/known-good
// inputs such as time.Now() in call sites that are not themselves part of
// the pure query surface (e.g. estimating a future probability relative to
// "today").
func MustToDate(x any) Date {
	d, err := ToDate(x)
	if err != nil {
		panic(err)
	}
	return d
}

// dateRange returns every day in [start, end], inclusive. If end < start the
// range is empty.
func dateRange(start, end Date) DateArray {
	if end.days < start.days {
		return DateArray{}
	}
	n := int(end.days-start.days) + 1
	out := make(DateArray, n)
	for i := 0; i < n; i++ {
		out[i] = start.AddDays(i)
	}
	return out
}
