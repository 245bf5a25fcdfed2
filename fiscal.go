package fedcal

import "fmt"

// FiscalYear returns the US federal fiscal year containing d. FY begins
// October 1 and is labeled by the calendar year in which it ends, so
// Oct 1 Y .. Sep 30 (Y+1) is FY(Y+1).
func FiscalYear(d Date) int {
	y, m, _ := d.Decompose()
	if m >= 10 {
		return y + 1
	}
	return y
}

// FiscalQuarter returns the fiscal quarter (1-4) containing d: 1 for
// Oct-Dec, 2 for Jan-Mar, 3 for Apr-Jun, 4 for Jul-Sep.
func FiscalQuarter(d Date) int {
	_, m, _ := d.Decompose()
	return ((m+2)%12)/3 + 1
}

// IsFYStart reports whether d is October 1, the literal first day of a
// fiscal year.
func IsFYStart(d Date) bool {
	_, m, day := d.Decompose()
	return m == 10 && day == 1
}

// IsFYEnd reports whether d is September 30, the literal last day of a
// fiscal year.
func IsFYEnd(d Date) bool {
	_, m, day := d.Decompose()
	return m == 9 && day == 30
}

// fqStartMonths maps each fiscal quarter to its first calendar month.
var fqStartMonths = map[int]int{1: 10, 2: 1, 3: 4, 4: 7}

// IsFQStart reports whether d is the first day of its fiscal quarter.
func IsFQStart(d Date) bool {
	_, m, day := d.Decompose()
	if day != 1 {
		return false
	}
	return fqStartMonths[FiscalQuarter(d)] == m
}

// IsFQEnd reports whether d is the last day of its fiscal quarter.
func IsFQEnd(d Date) bool {
	nextDay := d.AddDays(1)
	_, nm, nday := nextDay.Decompose()
	if nday != 1 {
		return false
	}
	return fqStartMonths[FiscalQuarter(nextDay)] == nm
}

// FYFQLabel renders d's fiscal year and quarter as "YYYYQ#".
func FYFQLabel(d Date) string {
	return fmt.Sprintf("%dQ%d", FiscalYear(d), FiscalQuarter(d))
}

// DaysIntoFiscalYear returns the number of days elapsed since the start of
// d's fiscal year, with FY-start itself counting as day 0. Recovered from
// original_source/fedcal/fiscal.py, which exposes the symmetric helper
// alongside fiscal_year/fiscal_quarter.
func DaysIntoFiscalYear(d Date) int {
	fy := FiscalYear(d)
	start := mustDate(fy-1, 10, 1)
	return d.DaysSince(start)
}

// DaysRemainingInFiscalYear returns the number of days from d to the last
// day of d's fiscal year, not counting d itself, so September 30 gives 0.
func DaysRemainingInFiscalYear(d Date) int {
	fy := FiscalYear(d)
	end := mustDate(fy, 9, 30)
	return end.DaysSince(d)
}
