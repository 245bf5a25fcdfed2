// Package offset implements the date-offset algebra: business days,
// civilian and military paydays, and military pass days, each as a
// concrete type with vectorized forms. Grounded on the teacher library's
// BusinessDayCalculator (business.go), generalized per spec.md §4.3-§4.6
// from "one holiday-aware business-day calculator" to a family of offsets
// sharing a common Offset contract, as suggested in the source's design
// notes (§9) over the source's class-hierarchy approach.
package offset

import fedcal "github.com/coredds/fedcal-go"

// Offset is the small shared contract every offset type in this package
// implements, standing in for the dataframe-library class hierarchy the
// source repository used to let offsets compose with "+"/"-" operators.
type Offset interface {
	IsOnOffset(d fedcal.Date) bool
	RollBack(d fedcal.Date) fedcal.Date
	RollForward(d fedcal.Date) fedcal.Date
	Shift(d fedcal.Date, n int) fedcal.Date
}
