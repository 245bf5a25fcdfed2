package status

import (
	"encoding/json"
	"sort"

	fedcal "github.com/coredds/fedcal-go"
)

// StatusMap is the department set active on a given day, each mapped to its
// status on that day, per spec.md §4.9.
type StatusMap map[fedcal.Department]fedcal.DeptStatus

// MarshalJSON renders a StatusMap keyed by department abbreviation rather
// than by the underlying Department int, so external adapters see e.g.
// {"DHS": "full_approps"} instead of numeric enum keys.
func (m StatusMap) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(m))
	for dept, s := range m {
		out[dept.Abbreviation()] = s.Variant()
	}
	return json.Marshal(out)
}

// StatusAtDate is the single-date aggregation operation: the department set
// active on d (all 17 from 2003-11-25 onward, the 16 non-DHS departments
// before it), each mapped to the store's status for d.
func StatusAtDate(idx *Index, d fedcal.Date) (StatusMap, error) {
	out := make(StatusMap, len(fedcal.AllDepartments))
	for _, dept := range fedcal.AllDepartments {
		if !dept.ExistsOn(d) {
			continue
		}
		s, err := idx.StatusAt(dept, d)
		if err != nil {
			return nil, err
		}
		out[dept] = s
	}
	return out, nil
}

func (m StatusMap) all(pred func(fedcal.DeptStatus) bool) bool {
	for _, s := range m {
		if !pred(s) {
			return false
		}
	}
	return true
}

func (m StatusMap) any(pred func(fedcal.DeptStatus) bool) bool {
	for _, s := range m {
		if pred(s) {
			return true
		}
	}
	return false
}

// AllFullAppropriations reports whether every department's status is
// full_approps.
func (m StatusMap) AllFullAppropriations() bool {
	return m.all(func(s fedcal.DeptStatus) bool { return s == fedcal.FullApprops })
}

// AllContinuingResolution reports whether every department's status is
// cont_res.
func (m StatusMap) AllContinuingResolution() bool {
	return m.all(func(s fedcal.DeptStatus) bool { return s == fedcal.ContRes })
}

// AllFunded reports whether every department is open in some form
// (full_approps, cont_res, or the pre-cutoff approps_cr_or_full).
func (m StatusMap) AllFunded() bool {
	return m.all(fedcal.DeptStatus.IsFunded)
}

// AllUnfunded reports whether every department is in a funding gap or
// shutdown.
func (m StatusMap) AllUnfunded() bool {
	return m.all(fedcal.DeptStatus.IsUnfunded)
}

// AnyCR reports whether any department is under a continuing resolution.
func (m StatusMap) AnyCR() bool {
	return m.any(func(s fedcal.DeptStatus) bool { return s == fedcal.ContRes })
}

// AnyShutdown reports whether any department has shut down.
func (m StatusMap) AnyShutdown() bool {
	return m.any(func(s fedcal.DeptStatus) bool { return s == fedcal.Shutdown })
}

// AnyGap reports whether any department is in an appropriations gap (short
// of a declared shutdown).
func (m StatusMap) AnyGap() bool {
	return m.any(func(s fedcal.DeptStatus) bool { return s == fedcal.ApropsGap })
}

// AnyUnfunded reports whether any department is in a gap or shutdown.
func (m StatusMap) AnyUnfunded() bool {
	return m.any(fedcal.DeptStatus.IsUnfunded)
}

// Equal reports whether m and o assign the same status to the same
// department set.
func (m StatusMap) Equal(o StatusMap) bool {
	if len(m) != len(o) {
		return false
	}
	for dept, s := range m {
		if o[dept] != s {
			return false
		}
	}
	return true
}

// RangeSnapshot is one entry yielded by StatusOverRange: the department
// status map effective starting on Date, through the next snapshot's Date
// (exclusive) or end (inclusive) for the last entry.
type RangeSnapshot struct {
	Date   fedcal.Date
	Status StatusMap
}

// StatusOverRange is the range-aggregation operation from spec.md §4.9: one
// entry per change boundary within [start, end] — a date on which at least
// one department's status differs from the previously yielded entry — plus
// the first and last date in the range, in ascending order.
func StatusOverRange(idx *Index, start, end fedcal.Date) ([]RangeSnapshot, error) {
	boundarySet := map[int32]bool{start.DayCount(): true, end.DayCount(): true}
	if !fedcal.DHSFormed.Before(start) && !fedcal.DHSFormed.After(end) {
		boundarySet[fedcal.DHSFormed.DayCount()] = true
	}
	// The day after the dataset's last covered day is where every department
	// switches to FutureUnknown.
	if next := idx.MaxDate().AddDays(1); next.After(start) && !next.After(end) {
		boundarySet[next.DayCount()] = true
	}
	for _, dept := range fedcal.AllDepartments {
		for _, entry := range idx.StatusesInRange(dept, start, end) {
			if !entry.Start.Before(start) {
				boundarySet[entry.Start.DayCount()] = true
			}
		}
	}

	days := make([]int32, 0, len(boundarySet))
	for day := range boundarySet {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	out := make([]RangeSnapshot, 0, len(days))
	var prev StatusMap
	for i, day := range days {
		d := fedcal.Date{}.AddDays(int(day))
		snap, err := StatusAtDate(idx, d)
		if err != nil {
			return nil, err
		}
		last := i == len(days)-1
		if prev != nil && snap.Equal(prev) && !last {
			continue
		}
		out = append(out, RangeSnapshot{Date: d, Status: snap})
		prev = snap
	}
	return out, nil
}
