package status

import (
	"fmt"
	"sort"

	fedcal "github.com/coredds/fedcal-go"
)

// Index is the per-department sorted interval store described in spec.md
// §4.8: one binary-searchable array per department, built once at load time
// and immutable thereafter.
type Index struct {
	byDept map[fedcal.Department][]StatusInterval
	max    fedcal.Date
}

// departmentStart returns the first day a department's coverage must begin:
// the epoch for every department except DHS, which begins at DHSFormed.
func departmentStart(dept fedcal.Department) fedcal.Date {
	if dept == fedcal.DHS {
		return fedcal.DHSFormed
	}
	return fedcal.MinDate
}

// newIndex groups records by department, sorts each group, and verifies the
// coverage invariants from spec.md §4.8: non-overlapping, contiguous, and
// spanning the department's full covered range up to the dataset's global
// last day.
func newIndex(records []StatusInterval) (*Index, error) {
	byDept := make(map[fedcal.Department][]StatusInterval)
	var max fedcal.Date
	first := true
	for _, r := range records {
		byDept[r.Department] = append(byDept[r.Department], r)
		if first || r.End.After(max) {
			max = r.End
			first = false
		}
	}

	for _, dept := range fedcal.AllDepartments {
		intervals, ok := byDept[dept]
		if !ok || len(intervals) == 0 {
			return nil, fedcal.NewDatasetInvariantError(fmt.Sprintf("no coverage at all for department %s", dept.Abbreviation()))
		}
		sort.Slice(intervals, func(i, j int) bool { return intervals[i].Start.Before(intervals[j].Start) })
		byDept[dept] = intervals

		want := departmentStart(dept)
		if !intervals[0].Start.Equal(want) {
			return nil, fedcal.NewDatasetInvariantError(fmt.Sprintf("%s coverage starts on %s, want %s", dept.Abbreviation(), intervals[0].Start, want))
		}
		for i, iv := range intervals {
			if iv.End.Before(iv.Start) {
				return nil, fedcal.NewDatasetInvariantError(fmt.Sprintf("%s interval ends before it starts: %s..%s", dept.Abbreviation(), iv.Start, iv.End))
			}
			if i == 0 {
				continue
			}
			prev := intervals[i-1]
			if !iv.Start.Equal(prev.End.AddDays(1)) {
				return nil, fedcal.NewDatasetInvariantError(fmt.Sprintf("%s coverage gap or overlap between %s and %s", dept.Abbreviation(), prev.End, iv.Start))
			}
		}
		last := intervals[len(intervals)-1]
		if !last.End.Equal(max) {
			return nil, fedcal.NewDatasetInvariantError(fmt.Sprintf("%s coverage ends on %s, want %s", dept.Abbreviation(), last.End, max))
		}
	}

	return &Index{byDept: byDept, max: max}, nil
}

// MaxDate returns the dataset's last covered day, common to every
// department. Dates after it resolve to FutureUnknown rather than an error.
func (idx *Index) MaxDate() fedcal.Date { return idx.max }

// StatusAt is the point-lookup operation from spec.md §4.8. Returns
// OutOfRange if d predates the department's formation (DHS before
// DHSFormed) or the dataset's epoch floor, and FutureUnknown (not an error)
// for any d after the dataset's last covered day.
func (idx *Index) StatusAt(dept fedcal.Department, d fedcal.Date) (fedcal.DeptStatus, error) {
	if d.Before(departmentStart(dept)) {
		return 0, newOutOfDepartmentRangeError(dept, d)
	}
	if d.After(idx.max) {
		return fedcal.FutureUnknown, nil
	}
	intervals := idx.byDept[dept]
	i := sort.Search(len(intervals), func(i int) bool { return !intervals[i].End.Before(d) })
	if i < len(intervals) && !intervals[i].Start.After(d) {
		return intervals[i].Status, nil
	}
	return 0, fedcal.NewDatasetInvariantError(fmt.Sprintf("no interval covers %s for %s despite passing load validation", d, dept.Abbreviation()))
}

func newOutOfDepartmentRangeError(dept fedcal.Department, d fedcal.Date) error {
	return &fedcal.Error{
		Code:    fedcal.ErrOutOfRange,
		Message: fmt.Sprintf("%s did not exist on %s", dept.Abbreviation(), d),
	}
}

// RangeEntry is one (interval, status) pair returned by StatusesInRange,
// clipped to the query range.
type RangeEntry struct {
	Start, End fedcal.Date
	Status     fedcal.DeptStatus
}

// StatusesInRange is the range-lookup operation from spec.md §4.8: every
// stored interval that intersects [start, end], clipped to it.
func (idx *Index) StatusesInRange(dept fedcal.Department, start, end fedcal.Date) []RangeEntry {
	var out []RangeEntry
	for _, iv := range idx.byDept[dept] {
		if iv.End.Before(start) || iv.Start.After(end) {
			continue
		}
		s, e := iv.Start, iv.End
		if s.Before(start) {
			s = start
		}
		if e.After(end) {
			e = end
		}
		out = append(out, RangeEntry{Start: s, End: e, Status: iv.Status})
	}
	return out
}
