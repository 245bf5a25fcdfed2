package fedcal

import "fmt"

// DeptStatus is a totally ordered enum of the six possible funding /
// operational states a department can hold on a given day. Ordering is by
// the integer value: higher is "more funded".
type DeptStatus int

const (
	// FutureUnknown means the status of a future date has not yet resolved.
	FutureUnknown DeptStatus = iota - 1
	// Shutdown means no appropriations and the department has shut down
	// non-excepted operations.
	Shutdown
	// ApropsGap means no appropriations are in force but no shutdown order
	// has (yet) followed.
	ApropsGap
	// ContRes means the department is operating under a continuing
	// resolution.
	ContRes
	// ApropsCROrFull means the department is open but the data does not
	// distinguish a continuing resolution from full-year appropriations.
	ApropsCROrFull
	// FullApprops means the department has full-year appropriations.
	FullApprops
)

type statusInfo struct {
	variant string
	approps string
	ops     string
	simple  string
}

var statusInfoTable = map[DeptStatus]statusInfo{
	FullApprops:    {"full_approps", "full appropriations", "open", "appropriated"},
	ApropsCROrFull: {"approps_cr_or_full", "appropriated but unknown whether full-year or CR", "open, unknown capacity", "cr or full"},
	ContRes:        {"cont_res", "continuing resolution", "open with limitations", "cr"},
	ApropsGap:      {"approps_gap", "no appropriations", "minimally open", "appropriations gap"},
	Shutdown:       {"shutdown", "no appropriations and shutdown", "shutdown", "shutdown"},
	FutureUnknown:  {"future_unknown", "future status unknown", "future status unknown", "future"},
}

func (s DeptStatus) Variant() string  { return statusInfoTable[s].variant }
func (s DeptStatus) Approps() string  { return statusInfoTable[s].approps }
func (s DeptStatus) Ops() string      { return statusInfoTable[s].ops }
func (s DeptStatus) Simple() string   { return statusInfoTable[s].simple }
func (s DeptStatus) Ordinal() int     { return int(s) }

func (s DeptStatus) String() string {
	info, ok := statusInfoTable[s]
	if !ok {
		return fmt.Sprintf("DeptStatus(%d)", int(s))
	}
	return info.variant
}

// IsFunded reports whether s represents an open department (full, CR, or
// ambiguous-but-open).
func (s DeptStatus) IsFunded() bool {
	return s == FullApprops || s == ContRes || s == ApropsCROrFull
}

// IsUnfunded reports whether s represents a funding gap or shutdown.
func (s DeptStatus) IsUnfunded() bool {
	return s == ApropsGap || s == Shutdown
}

// allStatuses lists every DeptStatus for reverse-lookup iteration, in a
// fixed order independent of map iteration order.
var allStatuses = []DeptStatus{FullApprops, ApropsCROrFull, ContRes, ApropsGap, Shutdown, FutureUnknown}

// datasetCodeTable maps the dataset's short wire codes (§6: "FA", "CR",
// "GAP", "SDN", "ND", "FUT") to DeptStatus values.
var datasetCodeTable = map[string]DeptStatus{
	"FA":  FullApprops,
	"ND":  ApropsCROrFull,
	"CR":  ContRes,
	"GAP": ApropsGap,
	"SDN": Shutdown,
	"FUT": FutureUnknown,
}

// DeptStatusFromCode parses the dataset's short status code.
func DeptStatusFromCode(code string) (DeptStatus, error) {
	s, ok := datasetCodeTable[code]
	if !ok {
		return 0, newError(ErrParse, fmt.Sprintf("unrecognized status code %q", code))
	}
	return s, nil
}

func DeptStatusByVariant(s string) (DeptStatus, error) {
	for _, status := range allStatuses {
		if statusInfoTable[status].variant == s {
			return status, nil
		}
	}
	return 0, newError(ErrShape, fmt.Sprintf("no status with variant %q", s))
}

func DeptStatusByApprops(s string) (DeptStatus, error) {
	for _, status := range allStatuses {
		if statusInfoTable[status].approps == s {
			return status, nil
		}
	}
	return 0, newError(ErrShape, fmt.Sprintf("no status with approps projection %q", s))
}

func DeptStatusByOps(s string) (DeptStatus, error) {
	for _, status := range allStatuses {
		if statusInfoTable[status].ops == s {
			return status, nil
		}
	}
	return 0, newError(ErrShape, fmt.Sprintf("no status with ops projection %q", s))
}

func DeptStatusBySimple(s string) (DeptStatus, error) {
	for _, status := range allStatuses {
		if statusInfoTable[status].simple == s {
			return status, nil
		}
	}
	return 0, newError(ErrShape, fmt.Sprintf("no status with simple projection %q", s))
}

// DeptStatusByOrdinal reverse-looks-up a DeptStatus from its ord value.
func DeptStatusByOrdinal(ord int) (DeptStatus, error) {
	for _, status := range allStatuses {
		if int(status) == ord {
			return status, nil
		}
	}
	return 0, newError(ErrShape, fmt.Sprintf("no status with ordinal %d", ord))
}

// CRDataCutoff is the date before which the historical dataset cannot
// distinguish "fully appropriated" from "continuing resolution"; periods
// before this are recorded with ApropsCROrFull.
var CRDataCutoff = mustDate(1998, 10, 1)
