package fedcal

import "fmt"

// Department enumerates the 17 executive departments this engine tracks.
// Grounded on the Dept enum in original_source/fedcal/constants.py, which
// attaches the same three string projections to each member.
type Department int

const (
	DHS Department = iota
	DoC
	DoD
	DoE
	DoI
	DoJ
	DoL
	DoS
	DoT
	ED
	HHS
	HUD
	IA
	PRES
	USDA
	USDT
	VA
)

// AllDepartments lists every tracked department in enum declaration order.
var AllDepartments = []Department{
	DHS, DoC, DoD, DoE, DoI, DoJ, DoL, DoS, DoT, ED, HHS, HUD, IA, PRES, USDA, USDT, VA,
}

// DHSFormed is the date the Department of Homeland Security came into
// existence. Queries for dates before this must treat DHS as absent.
var DHSFormed = mustDate(2003, 11, 25)

type deptInfo struct {
	abbrev string
	full   string
	short  string
}

var departmentInfo = map[Department]deptInfo{
	DHS:  {"DHS", "Department of Homeland Security", "Homeland Security"},
	DoC:  {"DoC", "Department of Commerce", "Commerce"},
	DoD:  {"DoD", "Department of Defense", "Defense"},
	DoE:  {"DoE", "Department of Energy", "Energy"},
	DoI:  {"DoI", "Department of the Interior", "Interior"},
	DoJ:  {"DoJ", "Department of Justice", "Justice"},
	DoL:  {"DoL", "Department of Labor", "Labor"},
	DoS:  {"DoS", "Department of State", "State"},
	DoT:  {"DoT", "Department of Transportation", "Transportation"},
	ED:   {"ED", "Department of Education", "Education"},
	HHS:  {"HHS", "Department of Health and Human Services", "Health and Human Services"},
	HUD:  {"HUD", "Department of Housing and Urban Development", "Housing and Urban Development"},
	IA:   {"IA", "Independent Agencies", "Independent Agencies"},
	PRES: {"PRES", "Executive Office of the President", "Office of the President"},
	USDA: {"USDA", "Department of Agriculture", "Agriculture"},
	USDT: {"USDT", "Department of the Treasury", "Treasury"},
	VA:   {"VA", "Department of Veterans Affairs", "Veterans Affairs"},
}

// Abbreviation, FullName, and ShortName return the three string projections
// of a Department. They return the empty string for an out-of-range
// Department value, which can only happen by constructing a Department from
// an untyped int outside the declared constants.
func (d Department) Abbreviation() string { return departmentInfo[d].abbrev }
func (d Department) FullName() string     { return departmentInfo[d].full }
func (d Department) ShortName() string    { return departmentInfo[d].short }

// String implements fmt.Stringer as "<full name> (<abbreviation>)".
func (d Department) String() string {
	info, ok := departmentInfo[d]
	if !ok {
		return fmt.Sprintf("Department(%d)", int(d))
	}
	return fmt.Sprintf("%s (%s)", info.full, info.abbrev)
}

// ExistsOn reports whether the department existed as of Date d. Every
// department except DHS has always existed within the supported date range;
// DHS exists only on or after DHSFormed.
func (d Department) ExistsOn(date Date) bool {
	if d == DHS {
		return !date.Before(DHSFormed)
	}
	return true
}

// DepartmentByAbbreviation, DepartmentByFullName, and DepartmentByShortName
// reverse-lookup a Department from one of its string projections.
func DepartmentByAbbreviation(s string) (Department, error) {
	for dept, info := range departmentInfo {
		if info.abbrev == s {
			return dept, nil
		}
	}
	return 0, newError(ErrShape, fmt.Sprintf("no department with abbreviation %q", s))
}

func DepartmentByFullName(s string) (Department, error) {
	for dept, info := range departmentInfo {
		if info.full == s {
			return dept, nil
		}
	}
	return 0, newError(ErrShape, fmt.Sprintf("no department with full name %q", s))
}

func DepartmentByShortName(s string) (Department, error) {
	for dept, info := range departmentInfo {
		if info.short == s {
			return dept, nil
		}
	}
	return 0, newError(ErrShape, fmt.Sprintf("no department with short name %q", s))
}

func mustDate(y, m, d int) Date {
	date, err := DateFromYMD(y, m, d)
	if err != nil {
		panic(err)
	}
	return date
}
