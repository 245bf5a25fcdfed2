// Package status loads the per-department appropriations/operational status
// dataset, indexes it for point and range lookup, and aggregates it across
// the department set. Grounded on the lazy, process-wide immutable
// construction pattern in holiday.Calendar, generalized from "one holiday
// set" to "one sorted interval array per department".
package status

import (
	"embed"
	"encoding/json"
	"fmt"

	fedcal "github.com/coredds/fedcal-go"
	"github.com/rs/zerolog/log"
)

//go:embed data/status.json
var defaultDatasetFS embed.FS

// StatusInterval is one (date interval, department, status) record from the
// dataset, per spec.md §4.8.
type StatusInterval struct {
	Start      fedcal.Date
	End        fedcal.Date
	Department fedcal.Department
	Status     fedcal.DeptStatus
}

// rawRecord mirrors the dataset's wire shape from spec.md §6.
type rawRecord struct {
	Interval struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"interval"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// departmentCodes maps the dataset's department wire codes to Department.
// These are independent of Department.Abbreviation()'s display casing
// (e.g. "DoC"); the dataset uses the all-caps variant names from spec.md §6.
var departmentCodes = map[string]fedcal.Department{
	"DHS":  fedcal.DHS,
	"DOC":  fedcal.DoC,
	"DOD":  fedcal.DoD,
	"DOE":  fedcal.DoE,
	"DOI":  fedcal.DoI,
	"DOJ":  fedcal.DoJ,
	"DOL":  fedcal.DoL,
	"DOS":  fedcal.DoS,
	"DOT":  fedcal.DoT,
	"ED":   fedcal.ED,
	"HHS":  fedcal.HHS,
	"HUD":  fedcal.HUD,
	"IA":   fedcal.IA,
	"PRES": fedcal.PRES,
	"USDA": fedcal.USDA,
	"USDT": fedcal.USDT,
	"VA":   fedcal.VA,
}

func departmentFromCode(code string) (fedcal.Department, error) {
	d, ok := departmentCodes[code]
	if !ok {
		return 0, fedcal.NewDatasetInvariantError(fmt.Sprintf("unrecognized department code %q", code))
	}
	return d, nil
}

// parseRecords decodes the dataset's JSON wire format into StatusInterval
// values, without yet validating coverage invariants.
func parseRecords(data []byte) ([]StatusInterval, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fedcal.NewDatasetInvariantError("status dataset is not valid JSON")
	}
	out := make([]StatusInterval, 0, len(raw))
	for _, r := range raw {
		start, err := fedcal.ToDate(r.Interval.Start)
		if err != nil {
			return nil, fedcal.NewDatasetInvariantError(fmt.Sprintf("invalid interval start %q", r.Interval.Start))
		}
		end, err := fedcal.ToDate(r.Interval.End)
		if err != nil {
			return nil, fedcal.NewDatasetInvariantError(fmt.Sprintf("invalid interval end %q", r.Interval.End))
		}
		dept, err := departmentFromCode(r.Department)
		if err != nil {
			return nil, err
		}
		stat, err := fedcal.DeptStatusFromCode(r.Status)
		if err != nil {
			return nil, fedcal.NewDatasetInvariantError(fmt.Sprintf("unrecognized status code %q", r.Status))
		}
		out = append(out, StatusInterval{Start: start, End: end, Department: dept, Status: stat})
	}
	return out, nil
}

// LoadDefault parses the dataset embedded at build time and builds an Index.
func LoadDefault() (*Index, error) {
	data, err := defaultDatasetFS.ReadFile("data/status.json")
	if err != nil {
		return nil, fedcal.NewDatasetInvariantError("embedded status dataset is missing")
	}
	return Load(data)
}

// Load parses and indexes an externally supplied dataset, per the config
// package's dataset-path override.
func Load(data []byte) (*Index, error) {
	records, err := parseRecords(data)
	if err != nil {
		return nil, err
	}
	idx, err := newIndex(records)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("record_count", len(records)).Msg("status dataset loaded")
	return idx, nil
}
