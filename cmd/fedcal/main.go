// Command fedcal is a CLI over the fedcal-go engine: holiday/business-day
// status, paydays, fiscal-period labels, and department appropriations
// status for a date or a date range. Grounded on cmd/goholidays/main.go's
// flag-driven dispatch and table/json/csv output shape.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	fedcal "github.com/coredds/fedcal-go"
	"github.com/coredds/fedcal-go/config"
	"github.com/coredds/fedcal-go/holiday"
	"github.com/coredds/fedcal-go/offset"
	"github.com/coredds/fedcal-go/status"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		dateStr    = flag.String("date", "", "Date to inspect, YYYY-MM-DD (default: today)")
		rangeStr   = flag.String("range", "", "Date range \"start,end\" (YYYY-MM-DD,YYYY-MM-DD)")
		showStatus = flag.Bool("status", false, "Show department appropriations status")
		deptFlag   = flag.String("dept", "", "Restrict single-date -status output to one department abbreviation (e.g. DHS); ignored with -range")
		showFY     = flag.Bool("fy", false, "Include fiscal year/quarter labels")
		format     = flag.String("format", "", "Output format: table, json, csv (default from config)")
		version    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		fmt.Printf("fedcal-go CLI v%s\n", fedcal.Version)
		return
	}

	cfg := config.DefaultConfigManager.GetConfig()
	configureLogging(cfg.Logging)

	out := *format
	if out == "" {
		out = cfg.CLI.DefaultFormat
	}

	cal := holiday.NewCalendar()
	biz := offset.NewBusinessDay(cal)
	civ := offset.NewCivilianPayday()
	mil := offset.NewMilitaryPayday(biz)
	pass, err := offset.NewPassDay(cal, biz, offset.DefaultPassdayMap)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build pass-day offset")
	}

	idx, err := loadStatusIndex(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load status dataset")
	}

	env := &env{cal: cal, biz: biz, civ: civ, mil: mil, pass: pass, idx: idx, format: out, showFY: showFY != nil && *showFY}

	var dept fedcal.Department
	hasDept := false
	if *deptFlag != "" {
		dept, err = fedcal.DepartmentByAbbreviation(*deptFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		hasDept = true
	}

	switch {
	case *rangeStr != "":
		start, end, err := parseRange(*rangeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if *showStatus {
			env.printStatusOverRange(start, end)
		} else {
			env.printDayInfoRange(start, end)
		}
	case *showStatus:
		d, err := parseDateOrToday(*dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if hasDept {
			env.printDeptStatus(dept, d)
		} else {
			env.printStatusAt(d)
		}
	default:
		d, err := parseDateOrToday(*dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		env.printDayInfo(d)
	}
}

func configureLogging(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if strings.ToLower(cfg.Format) == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func loadStatusIndex(cfg *config.Config) (*status.Index, error) {
	if cfg.Dataset.UseEmbedded {
		return status.LoadDefault()
	}
	data, err := os.ReadFile(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	return status.Load(data)
}

func parseDateOrToday(s string) (fedcal.Date, error) {
	if s == "" {
		return fedcal.MustToDate(time.Now()), nil
	}
	return fedcal.ToDate(s)
}

func parseRange(s string) (fedcal.Date, fedcal.Date, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return fedcal.Date{}, fedcal.Date{}, fmt.Errorf("range must be \"start,end\", got %q", s)
	}
	start, err := fedcal.ToDate(strings.TrimSpace(parts[0]))
	if err != nil {
		return fedcal.Date{}, fedcal.Date{}, err
	}
	end, err := fedcal.ToDate(strings.TrimSpace(parts[1]))
	if err != nil {
		return fedcal.Date{}, fedcal.Date{}, err
	}
	return start, end, nil
}

// env bundles the constructed offsets/store so the print* helpers don't
// repeat the same argument list.
type env struct {
	cal    *holiday.Calendar
	biz    *offset.BusinessDay
	civ    *offset.CivilianPayday
	mil    *offset.MilitaryPayday
	pass   *offset.PassDay
	idx    *status.Index
	format string
	showFY bool
}

type dayInfo struct {
	Date          string `json:"date"`
	Weekday       string `json:"weekday"`
	IsHoliday     bool   `json:"is_holiday"`
	HolidayName   string `json:"holiday_name,omitempty"`
	IsBusinessDay bool   `json:"is_business_day"`
	IsCivPayday   bool   `json:"is_civilian_payday"`
	IsMilPayday   bool   `json:"is_military_payday"`
	IsPassDay     bool   `json:"is_pass_day"`
	FiscalLabel   string `json:"fiscal_label,omitempty"`
}

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (e *env) buildDayInfo(d fedcal.Date) dayInfo {
	name, _ := e.cal.NameOn(d)
	info := dayInfo{
		Date:          d.String(),
		Weekday:       weekdayNames[d.Weekday()],
		IsHoliday:     e.cal.IsHoliday(d),
		HolidayName:   name,
		IsBusinessDay: e.biz.IsBusinessDay(d),
		IsCivPayday:   e.civ.IsPayday(d),
		IsMilPayday:   e.mil.IsPayday(d),
		IsPassDay:     e.pass.IsPassDay(d),
	}
	if e.showFY {
		info.FiscalLabel = fedcal.FYFQLabel(d)
	}
	return info
}

func (e *env) printDayInfo(d fedcal.Date) {
	info := e.buildDayInfo(d)
	switch e.format {
	case "json":
		json.NewEncoder(os.Stdout).Encode(info)
	case "csv":
		fmt.Println("date,weekday,is_holiday,holiday_name,is_business_day,is_civ_payday,is_mil_payday,is_pass_day,fiscal_label")
		printDayInfoCSV(info)
	default:
		fmt.Printf("%s (%s)\n", info.Date, info.Weekday)
		if info.IsHoliday {
			fmt.Printf("  holiday:        %s\n", info.HolidayName)
		}
		fmt.Printf("  business day:   %v\n", info.IsBusinessDay)
		fmt.Printf("  civ payday:     %v\n", info.IsCivPayday)
		fmt.Printf("  mil payday:     %v\n", info.IsMilPayday)
		fmt.Printf("  pass day:       %v\n", info.IsPassDay)
		if info.FiscalLabel != "" {
			fmt.Printf("  fiscal period:  %s\n", info.FiscalLabel)
		}
	}
}

func printDayInfoCSV(info dayInfo) {
	fmt.Printf("%s,%s,%v,%s,%v,%v,%v,%v,%s\n",
		info.Date, info.Weekday, info.IsHoliday, info.HolidayName,
		info.IsBusinessDay, info.IsCivPayday, info.IsMilPayday, info.IsPassDay, info.FiscalLabel)
}

func (e *env) printDayInfoRange(start, end fedcal.Date) {
	var infos []dayInfo
	for d := start; !d.After(end); d = d.AddDays(1) {
		infos = append(infos, e.buildDayInfo(d))
	}
	switch e.format {
	case "json":
		json.NewEncoder(os.Stdout).Encode(infos)
	case "csv":
		fmt.Println("date,weekday,is_holiday,holiday_name,is_business_day,is_civ_payday,is_mil_payday,is_pass_day,fiscal_label")
		for _, info := range infos {
			printDayInfoCSV(info)
		}
	default:
		fmt.Printf("%-12s %-10s %-8s %-8s %-8s %-8s %-30s\n", "Date", "Weekday", "BizDay", "CivPay", "MilPay", "PassDay", "Holiday")
		fmt.Println(strings.Repeat("-", 90))
		for _, info := range infos {
			fmt.Printf("%-12s %-10s %-8v %-8v %-8v %-8v %-30s\n",
				info.Date, info.Weekday, info.IsBusinessDay, info.IsCivPayday, info.IsMilPayday, info.IsPassDay, info.HolidayName)
		}
	}
}

func (e *env) printStatusAt(d fedcal.Date) {
	m, err := status.StatusAtDate(e.idx, d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	printStatusMap(d, m, e.format)
}

func (e *env) printDeptStatus(dept fedcal.Department, d fedcal.Date) {
	s, err := e.idx.StatusAt(dept, d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	switch e.format {
	case "json":
		json.NewEncoder(os.Stdout).Encode(map[string]string{
			"date":       d.String(),
			"department": dept.Abbreviation(),
			"status":     s.Variant(),
		})
	case "csv":
		fmt.Println("date,department,status")
		fmt.Printf("%s,%s,%s\n", d.String(), dept.Abbreviation(), s.Variant())
	default:
		fmt.Printf("%s: %s is %s\n", d.String(), dept.FullName(), s.Approps())
	}
}

func printStatusMap(d fedcal.Date, m status.StatusMap, format string) {
	depts := make([]fedcal.Department, 0, len(m))
	for dept := range m {
		depts = append(depts, dept)
	}
	sort.Slice(depts, func(i, j int) bool { return depts[i] < depts[j] })

	switch format {
	case "json":
		out := map[string]string{}
		for _, dept := range depts {
			out[dept.Abbreviation()] = m[dept].Variant()
		}
		json.NewEncoder(os.Stdout).Encode(map[string]interface{}{"date": d.String(), "status": out})
	case "csv":
		fmt.Println("date,department,status")
		for _, dept := range depts {
			fmt.Printf("%s,%s,%s\n", d.String(), dept.Abbreviation(), m[dept].Variant())
		}
	default:
		fmt.Printf("Status on %s:\n\n", d.String())
		fmt.Printf("%-6s %-40s %-12s\n", "Dept", "Name", "Status")
		fmt.Println(strings.Repeat("-", 60))
		for _, dept := range depts {
			fmt.Printf("%-6s %-40s %-12s\n", dept.Abbreviation(), dept.ShortName(), m[dept].Variant())
		}
		fmt.Printf("\nany shutdown: %v   all funded: %v\n", m.AnyShutdown(), m.AllFunded())
	}
}

func (e *env) printStatusOverRange(start, end fedcal.Date) {
	snapshots, err := status.StatusOverRange(e.idx, start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	switch e.format {
	case "json":
		json.NewEncoder(os.Stdout).Encode(snapshots)
	default:
		for _, snap := range snapshots {
			fmt.Printf("=== %s ===\n", snap.Date.String())
			printStatusMap(snap.Date, snap.Status, e.format)
			fmt.Println()
		}
	}
}
