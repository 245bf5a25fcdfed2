package fedcal

import (
	"testing"
)

func TestDateFromYMDRoundTrip(t *testing.T) {
	cases := []struct {
		y, m, d int
	}{
		{1970, 1, 1},
		{2024, 1, 1},
		{2024, 2, 29}, // leap day
		{2199, 12, 31},
	}
	for _, c := range cases {
		d, err := DateFromYMD(c.y, c.m, c.d)
		if err != nil {
			t.Fatalf("DateFromYMD(%d,%d,%d): %v", c.y, c.m, c.d, err)
		}
		gotY, gotM, gotD := d.Decompose()
		if gotY != c.y || gotM != c.m || gotD != c.d {
			t.Errorf("round trip mismatch: got (%d,%d,%d), want (%d,%d,%d)", gotY, gotM, gotD, c.y, c.m, c.d)
		}
	}
}

func TestDateFromYMDRejectsInvalidCalendarDates(t *testing.T) {
	if _, err := DateFromYMD(2023, 2, 29); err == nil {
		t.Error("2023-02-29 is not a leap day and should be rejected")
	}
	if _, err := DateFromYMD(2024, 13, 1); err == nil {
		t.Error("month 13 should be rejected")
	}
}

func TestDateFromYMDRejectsOutOfRange(t *testing.T) {
	if _, err := DateFromYMD(1969, 12, 31); err == nil {
		t.Error("1969-12-31 is before the epoch floor and should be rejected")
	}
	if _, err := DateFromYMD(2200, 1, 1); err == nil {
		t.Error("2200-01-01 is past the supported ceiling and should be rejected")
	}
}

func TestToDateIdempotence(t *testing.T) {
	d, err := DateFromYMD(2024, 6, 15)
	if err != nil {
		t.Fatal(err)
	}
	again, err := ToDate(d)
	if err != nil {
		t.Fatal(err)
	}
	if !again.Equal(d) {
		t.Error("to_date(to_date(d)) should equal to_date(d)")
	}
}

func TestToDateStringFormats(t *testing.T) {
	want, _ := DateFromYMD(2024, 3, 14)
	cases := []string{"2024-03-14", "03/14/2024", "03-14-2024", "14/03/2024", "14-03-2024"}
	for _, s := range cases {
		got, err := ToDate(s)
		if err != nil {
			t.Errorf("ToDate(%q): %v", s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ToDate(%q) = %s, want %s", s, got, want)
		}
	}
}

func TestToDateIntHeuristic(t *testing.T) {
	// Day-count branch: |v| < 86400.
	d, err := ToDate(1)
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 1970 || d.Month() != 1 || d.Day() != 2 {
		t.Errorf("ToDate(1) = %s, want 1970-01-02", d)
	}

	// Seconds branch.
	d, err = ToDate(int64(86400))
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 1970 || d.Month() != 1 || d.Day() != 2 {
		t.Errorf("ToDate(86400) = %s, want 1970-01-02", d)
	}

	// Nanoseconds branch at the 2200 boundary.
	d, err = ToDate(secondsAt2200)
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 1970 {
		t.Errorf("ToDate(secondsAt2200) = %s, expected the nanosecond interpretation to land near the epoch", d)
	}
}

func TestWeekdayKnownAnchors(t *testing.T) {
	// 1970-01-01 was a Thursday; Monday=0..Sunday=6, so Thursday=3.
	if MinDate.Weekday() != 3 {
		t.Errorf("epoch weekday = %d, want 3 (Thursday)", MinDate.Weekday())
	}
	d, _ := DateFromYMD(2024, 1, 1) // a Monday
	if d.Weekday() != 0 {
		t.Errorf("2024-01-01 weekday = %d, want 0 (Monday)", d.Weekday())
	}
}

func TestAddDaysAndDaysSince(t *testing.T) {
	start, _ := DateFromYMD(2024, 1, 1)
	end := start.AddDays(30)
	if end.DaysSince(start) != 30 {
		t.Errorf("DaysSince = %d, want 30", end.DaysSince(start))
	}
	if !start.Before(end) || !end.After(start) {
		t.Error("Before/After should be consistent with AddDays")
	}
}

func TestToDateArrayRangeExpansion(t *testing.T) {
	start, _ := DateFromYMD(2024, 1, 1)
	end, _ := DateFromYMD(2024, 1, 5)
	arr, err := ToDateArray([2]any{start, end})
	if err != nil {
		t.Fatal(err)
	}
	if len(arr) != 5 {
		t.Fatalf("len(arr) = %d, want 5", len(arr))
	}
	for i, d := range arr {
		if d.DaysSince(start) != i {
			t.Errorf("arr[%d] = %s, want day offset %d", i, d, i)
		}
	}
}

func TestToDateArrayRejectsEmptySlice(t *testing.T) {
	if _, err := ToDateArray([]any{}); err == nil {
		t.Error("an empty []any should be rejected with ShapeError")
	}
}
