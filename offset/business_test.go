package offset

import (
	"testing"

	fedcal "github.com/coredds/fedcal-go"
	"github.com/coredds/fedcal-go/holiday"
)

func date(y, m, d int) fedcal.Date {
	dt, err := fedcal.DateFromYMD(y, m, d)
	if err != nil {
		panic(err)
	}
	return dt
}

func TestIsBusinessDay(t *testing.T) {
	biz := NewBusinessDay(holiday.NewCalendar())

	if biz.IsBusinessDay(date(2024, 1, 1)) {
		t.Error("New Year's Day 2024 (a Monday) should not be a business day")
	}
	if !biz.IsBusinessDay(date(2024, 1, 2)) {
		t.Error("2024-01-02 (Tuesday, no holiday) should be a business day")
	}
	if biz.IsBusinessDay(date(2024, 1, 6)) {
		t.Error("Saturday should not be a business day")
	}
}

func TestRollForwardFromHoliday(t *testing.T) {
	biz := NewBusinessDay(holiday.NewCalendar())
	got := biz.RollForward(date(2024, 1, 1))
	if got.Day() != 2 || got.Month() != 1 {
		t.Errorf("RollForward(2024-01-01) = %s, want 2024-01-02", got)
	}
}

func TestRollPropertiesForBusinessDays(t *testing.T) {
	biz := NewBusinessDay(holiday.NewCalendar())
	onOffset := date(2024, 3, 5) // a plain Tuesday
	if !biz.RollBack(onOffset).Equal(onOffset) || !biz.RollForward(onOffset).Equal(onOffset) {
		t.Error("rolling an on-offset day should be a no-op in both directions")
	}

	offOffset := date(2024, 1, 1)
	back, fwd := biz.RollBack(offOffset), biz.RollForward(offOffset)
	if !back.Before(offOffset) || !offOffset.Before(fwd) {
		t.Error("rolling an off-offset day should move strictly outward in both directions")
	}
	if !biz.IsBusinessDay(back) || !biz.IsBusinessDay(fwd) {
		t.Error("both roll results should themselves be business days")
	}
}

func TestShiftExcludesStartDay(t *testing.T) {
	biz := NewBusinessDay(holiday.NewCalendar())
	monday := date(2024, 3, 4)
	got := biz.Shift(monday, 1)
	want := date(2024, 3, 5)
	if !got.Equal(want) {
		t.Errorf("Shift(Monday, 1) = %s, want %s", got, want)
	}
}

func TestNewBusinessDayWithWeekmaskRejectsEmpty(t *testing.T) {
	if _, err := NewBusinessDayWithWeekmask(holiday.NewCalendar(), nil); err == nil {
		t.Error("an empty weekmask should be rejected with InvalidConfig")
	}
}

func TestBusinessDaysBetween(t *testing.T) {
	biz := NewBusinessDay(holiday.NewCalendar())
	// Mon 3/4 .. Fri 3/8, 2024: 5 business days, no holidays that week.
	days := biz.BusinessDays(date(2024, 3, 4), date(2024, 3, 8))
	if len(days) != 5 {
		t.Errorf("BusinessDays(Mon..Fri) = %d days, want 5", len(days))
	}
}
