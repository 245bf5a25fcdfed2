package offset

import "testing"

func TestCivPaydayKnownDates(t *testing.T) {
	c := NewCivilianPayday()

	if !c.IsPayday(date(1970, 1, 2)) {
		t.Error("1970-01-02 is the civilian pay anchor and should be a payday")
	}
	if !c.IsPayday(date(1970, 1, 16)) {
		t.Error("1970-01-16 is one cycle after the anchor and should be a payday")
	}
	if c.IsPayday(date(1970, 1, 9)) {
		t.Error("1970-01-09 falls on the off week and should not be a payday")
	}
}

func TestCivPaydayOnlyFallsOnFridays(t *testing.T) {
	c := NewCivilianPayday()
	for d := date(1970, 1, 1); d.Before(date(1970, 3, 1)); d = d.AddDays(1) {
		if c.IsPayday(d) && d.Weekday() != 4 {
			t.Fatalf("%s is marked a payday but is not a Friday", d)
		}
	}
}

func TestCivPaydayFourteenDayCadence(t *testing.T) {
	c := NewCivilianPayday()
	paydays := c.Paydays(date(1970, 1, 1), date(1970, 6, 1))
	for i := 1; i < len(paydays); i++ {
		if paydays[i].DaysSince(paydays[i-1]) != 14 {
			t.Fatalf("consecutive paydays %s, %s are not 14 days apart", paydays[i-1], paydays[i])
		}
	}
}

func TestCivPaydayRollAndShift(t *testing.T) {
	c := NewCivilianPayday()
	anchor := date(1970, 1, 2)
	if !c.RollBack(anchor).Equal(anchor) || !c.RollForward(anchor).Equal(anchor) {
		t.Error("rolling a payday itself should be a no-op")
	}
	next := c.Shift(anchor, 1)
	if !next.Equal(date(1970, 1, 16)) {
		t.Errorf("Shift(anchor, 1) = %s, want 1970-01-16", next)
	}
	prev := c.Shift(date(1970, 1, 16), -1)
	if !prev.Equal(anchor) {
		t.Errorf("Shift(1970-01-16, -1) = %s, want %s", prev, anchor)
	}
}
