package attendance

import (
	"testing"
	"time"
)

func mustParseClock(t *testing.T, s string) time.Duration {
	t.Helper()
	d, err := ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", s, err)
	}
	return d
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input string
		want  time.Duration
	}{
		{"00:00:00", 0},
		{"09:15:00", 9*time.Hour + 15*time.Minute},
		{"23:59:59", 23*time.Hour + 59*time.Minute + 59*time.Second},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if err != nil {
			t.Errorf("ParseClock(%q) error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %v, want %v", c.input, got, c.want)
		}
	}

	invalid := []string{"24:00:00", "09:15", "", "9:15:00 AM"}
	for _, s := range invalid {
		if _, err := ParseClock(s); err == nil {
			t.Errorf("ParseClock(%q) succeeded, want error", s)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		input time.Duration
		want  string
	}{
		{0, "00:00:00"},
		{15 * time.Minute, "00:15:00"},
		{8*time.Hour + 15*time.Minute, "08:15:00"},
		{-5 * time.Minute, "00:00:00"}, // clamped
		{25 * time.Hour, "25:00:00"},   // totals may exceed one day
	}
	for _, c := range cases {
		if got := FormatClock(c.input); got != c.want {
			t.Errorf("FormatClock(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

// Late arrival then late departure: in at 09:15 against a 09:00 start is 15
// minutes late; out at 17:30 yields 8h15m worked and 15 minutes overtime
// over an 8h standard shift.
func TestLateArrivalWithOvertime(t *testing.T) {
	shiftStart := mustParseClock(t, "09:00:00")
	shiftEnd := mustParseClock(t, "17:00:00")
	standard := 8 * time.Hour

	in := mustParseClock(t, "09:15:00")
	if got := FormatClock(LateBy(in, shiftStart)); got != "00:15:00" {
		t.Errorf("late = %q, want 00:15:00", got)
	}

	out := mustParseClock(t, "17:30:00")
	raw := WorkedBetween(in, out)
	net := NetWork(raw, 0)
	if got := FormatClock(net); got != "08:15:00" {
		t.Errorf("total_work = %q, want 08:15:00", got)
	}
	if got := FormatClock(OvertimeOver(net, standard)); got != "00:15:00" {
		t.Errorf("overtime = %q, want 00:15:00", got)
	}
	if got := FormatClock(EarlyLeavingBy(out, shiftEnd)); got != "00:00:00" {
		t.Errorf("early_leaving = %q, want 00:00:00", got)
	}
}

// Early arrival then early departure: in at 08:50 is not late; out at 16:40
// is 20 minutes early with 7h50m worked and no overtime.
func TestEarlyDeparture(t *testing.T) {
	shiftStart := mustParseClock(t, "09:00:00")
	shiftEnd := mustParseClock(t, "17:00:00")
	standard := 8 * time.Hour

	in := mustParseClock(t, "08:50:00")
	if got := FormatClock(LateBy(in, shiftStart)); got != "00:00:00" {
		t.Errorf("late = %q, want 00:00:00", got)
	}

	out := mustParseClock(t, "16:40:00")
	if got := FormatClock(EarlyLeavingBy(out, shiftEnd)); got != "00:20:00" {
		t.Errorf("early_leaving = %q, want 00:20:00", got)
	}

	net := NetWork(WorkedBetween(in, out), 0)
	if got := FormatClock(net); got != "07:50:00" {
		t.Errorf("total_work = %q, want 07:50:00", got)
	}
	if got := FormatClock(OvertimeOver(net, standard)); got != "00:00:00" {
		t.Errorf("overtime = %q, want 00:00:00", got)
	}
}

// A night shift from 22:00 to 06:00 crosses midnight and still counts 8
// hours, not a negative span.
func TestMidnightCrossing(t *testing.T) {
	in := mustParseClock(t, "22:00:00")
	out := mustParseClock(t, "06:00:00")

	raw := WorkedBetween(in, out)
	if raw != 8*time.Hour {
		t.Errorf("raw work = %v, want 8h", raw)
	}
	if got := FormatClock(raw); got != "08:00:00" {
		t.Errorf("total_work = %q, want 08:00:00", got)
	}
}

func TestNetWorkSubtractsRest(t *testing.T) {
	in := mustParseClock(t, "09:00:00")
	out := mustParseClock(t, "18:00:00")
	rest := mustParseClock(t, "01:00:00")

	net := NetWork(WorkedBetween(in, out), rest)
	if got := FormatClock(net); got != "08:00:00" {
		t.Errorf("total_work = %q, want 08:00:00", got)
	}

	// Rest exceeding the raw span floors at zero rather than going negative.
	excessive := 10 * time.Hour
	if got := NetWork(WorkedBetween(in, out), excessive); got != 0 {
		t.Errorf("net work with excessive rest = %v, want 0", got)
	}
}

func TestTimeOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 15, 30, 0, time.UTC)
	want := 9*time.Hour + 15*time.Minute + 30*time.Second
	if got := TimeOfDay(ts); got != want {
		t.Errorf("TimeOfDay = %v, want %v", got, want)
	}
}
