package attendance

import (
	"fmt"
	"time"
)

// ClockLayout is the wire format for time-of-day values.
const ClockLayout = "15:04:05"

// ZeroClock is the legacy sentinel emitted for unset time-of-day fields.
const ZeroClock = "00:00:00"

// ParseClock parses an HH:MM:SS time-of-day into a duration since midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// FormatClock renders a duration as HH:MM:SS. Durations of 24h or more keep
// accumulating hours (e.g. 25h -> "25:00:00"), which matters for aggregated
// totals.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// TimeOfDay extracts the HH:MM:SS portion of t as a duration since midnight.
func TimeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// LateBy returns how late a check-in at clockIn is against shiftStart.
// Checking in early is not negative lateness.
func LateBy(clockIn, shiftStart time.Duration) time.Duration {
	if clockIn <= shiftStart {
		return 0
	}
	return clockIn - shiftStart
}

// EarlyLeavingBy returns how early a check-out at clockOut is against
// shiftEnd. Leaving after shift end is not negative.
func EarlyLeavingBy(clockOut, shiftEnd time.Duration) time.Duration {
	if clockOut >= shiftEnd {
		return 0
	}
	return shiftEnd - clockOut
}

// WorkedBetween returns the raw span between check-in and check-out times of
// day. A check-out earlier than the check-in means the shift crossed
// midnight, so a single day is added.
func WorkedBetween(clockIn, clockOut time.Duration) time.Duration {
	raw := clockOut - clockIn
	if raw < 0 {
		raw += 24 * time.Hour
	}
	return raw
}

// NetWork subtracts recorded rest from the raw worked span, floored at zero.
func NetWork(raw, rest time.Duration) time.Duration {
	net := raw - rest
	if net < 0 {
		return 0
	}
	return net
}

// OvertimeOver returns net work beyond the standard shift length, floored at
// zero.
func OvertimeOver(net, standard time.Duration) time.Duration {
	if net <= standard {
		return 0
	}
	return net - standard
}
