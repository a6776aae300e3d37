package timeparse

import "time"

// DateCandidate is a calendar day read from one grammar match. It is not yet
// known to produce a future timestamp.
type DateCandidate struct {
	Year  int
	Month time.Month
	Day   int
}

// TimeCandidate is a clock time read from one grammar match.
type TimeCandidate struct {
	Hour, Minute, Second, Nanosecond int
}

// Midnight is the time used when only a date is known.
var Midnight = TimeCandidate{}

var noon = TimeCandidate{Hour: 12}

// newDate validates y-m-d as a real calendar day.
func newDate(y int, m int, d int) (DateCandidate, bool) {
	if m < 1 || m > 12 || d < 1 {
		return DateCandidate{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return DateCandidate{}, false
	}
	return DateCandidate{Year: y, Month: time.Month(m), Day: d}, true
}

// newTime validates a 24-hour clock reading.
func newTime(h, m int) (TimeCandidate, bool) {
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeCandidate{}, false
	}
	return TimeCandidate{Hour: h, Minute: m}, true
}

// DateOf returns the calendar day of t.
func DateOf(t time.Time) DateCandidate {
	y, m, d := t.Date()
	return DateCandidate{Year: y, Month: m, Day: d}
}

// TimeOf returns the clock reading of t.
func TimeOf(t time.Time) TimeCandidate {
	return TimeCandidate{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

// At combines the date with a clock time in loc.
func (d DateCandidate) At(tc TimeCandidate, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, tc.Hour, tc.Minute, tc.Second, tc.Nanosecond, loc)
}

// Before reports whether d is an earlier day than o.
func (d DateCandidate) Before(o DateCandidate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Before reports whether tc is earlier in the day than o.
func (tc TimeCandidate) Before(o TimeCandidate) bool {
	if tc.Hour != o.Hour {
		return tc.Hour < o.Hour
	}
	if tc.Minute != o.Minute {
		return tc.Minute < o.Minute
	}
	if tc.Second != o.Second {
		return tc.Second < o.Second
	}
	return tc.Nanosecond < o.Nanosecond
}
