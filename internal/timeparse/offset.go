package timeparse

import (
	"regexp"
	"strconv"
	"time"

	"github.com/samber/mo"
)

var (
	// "3 days", "10mins", "2 centuries from now"
	numericOffsetRe = regexp.MustCompile(`(\d+)\s?(\S+)`)
	// "next week"
	nextOffsetRe = regexp.MustCompile(`next\s(\S+)`)
)

// Offset resolves relative expressions such as "in 3 days" or "next week"
// against now. The first candidate strictly after now wins, scanning
// numeric offsets before "next <unit>".
func Offset(text string, now time.Time) mo.Option[time.Time] {
	var candidates []time.Time

	for _, m := range numericOffsetRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.ParseInt(m[1], 10, 32)
		if err != nil {
			continue
		}
		unit, ok := TimeScale(m[2])
		if !ok {
			continue
		}
		c, ok := wallAdd(now, unit, n)
		if !ok {
			continue
		}
		candidates = append(candidates, c)
	}

	for _, m := range nextOffsetRe.FindAllStringSubmatch(text, -1) {
		unit, ok := TimeScale(m[1])
		if !ok {
			continue
		}
		if c, ok := wallAdd(now, unit, 1); ok {
			candidates = append(candidates, c)
		}
	}

	for _, c := range candidates {
		if c.After(now) {
			return mo.Some(c)
		}
	}
	return mo.None[time.Time]()
}

const day = 24 * time.Hour

// maxOffsetDays bounds offsets to roughly 262,000 years.
const maxOffsetDays = 262143 * 365

// wallAdd adds n units to the wall-clock reading of now in its own zone, so
// "in 1 day" keeps the hour across a daylight saving change. Units of a day
// or more are counted in whole days.
func wallAdd(now time.Time, unit time.Duration, n int64) (time.Time, bool) {
	var days int64
	var rest time.Duration
	if unit >= day {
		days = n * int64(unit/day)
	} else {
		perDay := int64(day / unit)
		days = n / perDay
		rest = unit * time.Duration(n%perDay)
	}
	if days > maxOffsetDays {
		return time.Time{}, false
	}
	wall := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
	wall = wall.AddDate(0, 0, int(days)).Add(rest)
	return time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), now.Location()), true
}
