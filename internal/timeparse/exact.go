package timeparse

import (
	"regexp"
	"strconv"
	"time"

	"github.com/samber/mo"
)

// At most one separator between numeric date groups: / - space . _ \ or none.
const dateSep = `[/\- ._\\]?`

var (
	yearMonthDayRe  = regexp.MustCompile(`(\d{4})` + dateSep + `(\d{2})` + dateSep + `(\d{2})`)
	monthDayYearRe  = regexp.MustCompile(`(\d{2})` + dateSep + `(\d{2})` + dateSep + `(\d{4})`)
	ambiguousDateRe = regexp.MustCompile(`(\d{2})` + dateSep + `(\d{2})` + dateSep + `(\d{2})`)
	monthDayRe      = regexp.MustCompile(`(\d{2})` + dateSep + `(\d{2})`)

	meridiemClockRe = regexp.MustCompile(`(\d{1}|\d{2}):(\d{2})\s*(a\.?m?\.?|p\.?m?\.?)`)
	clockRe         = regexp.MustCompile(`(\d{1}|\d{2}):(\d{2})`)
)

// yearOmittedShift is added to a month-day that already passed this year.
// It is a flat 365 days, not a calendar year.
const yearOmittedShift = 365 * 24 * time.Hour

// Exact resolves explicit numeric dates ("2024-06-15", "06/15/2024",
// "240615", "06.15") optionally paired with clock times ("7:30pm",
// "19:30"). Text must already be lower case. It fails when no date is
// present, even if a time is.
func Exact(text string, now time.Time) mo.Option[time.Time] {
	dates := extractDates(text, now)
	if len(dates) == 0 {
		return mo.None[time.Time]()
	}
	times := extractTimes(text)
	if len(times) == 0 {
		times = []TimeCandidate{TimeOf(now)}
	}

	for _, d := range dates {
		for _, tc := range times {
			if t := d.At(tc, now.Location()); t.After(now) {
				return mo.Some(t)
			}
		}
	}
	return mo.None[time.Time]()
}

func extractDates(text string, now time.Time) []DateCandidate {
	var dates []DateCandidate
	add := func(y, m, d int) {
		if dc, ok := newDate(y, m, d); ok {
			dates = append(dates, dc)
		}
	}

	for _, g := range findInts(yearMonthDayRe, text) {
		add(g[0], g[1], g[2])
	}
	for _, g := range findInts(monthDayYearRe, text) {
		add(g[2], g[0], g[1])
	}
	for _, g := range findInts(ambiguousDateRe, text) {
		switch {
		case g[0] > 12 || g[0] == 0:
			add(2000+g[0], g[1], g[2])
		case g[1] > 12 || g[1] == 0:
			add(2000+g[2], g[0], g[1])
		default:
			// both readings are plausible; refuse to guess
		}
	}

	today := DateOf(now)
	for _, g := range findInts(monthDayRe, text) {
		dc, ok := newDate(now.Year(), g[0], g[1])
		if !ok {
			continue
		}
		if dc.Before(today) {
			dc = DateOf(dc.At(Midnight, time.UTC).Add(yearOmittedShift))
		}
		dates = append(dates, dc)
	}
	return dates
}

func extractTimes(text string) []TimeCandidate {
	var times []TimeCandidate

	for _, m := range meridiemClockRe.FindAllStringSubmatch(text, -1) {
		h, err := strconv.Atoi(m[1])
		if err != nil || h >= 12 {
			continue
		}
		if m[3][0] == 'p' {
			h += 12
		}
		minute, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if tc, ok := newTime(h, minute); ok {
			times = append(times, tc)
		}
	}

	for _, g := range findInts(clockRe, text) {
		if tc, ok := newTime(g[0], g[1]); ok {
			times = append(times, tc)
		}
	}
	return times
}

// findInts returns the integer value of every capture group for each match
// of re, skipping matches with a group that does not parse.
func findInts(re *regexp.Regexp, text string) [][]int {
	var out [][]int
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		groups := make([]int, 0, len(m)-1)
		for _, s := range m[1:] {
			n, err := strconv.Atoi(s)
			if err != nil {
				break
			}
			groups = append(groups, n)
		}
		if len(groups) == len(m)-1 {
			out = append(out, groups)
		}
	}
	return out
}
