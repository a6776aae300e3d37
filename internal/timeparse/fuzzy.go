package timeparse

import (
	"time"

	"github.com/samber/mo"
)

// DateExtractor finds a calendar day named anywhere in free text.
type DateExtractor interface {
	ExtractDate(text string, now time.Time) mo.Option[DateCandidate]
}

// TimeExtractor finds a clock time named anywhere in free text.
type TimeExtractor interface {
	ExtractTime(text string, now time.Time) mo.Option[TimeCandidate]
}

// NaturalLanguage is a parser that can do both.
type NaturalLanguage interface {
	DateExtractor
	TimeExtractor
}

// Fuzzy resolves free-form expressions through a natural-language parser.
type Fuzzy struct {
	Dates DateExtractor
	Times TimeExtractor
}

// Resolve combines whatever date and time the extractors find, defaulting
// to today and midnight. A result at or before now with a morning clock is
// moved 12 hours forward once on the wall clock, so "7:30" said in the
// afternoon means 19:30. There is no rollover to the next day.
func (f Fuzzy) Resolve(text string, now time.Time) mo.Option[time.Time] {
	date, hasDate := f.Dates.ExtractDate(text, now).Get()
	clock, hasTime := f.Times.ExtractTime(text, now).Get()
	if !hasDate && !hasTime {
		return mo.None[time.Time]()
	}
	if !hasDate {
		date = DateOf(now)
	}
	if !hasTime {
		clock = Midnight
	}

	t := date.At(clock, now.Location())
	if !t.After(now) && clock.Before(noon) {
		clock.Hour += 12
		t = date.At(clock, now.Location())
	}
	if !t.After(now) {
		return mo.None[time.Time]()
	}
	return mo.Some(t)
}
