// Package whenparse adapts github.com/olebedev/when to the natural-language
// capabilities used by the fuzzy time strategy.
package whenparse

import (
	"log/slog"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/samber/mo"

	"github.com/alechenninger/remindr/internal/timeparse"
)

// Parser answers date and time questions with two when parsers: one with
// every English and common rule for the calendar day, and one limited to
// clock rules so that a match always means a time was actually named.
type Parser struct {
	dates *when.Parser
	times *when.Parser
}

func New() *Parser {
	dates := when.New(nil)
	dates.Add(en.All...)
	dates.Add(common.All...)

	times := when.New(nil)
	times.Add(
		en.HourMinute(rules.Override),
		en.Hour(rules.Override),
		en.CasualTime(rules.Override),
	)
	return &Parser{dates: dates, times: times}
}

func (p *Parser) ExtractDate(text string, now time.Time) mo.Option[timeparse.DateCandidate] {
	r, ok := parse(p.dates, text, now).Get()
	if !ok {
		return mo.None[timeparse.DateCandidate]()
	}
	return mo.Some(timeparse.DateOf(r.Time))
}

func (p *Parser) ExtractTime(text string, now time.Time) mo.Option[timeparse.TimeCandidate] {
	r, ok := parse(p.times, text, now).Get()
	if !ok {
		return mo.None[timeparse.TimeCandidate]()
	}
	tc := timeparse.TimeOf(r.Time)
	tc.Nanosecond = 0
	return mo.Some(tc)
}

func parse(w *when.Parser, text string, now time.Time) mo.Option[*when.Result] {
	r, err := w.Parse(text, now)
	if err != nil {
		slog.Debug("natural language parse failed", "error", err)
		return mo.None[*when.Result]()
	}
	if r == nil {
		return mo.None[*when.Result]()
	}
	return mo.Some(r)
}

var _ timeparse.NaturalLanguage = (*Parser)(nil)
