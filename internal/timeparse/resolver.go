// Package timeparse resolves the time a chat message refers to.
//
// Three strategies are tried in order: explicit numeric dates and clock
// times, relative offsets, and finally a natural-language parser. The first
// one to produce an instant strictly after the reference time wins. A
// resolver never returns a past or present instant; it returns nothing.
package timeparse

import (
	"log/slog"
	"strings"
	"time"

	"github.com/samber/mo"

	"github.com/alechenninger/remindr/internal/domain"
)

// Strategy is one way of reading a time out of lower-cased text.
type Strategy func(text string, now time.Time) mo.Option[time.Time]

type namedStrategy struct {
	name    string
	resolve Strategy
}

// Resolver runs its strategies in order against a single reading of Clock.
type Resolver struct {
	Clock      domain.Clock
	strategies []namedStrategy
}

// New returns a resolver using the exact, offset and fuzzy strategies, in
// that order. The natural-language parser backs the fuzzy strategy.
func New(nl NaturalLanguage) *Resolver {
	fuzzy := Fuzzy{Dates: nl, Times: nl}
	return &Resolver{
		Clock: domain.RealClock{},
		strategies: []namedStrategy{
			{name: "exact", resolve: Exact},
			{name: "offset", resolve: Offset},
			{name: "fuzzy", resolve: fuzzy.Resolve},
		},
	}
}

// Resolve reads the clock once and resolves text against it.
func (r *Resolver) Resolve(text string) mo.Option[time.Time] {
	return r.ResolveAt(text, r.Clock.Now())
}

// ResolveAt resolves text against now. It is a pure function of its inputs.
func (r *Resolver) ResolveAt(text string, now time.Time) mo.Option[time.Time] {
	text = strings.ToLower(text)
	for _, s := range r.strategies {
		if t, ok := s.resolve(text, now).Get(); ok {
			slog.Debug("time resolved", "strategy", s.name, "at", t)
			return mo.Some(t)
		}
	}
	slog.Debug("no time found", "text", text)
	return mo.None[time.Time]()
}

var _ domain.TimeResolver = (*Resolver)(nil)
