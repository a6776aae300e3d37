package timeparse

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNL struct {
	date mo.Option[DateCandidate]
	time mo.Option[TimeCandidate]
}

func (f fakeNL) ExtractDate(string, time.Time) mo.Option[DateCandidate] { return f.date }
func (f fakeNL) ExtractTime(string, time.Time) mo.Option[TimeCandidate] { return f.time }

func fuzzyWith(date mo.Option[DateCandidate], clock mo.Option[TimeCandidate]) Fuzzy {
	nl := fakeNL{date: date, time: clock}
	return Fuzzy{Dates: nl, Times: nl}
}

func TestFuzzy(t *testing.T) {
	t.Parallel()

	noDate := mo.None[DateCandidate]()
	noTime := mo.None[TimeCandidate]()

	tests := []struct {
		name  string
		date  mo.Option[DateCandidate]
		clock mo.Option[TimeCandidate]
		now   time.Time
		want  mo.Option[time.Time]
	}{
		{
			name:  "morning clock already passed moves to evening",
			date:  noDate,
			clock: mo.Some(TimeCandidate{Hour: 7, Minute: 30}),
			now:   at(2024, 6, 1, 14, 0),
			want:  mo.Some(at(2024, 6, 1, 19, 30)),
		},
		{
			name:  "corrected clock still passed does not roll over",
			date:  noDate,
			clock: mo.Some(TimeCandidate{Hour: 1}),
			now:   at(2024, 6, 1, 14, 0),
			want:  mo.None[time.Time](),
		},
		{
			name:  "afternoon clock already passed",
			date:  noDate,
			clock: mo.Some(TimeCandidate{Hour: 15}),
			now:   at(2024, 6, 1, 16, 0),
			want:  mo.None[time.Time](),
		},
		{
			name:  "later today",
			date:  noDate,
			clock: mo.Some(TimeCandidate{Hour: 15}),
			now:   at(2024, 6, 1, 14, 0),
			want:  mo.Some(at(2024, 6, 1, 15, 0)),
		},
		{
			name:  "date only defaults to midnight",
			date:  mo.Some(DateCandidate{Year: 2024, Month: time.June, Day: 2}),
			clock: noTime,
			now:   at(2024, 6, 1, 14, 0),
			want:  mo.Some(at(2024, 6, 2, 0, 0)),
		},
		{
			name:  "today only becomes noon",
			date:  mo.Some(DateCandidate{Year: 2024, Month: time.June, Day: 1}),
			clock: noTime,
			now:   at(2024, 6, 1, 10, 0),
			want:  mo.Some(at(2024, 6, 1, 12, 0)),
		},
		{
			name:  "date and time",
			date:  mo.Some(DateCandidate{Year: 2024, Month: time.June, Day: 3}),
			clock: mo.Some(TimeCandidate{Hour: 8, Minute: 15}),
			now:   at(2024, 6, 1, 10, 0),
			want:  mo.Some(at(2024, 6, 3, 8, 15)),
		},
		{
			name:  "exactly now is not in the future",
			date:  noDate,
			clock: mo.Some(TimeCandidate{Hour: 14}),
			now:   at(2024, 6, 1, 14, 0),
			want:  mo.None[time.Time](),
		},
		{
			name:  "nothing found",
			date:  noDate,
			clock: noTime,
			now:   at(2024, 6, 1, 14, 0),
			want:  mo.None[time.Time](),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fuzzyWith(tt.date, tt.clock).Resolve("ignored", tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuzzyEveningCorrectionUsesWallClock(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// Clocks sprang forward at 02:00; 01:00 was still EST.
	now := time.Date(2024, 3, 10, 3, 30, 0, 0, ny)

	got, ok := fuzzyWith(mo.None[DateCandidate](), mo.Some(TimeCandidate{Hour: 1})).Resolve("ignored", now).Get()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 10, 13, 0, 0, 0, ny), got)
}
