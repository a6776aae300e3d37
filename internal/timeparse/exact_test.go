package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, h, minute int) time.Time {
	return time.Date(y, m, d, h, minute, 0, 0, time.UTC)
}

func TestExact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		now  time.Time
		want time.Time
	}{
		{
			name: "year first with 24 hour clock",
			text: "remind me 2024-06-15 at 18:30",
			now:  at(2024, 6, 1, 10, 0),
			want: at(2024, 6, 15, 18, 30),
		},
		{
			name: "month day year with pm marker",
			text: "meeting 06/15/2024 7:30pm",
			now:  at(2024, 6, 1, 10, 0),
			want: at(2024, 6, 15, 19, 30),
		},
		{
			name: "dotted year first with a.m. marker",
			text: "2024.07.04 9:05 a.m.",
			now:  at(2024, 6, 1, 10, 0),
			want: at(2024, 7, 4, 9, 5),
		},
		{
			name: "compact year first pair",
			text: "241231",
			now:  at(2024, 6, 1, 10, 0),
			want: at(2024, 12, 31, 10, 0),
		},
		{
			name: "compact year last pair",
			text: "12_31_24",
			now:  at(2024, 6, 1, 10, 0),
			want: at(2024, 12, 31, 10, 0),
		},
		{
			name: "twelve with pm is read as a literal clock",
			text: "2024-06-15 12:30pm",
			now:  at(2024, 6, 1, 10, 0),
			want: at(2024, 6, 15, 12, 30),
		},
		{
			name: "first future combination wins",
			text: "2024-06-01 8:00 or 2024-06-01 23:00",
			now:  at(2024, 6, 1, 10, 0),
			want: at(2024, 6, 1, 23, 0),
		},
		{
			name: "month day later this year",
			text: "12-25",
			now:  at(2024, 1, 1, 0, 0),
			want: at(2024, 12, 25, 0, 0),
		},
		{
			name: "month day already passed shifts 365 days",
			text: "12-25",
			now:  at(2024, 12, 26, 0, 0),
			want: at(2025, 12, 25, 0, 0),
		},
		{
			// 2024-02-10 plus 365 days lands one day short of the anniversary
			// because of 2024-02-29.
			name: "month day shift ignores leap day",
			text: "02-10",
			now:  at(2024, 3, 1, 9, 0),
			want: at(2025, 2, 9, 9, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Exact(tt.text, tt.now).Get()
			require.True(t, ok, "expected a time for %q", tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExactFails(t *testing.T) {
	t.Parallel()

	now := at(2024, 6, 1, 10, 0)
	tests := []struct {
		name string
		text string
	}{
		{name: "time without date", text: "at 7:30pm"},
		{name: "no digits", text: "sometime soon"},
		{name: "today at the current clock is not in the future", text: "06-01"},
		{name: "year 2000 date is in the past", text: "001231"},
		{name: "invalid calendar date", text: "2024-02-30"},
		{name: "every combination is past", text: "2023-06-01 9:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, Exact(tt.text, now).IsAbsent(), "unexpected time for %q", tt.text)
		})
	}
}

func TestAmbiguousDateIsDropped(t *testing.T) {
	t.Parallel()

	// 01-02-03 could be 2001-02-03 or 2003-01-02. Only the month-day
	// reading "01-02" survives, shifted past the current date.
	dates := extractDates("01-02-03", at(2024, 6, 1, 10, 0))
	assert.Equal(t, []DateCandidate{{Year: 2025, Month: time.January, Day: 1}}, dates)
}

func TestExtractTimesOrder(t *testing.T) {
	t.Parallel()

	times := extractTimes("7:30pm")
	assert.Equal(t, []TimeCandidate{{Hour: 19, Minute: 30}, {Hour: 7, Minute: 30}}, times)

	times = extractTimes("25:00 and 9:75")
	assert.Empty(t, times)
}
