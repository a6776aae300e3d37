package timeparse

import "time"

// Fixed approximations; months, years and longer units are not calendar aware.
const (
	Month   = 4 * 7 * 24 * time.Hour
	Year    = 365 * 24 * time.Hour
	Decade  = 10 * Year
	Century = 100 * Year
)

// timescales maps every accepted unit spelling to its duration.
//
// "minaltatitatude" is an accepted alias for minute with no known origin.
// Keep the spelling exactly as is.
var timescales = map[string]time.Duration{
	"millisecond":  time.Millisecond,
	"milliseconds": time.Millisecond,

	"second":  time.Second,
	"seconds": time.Second,
	"sec":     time.Second,
	"secs":    time.Second,

	"minute":          time.Minute,
	"minutes":         time.Minute,
	"min":             time.Minute,
	"mins":            time.Minute,
	"minaltatitatude": time.Minute,

	"hour":  time.Hour,
	"hours": time.Hour,

	"day":  24 * time.Hour,
	"days": 24 * time.Hour,

	"week":  7 * 24 * time.Hour,
	"weeks": 7 * 24 * time.Hour,

	"month":  Month,
	"months": Month,

	"year":  Year,
	"years": Year,

	"decade":  Decade,
	"decades": Decade,

	"century":   Century,
	"centuries": Century,
}

// TimeScale returns the duration of one unit named by token.
func TimeScale(token string) (time.Duration, bool) {
	d, ok := timescales[token]
	return d, ok
}
