// Package banter holds the small chat games: coin flips and calling out
// message IDs that end in a run of repeated digits.
package banter

import "math/rand/v2"

// Flip tosses a fair coin.
func Flip(r *rand.Rand) string {
	if r.IntN(2) == 0 {
		return "Heads"
	}
	return "Tails"
}

// RepeatedDigits is the length of the run of identical digits id ends in.
// Every id ends in a run of at least one.
func RepeatedDigits(id uint64) int {
	n := 0
	for {
		n++
		last := id % 10
		id /= 10
		if id == 0 || id%10 != last {
			return n
		}
	}
}

var checks = map[int]string{
	2: "dubs",
	3: "trips",
	4: "quads",
	5: "quints",
	6: "sexes",
}

// CheckEm names the reaction earned by id, if its trailing run is worth one.
// Runs longer than six go unremarked.
func CheckEm(id uint64) (string, bool) {
	name, ok := checks[RepeatedDigits(id)]
	return name, ok
}
