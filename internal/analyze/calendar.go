package analyze

import (
	"math"
	"time"
)

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// longestStreak counts the longest run of days each one calendar day after
// the previous. days must be sorted and distinct.
func longestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}
	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			current++
			longest = max(longest, current)
		} else {
			current = 1
		}
	}
	return longest
}

// consistency is active days as a percentage of the chat's span in whole
// days (rounded up), capped at 100. A span shorter than one day means every
// message fell on the only active day, which is 100.
func consistency(totalDays int, first, last time.Time) int {
	span := math.Ceil(last.Sub(first).Abs().Hours() / 24)
	if span < 1 {
		return 100
	}
	pct := math.Round(float64(totalDays) / span * 100)
	return int(math.Min(pct, 100))
}
