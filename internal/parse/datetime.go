package parse

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// parseDateTime builds a timestamp from the date and time tokens of a line.
// Out-of-range fields (day 31 of February, 13 PM) are not rejected; they
// roll over the way time.Date normalises them.
func parseDateTime(dateTok, timeTok string) (time.Time, bool) {
	year, month, day, ok := resolveDate(dateTok)
	if !ok {
		return time.Time{}, false
	}
	hour, minute, sec, ok := resolveClock(timeTok)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC), true
}

// resolveDate reads D/M/Y when the first number cannot be a month and M/D/Y
// otherwise. Two-digit years are taken as 20YY.
func resolveDate(tok string) (year, month, day int, ok bool) {
	parts := strings.Split(strings.TrimSpace(tok), "/")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}

	if nums[0] > 12 {
		day, month = nums[0], nums[1]
	} else {
		month, day = nums[0], nums[1]
	}
	year = nums[2]
	if year < 100 {
		year += 2000
	}
	return year, month, day, true
}

func resolveClock(tok string) (hour, minute, sec int, ok bool) {
	clock := strings.TrimFunc(tok, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	hour, minute, sec = nums[0], nums[1], nums[2]

	lower := strings.ToLower(tok)
	if strings.Contains(lower, "pm") && hour != 12 {
		hour += 12
	} else if strings.Contains(lower, "am") && hour == 12 {
		hour = 0
	}
	return hour, minute, sec, true
}
