package conflicts

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Booking times arrive as free-form strings typed by the musician, so both
// "2:30pm" and "14:30" styles have to be accepted. The two formats are kept
// as separate branches rather than one permissive pattern so the edge cases
// stay auditable.
var (
	twelveHourPattern     = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*([ap])\.?m\.?$`)
	twentyFourHourPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)
)

// parseTimeOfDay parses a free-form time-of-day string and anchors it to the
// calendar date of base. Seconds and below are zeroed. The second return
// value is false when the string is not a recognizable time; parsing never
// panics on any input.
func parseTimeOfDay(raw string, base time.Time) (time.Time, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return time.Time{}, false
	}

	if m := twelveHourPattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return time.Time{}, false
		}
		// 12am is midnight, 12pm is noon
		if hour == 12 {
			hour = 0
		}
		if m[3] == "p" {
			hour += 12
		}
		return atTimeOfDay(base, hour, minute), true
	}

	if m := twentyFourHourPattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return time.Time{}, false
		}
		return atTimeOfDay(base, hour, minute), true
	}

	return time.Time{}, false
}

// atTimeOfDay combines the calendar date of base with the given hour and
// minute in base's location.
func atTimeOfDay(base time.Time, hour, minute int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
}

// sameCalendarDay compares two timestamps with date-only semantics.
func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
