package conflicts

import (
	"fmt"
	"time"
)

// defaultSetLength is assumed when a booking has a start time but no end
// time. Two hours is the usual length of a live performance and must not
// be made configurable: the booking UI and the contract templates rely on
// the same assumption.
const defaultSetLength = 2 * time.Hour

// DetectConflict checks a single pair of bookings for a scheduling clash.
// It always returns a structured Result and never panics: missing dates and
// unparseable times degrade to a "none" result, a missing start time on a
// shared date degrades to a warning. Callers rendering a musician's schedule
// must never crash because one record carries an odd time string.
func DetectConflict(a, b BookingInfo) Result {
	if a.EventDate == nil || b.EventDate == nil {
		return noConflict(a, b)
	}

	if !sameCalendarDay(*a.EventDate, *b.EventDate) {
		return noConflict(a, b)
	}

	// Same calendar date. Without both start times there is nothing to
	// compare, but absence of information is not absence of a clash.
	if a.EventTime == "" || b.EventTime == "" {
		return Result{
			HasConflict: true,
			Severity:    SeverityWarning,
			Type:        TypeSameDay,
			Message:     "Same day booking - times not specified",
			Details:     Details{Booking1: a, Booking2: b},
		}
	}

	startA, okA := parseTimeOfDay(a.EventTime, *a.EventDate)
	startB, okB := parseTimeOfDay(b.EventTime, *b.EventDate)
	if !okA || !okB {
		// Unparseable times are treated like absent data: no sound
		// comparison is possible.
		return noConflict(a, b)
	}

	endA := endOrDefault(a.EventEndTime, *a.EventDate, startA)
	endB := endOrDefault(b.EventEndTime, *b.EventDate, startB)

	overlap := overlapMinutes(startA, endA, startB, endB)
	if overlap > 0 {
		return Result{
			HasConflict: true,
			Severity:    SeverityCritical,
			Type:        TypeTimeOverlap,
			Message:     fmt.Sprintf("Time overlap conflict - bookings overlap by %d minutes", overlap),
			Details:     Details{Booking1: a, Booking2: b, OverlapMinutes: &overlap},
		}
	}

	return Result{
		HasConflict: true,
		Severity:    SeverityWarning,
		Type:        TypeSameDay,
		Message:     "Same day booking - no time overlap",
		Details:     Details{Booking1: a, Booking2: b},
	}
}

// DetectAllConflicts runs the pairwise check over every unordered pair of
// active bookings and returns the pairs that conflict, in input order. The
// scan is deliberately O(n²): a single musician's active booking count is
// tens, not thousands, so no interval indexing is warranted.
func DetectAllConflicts(bookings []BookingInfo) []Result {
	active := make([]BookingInfo, 0, len(bookings))
	for _, b := range bookings {
		if IsActiveStatus(b.Status) {
			active = append(active, b)
		}
	}

	results := make([]Result, 0)
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			if r := DetectConflict(active[i], active[j]); r.HasConflict {
				results = append(results, r)
			}
		}
	}
	return results
}

// endOrDefault resolves a booking's end of performance: the parsed end time
// when present and recognizable, otherwise start plus the default set length.
func endOrDefault(rawEnd string, date, start time.Time) time.Time {
	if rawEnd != "" {
		if end, ok := parseTimeOfDay(rawEnd, date); ok {
			return end
		}
	}
	return start.Add(defaultSetLength)
}

// overlapMinutes computes the overlap of two [start, end) intervals in whole
// minutes, clamped at zero. Intervals that merely touch do not overlap.
func overlapMinutes(start1, end1, start2, end2 time.Time) int {
	latestStart := start1
	if start2.After(latestStart) {
		latestStart = start2
	}
	earliestEnd := end1
	if end2.Before(earliestEnd) {
		earliestEnd = end2
	}
	if !earliestEnd.After(latestStart) {
		return 0
	}
	return int(earliestEnd.Sub(latestStart).Round(time.Minute) / time.Minute)
}

func noConflict(a, b BookingInfo) Result {
	return Result{
		Severity: SeverityNone,
		Type:     TypeNone,
		Message:  "No conflict detected",
		Details:  Details{Booking1: a, Booking2: b},
	}
}
