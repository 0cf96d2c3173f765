package conflicts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func booking(id int, date *time.Time, start, end string) BookingInfo {
	return BookingInfo{
		ID:           id,
		ClientName:   "Client",
		EventDate:    date,
		EventTime:    start,
		EventEndTime: end,
		Status:       "confirmed",
	}
}

func TestDetectConflictMissingDate(t *testing.T) {
	withDate := booking(1, datePtr(2025, 6, 1), "14:00", "")
	noDate := booking(2, nil, "15:00", "")

	for _, pair := range [][2]BookingInfo{
		{withDate, noDate},
		{noDate, withDate},
		{noDate, noDate},
	} {
		result := DetectConflict(pair[0], pair[1])
		assert.False(t, result.HasConflict)
		assert.Equal(t, SeverityNone, result.Severity)
		assert.Equal(t, TypeNone, result.Type)
	}
}

func TestDetectConflictDifferentDates(t *testing.T) {
	a := booking(1, datePtr(2025, 6, 1), "14:00", "")
	b := booking(2, datePtr(2025, 6, 2), "14:00", "")

	result := DetectConflict(a, b)

	assert.False(t, result.HasConflict)
	assert.Equal(t, SeverityNone, result.Severity)
	assert.Equal(t, TypeNone, result.Type)
}

func TestDetectConflictDefaultEndTimeOverlap(t *testing.T) {
	// A runs 14:00-16:00 by the two hour default, B runs 15:00-17:00:
	// they overlap 15:00-16:00.
	a := booking(1, datePtr(2025, 6, 1), "14:00", "")
	b := booking(2, datePtr(2025, 6, 1), "15:00", "")

	result := DetectConflict(a, b)

	assert.True(t, result.HasConflict)
	assert.Equal(t, SeverityCritical, result.Severity)
	assert.Equal(t, TypeTimeOverlap, result.Type)
	require.NotNil(t, result.Details.OverlapMinutes)
	assert.Equal(t, 60, *result.Details.OverlapMinutes)
	assert.Contains(t, result.Message, "60 minutes")
}

func TestDetectConflictAdjacentBookings(t *testing.T) {
	// Back-to-back bookings share the day but not a single minute.
	a := booking(1, datePtr(2025, 6, 1), "10:00", "12:00")
	b := booking(2, datePtr(2025, 6, 1), "12:00", "14:00")

	result := DetectConflict(a, b)

	assert.True(t, result.HasConflict)
	assert.Equal(t, SeverityWarning, result.Severity)
	assert.Equal(t, TypeSameDay, result.Type)
	assert.Equal(t, "Same day booking - no time overlap", result.Message)
	assert.Nil(t, result.Details.OverlapMinutes)
}

func TestDetectConflictMissingStartTime(t *testing.T) {
	a := booking(1, datePtr(2025, 6, 1), "", "")
	b := booking(2, datePtr(2025, 6, 1), "18:00", "")

	result := DetectConflict(a, b)

	assert.True(t, result.HasConflict)
	assert.Equal(t, SeverityWarning, result.Severity)
	assert.Equal(t, TypeSameDay, result.Type)
	assert.Equal(t, "Same day booking - times not specified", result.Message)
}

func TestDetectConflictUnparseableTime(t *testing.T) {
	tests := []struct {
		name  string
		timeA string
		timeB string
	}{
		{name: "hour out of range", timeA: "25:00", timeB: "14:00"},
		{name: "minute out of range", timeA: "14:00", timeB: "14:75"},
		{name: "prose time", timeA: "after lunch", timeB: "14:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := booking(1, datePtr(2025, 6, 1), tt.timeA, "")
			b := booking(2, datePtr(2025, 6, 1), tt.timeB, "")

			result := DetectConflict(a, b)

			assert.False(t, result.HasConflict)
			assert.Equal(t, SeverityNone, result.Severity)
			assert.Equal(t, TypeNone, result.Type)
		})
	}
}

func TestDetectConflictUnparseableEndTimeFallsBackToDefault(t *testing.T) {
	// A bad end time is treated like an absent one: start + 2 hours.
	a := booking(1, datePtr(2025, 6, 1), "14:00", "garbage")
	b := booking(2, datePtr(2025, 6, 1), "15:30", "")

	result := DetectConflict(a, b)

	assert.True(t, result.HasConflict)
	assert.Equal(t, SeverityCritical, result.Severity)
	require.NotNil(t, result.Details.OverlapMinutes)
	assert.Equal(t, 30, *result.Details.OverlapMinutes)
}

func TestDetectConflictMixedTimeFormats(t *testing.T) {
	a := booking(1, datePtr(2025, 6, 1), "2:30pm", "4:30 PM")
	b := booking(2, datePtr(2025, 6, 1), "16:00", "18:00")

	result := DetectConflict(a, b)

	assert.True(t, result.HasConflict)
	assert.Equal(t, SeverityCritical, result.Severity)
	require.NotNil(t, result.Details.OverlapMinutes)
	assert.Equal(t, 30, *result.Details.OverlapMinutes)
}

func TestDetectConflictSymmetry(t *testing.T) {
	pairs := [][2]BookingInfo{
		{booking(1, datePtr(2025, 6, 1), "14:00", ""), booking(2, datePtr(2025, 6, 1), "15:00", "")},
		{booking(1, datePtr(2025, 6, 1), "10:00", "12:00"), booking(2, datePtr(2025, 6, 1), "12:00", "14:00")},
		{booking(1, datePtr(2025, 6, 1), "", ""), booking(2, datePtr(2025, 6, 1), "18:00", "")},
		{booking(1, datePtr(2025, 6, 1), "14:00", ""), booking(2, datePtr(2025, 6, 2), "14:00", "")},
		{booking(1, datePtr(2025, 6, 1), "bad", ""), booking(2, datePtr(2025, 6, 1), "14:00", "")},
	}

	for _, pair := range pairs {
		forward := DetectConflict(pair[0], pair[1])
		reverse := DetectConflict(pair[1], pair[0])

		assert.Equal(t, forward.HasConflict, reverse.HasConflict)
		assert.Equal(t, forward.Severity, reverse.Severity)
		assert.Equal(t, forward.Type, reverse.Type)
		// Only the booking1/booking2 assignment swaps.
		assert.Equal(t, forward.Details.Booking1.ID, reverse.Details.Booking2.ID)
		assert.Equal(t, forward.Details.Booking2.ID, reverse.Details.Booking1.ID)
	}
}

func TestDetectConflictSelfComparison(t *testing.T) {
	// Identical input twice reports a full-duration overlap rather than
	// erroring out.
	a := booking(1, datePtr(2025, 6, 1), "14:00", "16:00")

	result := DetectConflict(a, a)

	assert.True(t, result.HasConflict)
	assert.Equal(t, SeverityCritical, result.Severity)
	assert.Equal(t, TypeTimeOverlap, result.Type)
	require.NotNil(t, result.Details.OverlapMinutes)
	assert.Equal(t, 120, *result.Details.OverlapMinutes)
}

func TestDetectAllConflictsEmptyAndSingle(t *testing.T) {
	assert.Empty(t, DetectAllConflicts(nil))
	assert.Empty(t, DetectAllConflicts([]BookingInfo{}))
	assert.Empty(t, DetectAllConflicts([]BookingInfo{booking(1, datePtr(2025, 6, 1), "14:00", "")}))
}

func TestDetectAllConflictsSkipsInactive(t *testing.T) {
	date := datePtr(2025, 6, 1)

	cancelled := booking(1, date, "14:00", "")
	cancelled.Status = "cancelled"
	rejected := booking(2, date, "14:30", "")
	rejected.Status = "rejected"
	completed := booking(3, date, "15:00", "")
	completed.Status = "completed"

	active1 := booking(4, date, "14:00", "")
	active2 := booking(5, date, "15:00", "")

	results := DetectAllConflicts([]BookingInfo{cancelled, rejected, completed, active1, active2})

	require.Len(t, results, 1)
	assert.Equal(t, 4, results[0].Details.Booking1.ID)
	assert.Equal(t, 5, results[0].Details.Booking2.ID)

	for _, r := range results {
		assert.True(t, IsActiveStatus(r.Details.Booking1.Status))
		assert.True(t, IsActiveStatus(r.Details.Booking2.Status))
	}
}

func TestDetectAllConflictsFiveBookingsTwoCancelled(t *testing.T) {
	date := datePtr(2025, 6, 1)

	a := booking(1, date, "10:00", "11:00")
	b := booking(2, date, "10:30", "12:00")
	c := booking(3, date, "20:00", "22:00")
	d := booking(4, date, "10:00", "23:00")
	d.Status = "cancelled"
	e := booking(5, date, "9:00", "23:00")
	e.Status = "cancelled"

	results := DetectAllConflicts([]BookingInfo{a, b, c, d, e})

	// Only pairs among the three active bookings are evaluated:
	// (a,b) overlap, (a,c) same day, (b,c) same day.
	require.Len(t, results, 3)
	assert.Equal(t, SeverityCritical, results[0].Severity)
	assert.Equal(t, SeverityWarning, results[1].Severity)
	assert.Equal(t, SeverityWarning, results[2].Severity)
}

func TestDetectAllConflictsIsRepeatable(t *testing.T) {
	date := datePtr(2025, 6, 1)
	input := []BookingInfo{
		booking(1, date, "14:00", ""),
		booking(2, date, "15:00", ""),
		booking(3, datePtr(2025, 6, 2), "15:00", ""),
	}

	first := DetectAllConflicts(input)
	second := DetectAllConflicts(input)

	assert.Equal(t, first, second)
}

func TestDetectAllConflictsDoesNotMutateInput(t *testing.T) {
	date := datePtr(2025, 6, 1)
	input := []BookingInfo{
		booking(1, date, "14:00", ""),
		booking(2, date, "15:00", ""),
	}
	snapshot := make([]BookingInfo, len(input))
	copy(snapshot, input)

	DetectAllConflicts(input)

	assert.Equal(t, snapshot, input)
}
