package conflicts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      string
		wantOK     bool
		wantHour   int
		wantMinute int
	}{
		{name: "24h with minutes", input: "14:30", wantOK: true, wantHour: 14, wantMinute: 30},
		{name: "24h single digit hour", input: "9:05", wantOK: true, wantHour: 9, wantMinute: 5},
		{name: "24h with seconds dropped", input: "14:30:45", wantOK: true, wantHour: 14, wantMinute: 30},
		{name: "24h midnight", input: "0:00", wantOK: true, wantHour: 0, wantMinute: 0},
		{name: "12h pm with minutes", input: "2:30pm", wantOK: true, wantHour: 14, wantMinute: 30},
		{name: "12h pm without minutes", input: "2pm", wantOK: true, wantHour: 14, wantMinute: 0},
		{name: "12h am", input: "9:15am", wantOK: true, wantHour: 9, wantMinute: 15},
		{name: "12h uppercase with space", input: "2:30 PM", wantOK: true, wantHour: 14, wantMinute: 30},
		{name: "12h dotted suffix", input: "7:45 p.m.", wantOK: true, wantHour: 19, wantMinute: 45},
		{name: "noon is hour 12", input: "12:00pm", wantOK: true, wantHour: 12, wantMinute: 0},
		{name: "midnight is hour 0", input: "12:00am", wantOK: true, wantHour: 0, wantMinute: 0},
		{name: "leading and trailing space", input: "  18:00  ", wantOK: true, wantHour: 18, wantMinute: 0},

		{name: "hour out of range", input: "25:00", wantOK: false},
		{name: "minute out of range", input: "14:75", wantOK: false},
		{name: "12h hour zero", input: "0pm", wantOK: false},
		{name: "12h hour thirteen", input: "13pm", wantOK: false},
		{name: "empty string", input: "", wantOK: false},
		{name: "whitespace only", input: "   ", wantOK: false},
		{name: "prose", input: "afternoon", wantOK: false},
		{name: "bare number", input: "14", wantOK: false},
		{name: "negative hour", input: "-2:00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseTimeOfDay(tt.input, base)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantHour, got.Hour())
			assert.Equal(t, tt.wantMinute, got.Minute())
			assert.Equal(t, 0, got.Second())
			assert.Equal(t, 0, got.Nanosecond())
		})
	}
}

func TestParseTimeOfDayAnchorsToBaseDate(t *testing.T) {
	base := time.Date(2025, 12, 31, 23, 59, 59, 123, time.UTC)

	got, ok := parseTimeOfDay("8:00pm", base)
	require.True(t, ok)

	assert.Equal(t, time.Date(2025, 12, 31, 20, 0, 0, 0, time.UTC), got)
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	night := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, sameCalendarDay(morning, night))
	assert.False(t, sameCalendarDay(night, nextDay))
}
