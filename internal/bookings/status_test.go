package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	valid := []Status{StatusNew, StatusInProgress, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}

	assert.False(t, Status("").IsValid())
	assert.False(t, Status("CONFIRMED").IsValid(), "statuses are lowercase")
	assert.False(t, Status("pending").IsValid())
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, StatusNew.IsActive())
	assert.True(t, StatusInProgress.IsActive())
	assert.True(t, StatusConfirmed.IsActive())

	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusRejected.IsActive())
}

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusNew, StatusInProgress, true},
		{StatusNew, StatusConfirmed, true},
		{StatusNew, StatusRejected, true},
		{StatusNew, StatusCompleted, false},
		{StatusInProgress, StatusConfirmed, true},
		{StatusInProgress, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNew, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusRejected, StatusNew, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
