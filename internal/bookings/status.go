package bookings

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusConfirmed  Status = "confirmed"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusRejected   Status = "rejected"
)

// IsValid checks if the booking status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the booking still occupies the performer's
// calendar. The conflict engine only considers active bookings.
func (s Status) IsActive() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return false
	}
	return true
}

// IsTerminal reports whether the status ends the booking lifecycle.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo checks whether the lifecycle allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusNew:
		return next == StatusInProgress || next == StatusConfirmed || next == StatusRejected || next == StatusCancelled
	case StatusInProgress:
		return next == StatusConfirmed || next == StatusRejected || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}
