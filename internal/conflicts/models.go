package conflicts

import "time"

// Severity classifies how serious a detected conflict is
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Type classifies what kind of clash was found
type Type string

const (
	TypeNone        Type = "none"
	TypeSameDay     Type = "same_day"
	TypeTimeOverlap Type = "time_overlap"
)

// BookingInfo is a read-only projection of a booking record. The engine
// never mutates it and keeps no state between calls.
type BookingInfo struct {
	ID           int        `json:"id"`
	ClientName   string     `json:"client_name"`
	EventDate    *time.Time `json:"event_date"`
	EventTime    string     `json:"event_time,omitempty"`
	EventEndTime string     `json:"event_end_time,omitempty"`
	Venue        string     `json:"venue,omitempty"`
	Status       string     `json:"status"`
}

// Details carries the two contributing bookings of a pairwise check.
// OverlapMinutes is only set when a numeric overlap was computed.
type Details struct {
	Booking1       BookingInfo `json:"booking1"`
	Booking2       BookingInfo `json:"booking2"`
	OverlapMinutes *int        `json:"overlap_minutes,omitempty"`
}

// Result is the outcome of a pairwise conflict check. Results are built
// fresh on every invocation and are not persisted by this package.
type Result struct {
	HasConflict bool     `json:"has_conflict"`
	Severity    Severity `json:"severity"`
	Type        Type     `json:"type"`
	Message     string   `json:"message"`
	Details     Details  `json:"details"`
}

// Booking statuses that no longer occupy the performer's calendar and are
// therefore skipped by DetectAllConflicts.
const (
	statusRejected  = "rejected"
	statusCancelled = "cancelled"
	statusCompleted = "completed"
)

// IsActiveStatus reports whether a booking with the given status still
// represents a live commitment of the performer's time.
func IsActiveStatus(status string) bool {
	switch status {
	case statusRejected, statusCancelled, statusCompleted:
		return false
	}
	return true
}
