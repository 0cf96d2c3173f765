package bookings

import "musobuddy/internal/conflicts"

// BookingListResponse is the paginated bookings payload
type BookingListResponse struct {
	Bookings   []Booking `json:"bookings"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}

// ConflictScanResponse is the payload of a full conflict scan over a
// musician's active bookings.
type ConflictScanResponse struct {
	Conflicts     []conflicts.Result `json:"conflicts"`
	ConflictCount int                `json:"conflict_count"`
	ScannedCount  int                `json:"scanned_count"`
}

// BookingConflictsResponse annotates a single booking with the conflicts it
// participates in; the UI renders these as badges on the booking card.
type BookingConflictsResponse struct {
	Booking   Booking            `json:"booking"`
	Conflicts []conflicts.Result `json:"conflicts"`
	Severity  conflicts.Severity `json:"severity"`
}
