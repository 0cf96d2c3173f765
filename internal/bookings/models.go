package bookings

import (
	"time"

	"github.com/google/uuid"

	"musobuddy/internal/conflicts"
)

// Booking is a performance engagement on a musician's calendar, from first
// enquiry through to completion. EventTime and EventEndTime are stored as
// free-form strings exactly as the musician typed them ("7:30pm", "19:30");
// the conflicts package owns their interpretation.
type Booking struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingNumber int        `gorm:"type:serial;uniqueIndex" json:"booking_number"`
	UserID        uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	ClientID      *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ClientName    string     `gorm:"not null" json:"client_name"`
	Title         string     `json:"title"`
	EventDate     *time.Time `gorm:"type:date;index" json:"event_date,omitempty"`
	EventTime     string     `gorm:"type:varchar(20)" json:"event_time,omitempty"`
	EventEndTime  string     `gorm:"type:varchar(20)" json:"event_end_time,omitempty"`
	Venue         string     `json:"venue,omitempty"`
	VenueAddress  string     `json:"venue_address,omitempty"`
	Fee           float64    `json:"fee"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	Status        Status     `gorm:"type:varchar(20);default:'new';index" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// IsActive reports whether the booking still occupies the musician's calendar.
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// ToConflictInfo projects the booking into the read-only view the conflict
// engine consumes.
func (b *Booking) ToConflictInfo() conflicts.BookingInfo {
	return conflicts.BookingInfo{
		ID:           b.BookingNumber,
		ClientName:   b.ClientName,
		EventDate:    b.EventDate,
		EventTime:    b.EventTime,
		EventEndTime: b.EventEndTime,
		Venue:        b.Venue,
		Status:       b.Status.String(),
	}
}
