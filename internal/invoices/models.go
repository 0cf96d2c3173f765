package invoices

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is a billing record for a booking. Payment collection happens
// outside the system; the invoice only tracks what was asked for and
// whether the musician marked it paid.
type Invoice struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	InvoiceNumber int        `gorm:"type:serial;uniqueIndex" json:"invoice_number"`
	UserID        uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	BookingID     *uuid.UUID `gorm:"type:uuid;index" json:"booking_id,omitempty"`
	ClientName    string     `gorm:"not null" json:"client_name"`
	ClientEmail   string     `json:"client_email,omitempty"`
	Amount        float64    `json:"amount"`
	DueDate       *time.Time `gorm:"type:date;index" json:"due_date,omitempty"`
	Status        Status     `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName sets the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
