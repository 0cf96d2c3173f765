package clients

import (
	"time"

	"github.com/google/uuid"
)

// Client is an address-book entry: the person or organisation that books
// the musician. Bookings and contracts reference clients for pre-filling
// names and delivery emails.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Client
func (Client) TableName() string {
	return "clients"
}
