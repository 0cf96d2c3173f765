package contracts

import (
	"time"

	"github.com/google/uuid"
)

// Contract is the e-sign record for a booking. There is no document
// rendering; the terms text plus the signature fields are the contract.
// SigningToken is the bearer credential for the public signing endpoint
// and is never serialized.
type Contract struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ContractNumber int        `gorm:"type:serial;uniqueIndex" json:"contract_number"`
	UserID         uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	BookingID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"booking_id"`
	ClientName     string     `gorm:"not null" json:"client_name"`
	ClientEmail    string     `json:"client_email,omitempty"`
	Terms          string     `gorm:"type:text" json:"terms,omitempty"`
	Fee            float64    `json:"fee"`
	Status         Status     `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	SigningToken   string     `gorm:"type:varchar(64);uniqueIndex" json:"-"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	SignedAt       *time.Time `json:"signed_at,omitempty"`
	SignatureName  string     `json:"signature_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName sets the table name for Contract
func (Contract) TableName() string {
	return "contracts"
}
