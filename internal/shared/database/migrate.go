package database

import (
	"gorm.io/gorm"

	"musobuddy/internal/bookings"
	"musobuddy/internal/clients"
	"musobuddy/internal/contracts"
	"musobuddy/internal/invoices"
	"musobuddy/internal/users"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&clients.Client{},
		&bookings.Booking{},
		&contracts.Contract{},
		&invoices.Invoice{},
	)
}
