package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes AutoMigrate does not cover
func MigrateConstraints(db *gorm.DB) error {
	// Conflict scans always load one user's calendar ordered by date
	err := db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_user_event_date
		ON bookings (user_id, event_date);
	`).Error
	if err != nil {
		return err
	}

	// Public signing looks contracts up by token alone
	err = db.Exec(`
		CREATE UNIQUE INDEX CONCURRENTLY IF NOT EXISTS idx_contracts_signing_token
		ON contracts (signing_token) WHERE signing_token <> '';
	`).Error
	if err != nil {
		return err
	}

	// Overdue sweep scans sent invoices by due date
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_invoices_status_due_date
		ON invoices (status, due_date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
