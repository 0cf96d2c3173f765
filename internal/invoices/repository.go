package invoices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// Repository interface defines the invoice persistence operations
type Repository interface {
	Create(ctx context.Context, invoice *Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	GetUserInvoices(ctx context.Context, userID uuid.UUID, query InvoiceListQuery) ([]Invoice, int64, error)
	Update(ctx context.Context, invoice *Invoice) error
	MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new invoice repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, invoice *Invoice) error {
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	var invoice Invoice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return &invoice, nil
}

func (r *repository) GetUserInvoices(ctx context.Context, userID uuid.UUID, query InvoiceListQuery) ([]Invoice, int64, error) {
	db := r.db.WithContext(ctx).Model(&Invoice{}).Where("user_id = ?", userID)

	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.BookingID != "" {
		bookingID, err := uuid.Parse(query.BookingID)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid booking ID filter: %w", err)
		}
		db = db.Where("booking_id = ?", bookingID)
	}

	var totalCount int64
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	page := query.Page
	if page <= 0 {
		page = 1
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	var invoices []Invoice
	err := db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	return invoices, totalCount, nil
}

func (r *repository) Update(ctx context.Context, invoice *Invoice) error {
	if err := r.db.WithContext(ctx).Save(invoice).Error; err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	return nil
}

// MarkOverdueBefore flips every sent invoice whose due date is strictly
// before cutoff to overdue, across all users. Returns rows affected.
func (r *repository) MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Invoice{}).
		Where("status = ? AND due_date IS NOT NULL AND due_date < ?", StatusSent, cutoff).
		Update("status", StatusOverdue)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark overdue invoices: %w", result.Error)
	}
	return result.RowsAffected, nil
}
