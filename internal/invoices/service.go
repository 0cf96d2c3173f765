package invoices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"musobuddy/internal/bookings"
	"musobuddy/pkg/logger"
)

var (
	ErrNotOwner           = errors.New("invoice does not belong to user")
	ErrNotDraft           = errors.New("invoice has already been sent")
	ErrAlreadyPaid        = errors.New("invoice has already been paid")
	ErrNotSent            = errors.New("invoice has not been sent")
	ErrMissingClientEmail = errors.New("invoice has no client email to send to")
	ErrInvalidDueDate     = errors.New("due date must be YYYY-MM-DD")
)

// BookingSource resolves the booking an invoice is raised against
type BookingSource interface {
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*bookings.Booking, error)
}

// Notifier publishes invoice lifecycle notifications
type Notifier interface {
	NotifyInvoiceSent(ctx context.Context, invoice *Invoice) error
}

// Service interface defines the invoice business logic
type Service interface {
	CreateInvoice(ctx context.Context, userID uuid.UUID, req *CreateInvoiceRequest) (*Invoice, error)
	GetInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, userID uuid.UUID, query InvoiceListQuery) (*InvoiceListResponse, error)
	SendInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*Invoice, error)
	MarkPaid(ctx context.Context, userID, invoiceID uuid.UUID) (*Invoice, error)

	// SweepOverdue marks past-due sent invoices overdue, across all users
	SweepOverdue(ctx context.Context) (*OverdueSweepResponse, error)
}

type service struct {
	repo     Repository
	bookings BookingSource
	notifier Notifier
	now      func() time.Time
}

// NewService creates a new invoice service instance. bookingSource and
// notifier may be nil; standalone invoices then require explicit details
// and sends go unannounced.
func NewService(repo Repository, bookingSource BookingSource, notifier Notifier) Service {
	return &service{
		repo:     repo,
		bookings: bookingSource,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) CreateInvoice(ctx context.Context, userID uuid.UUID, req *CreateInvoiceRequest) (*Invoice, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	invoice := &Invoice{
		UserID:      userID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		DueDate:     dueDate,
		Notes:       req.Notes,
		Status:      StatusDraft,
	}
	if req.Amount != nil {
		invoice.Amount = *req.Amount
	}

	if req.BookingID != "" {
		bookingID, err := uuid.Parse(req.BookingID)
		if err != nil {
			return nil, fmt.Errorf("invalid booking ID: %w", err)
		}
		if s.bookings == nil {
			return nil, bookings.ErrBookingNotFound
		}
		booking, err := s.bookings.GetBooking(ctx, userID, bookingID)
		if err != nil {
			return nil, err
		}
		invoice.BookingID = &booking.ID
		if invoice.ClientName == "" {
			invoice.ClientName = booking.ClientName
		}
		if req.Amount == nil {
			invoice.Amount = booking.Fee
		}
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

func (s *service) GetInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*Invoice, error) {
	invoice, err := s.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.UserID != userID {
		return nil, ErrNotOwner
	}
	return invoice, nil
}

func (s *service) ListInvoices(ctx context.Context, userID uuid.UUID, query InvoiceListQuery) (*InvoiceListResponse, error) {
	invoices, totalCount, err := s.repo.GetUserInvoices(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	return &InvoiceListResponse{
		Invoices:   invoices,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: bookings.CalculateTotalPages(totalCount, query.Limit),
	}, nil
}

func (s *service) SendInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*Invoice, error) {
	invoice, err := s.GetInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	if invoice.Status != StatusDraft {
		return nil, ErrNotDraft
	}
	if invoice.ClientEmail == "" {
		return nil, ErrMissingClientEmail
	}

	now := s.now()
	invoice.Status = StatusSent
	invoice.SentAt = &now

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyInvoiceSent(ctx, invoice); err != nil {
			logger.GetDefault().Warn("failed to publish invoice sent notification",
				slog.String("invoice_id", invoice.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return invoice, nil
}

func (s *service) MarkPaid(ctx context.Context, userID, invoiceID uuid.UUID) (*Invoice, error) {
	invoice, err := s.GetInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	switch invoice.Status {
	case StatusSent, StatusOverdue:
		// payable
	case StatusPaid:
		return nil, ErrAlreadyPaid
	default:
		return nil, ErrNotSent
	}

	now := s.now()
	invoice.Status = StatusPaid
	invoice.PaidAt = &now

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

func (s *service) SweepOverdue(ctx context.Context) (*OverdueSweepResponse, error) {
	today := s.now().Truncate(24 * time.Hour)
	marked, err := s.repo.MarkOverdueBefore(ctx, today)
	if err != nil {
		return nil, err
	}

	if marked > 0 {
		logger.GetDefault().Info("overdue invoice sweep",
			slog.Int64("marked_overdue", marked),
		)
	}

	return &OverdueSweepResponse{MarkedOverdue: marked}, nil
}

func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, ErrInvalidDueDate
	}
	return &parsed, nil
}
