package invoices

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musobuddy/internal/bookings"
)

type fakeRepository struct {
	invoices map[uuid.UUID]*Invoice
	nextNum  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{invoices: make(map[uuid.UUID]*Invoice)}
}

func (f *fakeRepository) Create(_ context.Context, invoice *Invoice) error {
	invoice.ID = uuid.New()
	f.nextNum++
	invoice.InvoiceNumber = f.nextNum
	stored := *invoice
	f.invoices[invoice.ID] = &stored
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Invoice, error) {
	invoice, ok := f.invoices[id]
	if !ok {
		return nil, ErrInvoiceNotFound
	}
	copied := *invoice
	return &copied, nil
}

func (f *fakeRepository) GetUserInvoices(_ context.Context, userID uuid.UUID, query InvoiceListQuery) ([]Invoice, int64, error) {
	var out []Invoice
	for _, invoice := range f.invoices {
		if invoice.UserID != userID {
			continue
		}
		if query.Status != "" && invoice.Status.String() != query.Status {
			continue
		}
		out = append(out, *invoice)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepository) Update(_ context.Context, invoice *Invoice) error {
	if _, ok := f.invoices[invoice.ID]; !ok {
		return ErrInvoiceNotFound
	}
	stored := *invoice
	f.invoices[invoice.ID] = &stored
	return nil
}

func (f *fakeRepository) MarkOverdueBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var marked int64
	for _, invoice := range f.invoices {
		if invoice.Status == StatusSent && invoice.DueDate != nil && invoice.DueDate.Before(cutoff) {
			invoice.Status = StatusOverdue
			marked++
		}
	}
	return marked, nil
}

type fakeBookingSource struct {
	booking *bookings.Booking
}

func (f *fakeBookingSource) GetBooking(_ context.Context, userID, bookingID uuid.UUID) (*bookings.Booking, error) {
	if f.booking == nil || f.booking.ID != bookingID {
		return nil, bookings.ErrBookingNotFound
	}
	if f.booking.UserID != userID {
		return nil, bookings.ErrNotOwner
	}
	return f.booking, nil
}

type fakeNotifier struct {
	sent []uuid.UUID
}

func (f *fakeNotifier) NotifyInvoiceSent(_ context.Context, invoice *Invoice) error {
	f.sent = append(f.sent, invoice.ID)
	return nil
}

func newDraft(t *testing.T, svc Service, userID uuid.UUID, email string) *Invoice {
	t.Helper()
	amount := 350.0
	invoice, err := svc.CreateInvoice(context.Background(), userID, &CreateInvoiceRequest{
		ClientName:  "Tom Barker",
		ClientEmail: email,
		Amount:      &amount,
		DueDate:     "2026-09-30",
	})
	require.NoError(t, err)
	return invoice
}

func TestCreateInvoiceFromBooking(t *testing.T) {
	userID := uuid.New()
	booking := &bookings.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		ClientName: "The Red Lion",
		Fee:        275,
		Status:     bookings.StatusConfirmed,
	}
	svc := NewService(newFakeRepository(), &fakeBookingSource{booking: booking}, nil)

	invoice, err := svc.CreateInvoice(context.Background(), userID, &CreateInvoiceRequest{
		BookingID: booking.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, "The Red Lion", invoice.ClientName)
	assert.Equal(t, 275.0, invoice.Amount)
	require.NotNil(t, invoice.BookingID)
	assert.Equal(t, booking.ID, *invoice.BookingID)
	assert.Equal(t, StatusDraft, invoice.Status)
}

func TestCreateInvoiceBadDueDate(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, nil)

	_, err := svc.CreateInvoice(context.Background(), uuid.New(), &CreateInvoiceRequest{
		ClientName: "Tom Barker",
		DueDate:    "30/09/2026",
	})
	assert.ErrorIs(t, err, ErrInvalidDueDate)
}

func TestSendInvoice(t *testing.T) {
	userID := uuid.New()
	notifier := &fakeNotifier{}
	svc := NewService(newFakeRepository(), nil, notifier)

	invoice := newDraft(t, svc, userID, "tom@example.com")

	sent, err := svc.SendInvoice(context.Background(), userID, invoice.ID)
	require.NoError(t, err)

	assert.Equal(t, StatusSent, sent.Status)
	assert.NotNil(t, sent.SentAt)
	assert.Equal(t, []uuid.UUID{invoice.ID}, notifier.sent)

	_, err = svc.SendInvoice(context.Background(), userID, invoice.ID)
	assert.ErrorIs(t, err, ErrNotDraft)
}

func TestSendInvoiceRequiresClientEmail(t *testing.T) {
	userID := uuid.New()
	svc := NewService(newFakeRepository(), nil, nil)

	invoice := newDraft(t, svc, userID, "")

	_, err := svc.SendInvoice(context.Background(), userID, invoice.ID)
	assert.ErrorIs(t, err, ErrMissingClientEmail)
}

func TestMarkPaid(t *testing.T) {
	userID := uuid.New()
	svc := NewService(newFakeRepository(), nil, nil)

	invoice := newDraft(t, svc, userID, "tom@example.com")

	// draft cannot be paid
	_, err := svc.MarkPaid(context.Background(), userID, invoice.ID)
	assert.ErrorIs(t, err, ErrNotSent)

	_, err = svc.SendInvoice(context.Background(), userID, invoice.ID)
	require.NoError(t, err)

	paid, err := svc.MarkPaid(context.Background(), userID, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	_, err = svc.MarkPaid(context.Background(), userID, invoice.ID)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestMarkPaidOwnership(t *testing.T) {
	userID := uuid.New()
	svc := NewService(newFakeRepository(), nil, nil)

	invoice := newDraft(t, svc, userID, "tom@example.com")

	_, err := svc.MarkPaid(context.Background(), uuid.New(), invoice.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestSweepOverdue(t *testing.T) {
	userID := uuid.New()
	repo := newFakeRepository()
	svc := NewService(repo, nil, nil)

	// pretend today is well past the 2026-09-30 due date
	svc.(*service).now = func() time.Time {
		return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	}

	due := newDraft(t, svc, userID, "tom@example.com")
	_, err := svc.SendInvoice(context.Background(), userID, due.ID)
	require.NoError(t, err)

	stillDraft := newDraft(t, svc, userID, "tom@example.com")

	result, err := svc.SweepOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MarkedOverdue)

	swept, err := repo.GetByID(context.Background(), due.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusOverdue, swept.Status)

	untouched, err := repo.GetByID(context.Background(), stillDraft.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, untouched.Status)

	// overdue invoices can still be marked paid
	paid, err := svc.MarkPaid(context.Background(), userID, due.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, paid.Status)
}
