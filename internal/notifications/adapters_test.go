package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musobuddy/internal/bookings"
	"musobuddy/internal/contracts"
	"musobuddy/internal/invoices"
)

type capturedNotification struct {
	email string
	name  string
	typ   NotificationType
	data  map[string]interface{}
}

type fakeNotificationService struct {
	captured []capturedNotification
}

func (f *fakeNotificationService) SendNotification(_ context.Context, _ *EmailNotification) error {
	return nil
}

func (f *fakeNotificationService) SendBatchNotifications(_ context.Context, _ []*EmailNotification) error {
	return nil
}

func (f *fakeNotificationService) SendBookingNotification(_ context.Context, email, name string, _ uuid.UUID,
	typ NotificationType, data map[string]interface{}) error {
	f.captured = append(f.captured, capturedNotification{email, name, typ, data})
	return nil
}

func (f *fakeNotificationService) SendContractNotification(_ context.Context, email, name string, _ uuid.UUID,
	typ NotificationType, data map[string]interface{}) error {
	f.captured = append(f.captured, capturedNotification{email, name, typ, data})
	return nil
}

func (f *fakeNotificationService) SendInvoiceNotification(_ context.Context, email, name string, _ uuid.UUID,
	typ NotificationType, data map[string]interface{}) error {
	f.captured = append(f.captured, capturedNotification{email, name, typ, data})
	return nil
}

func (f *fakeNotificationService) Start(_ context.Context) error { return nil }
func (f *fakeNotificationService) Stop() error                   { return nil }
func (f *fakeNotificationService) HealthCheck(_ context.Context) error {
	return nil
}

type fakeDirectory struct{}

func (fakeDirectory) GetRecipient(_ context.Context, _ uuid.UUID) (string, string, error) {
	return "musician@example.com", "Alex Carter", nil
}

func TestNotifyBookingConfirmedGoesToMusician(t *testing.T) {
	svc := &fakeNotificationService{}
	adapter := NewDomainNotifierAdapter(svc, fakeDirectory{}, "https://app.musobuddy.test/")

	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	err := adapter.NotifyBookingConfirmed(context.Background(), &bookings.Booking{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		BookingNumber: 42,
		ClientName:    "The Red Lion",
		EventDate:     &date,
		Fee:           300,
	})
	require.NoError(t, err)

	require.Len(t, svc.captured, 1)
	got := svc.captured[0]
	assert.Equal(t, "musician@example.com", got.email)
	assert.Equal(t, NotificationTypeBookingConfirmed, got.typ)
	assert.Equal(t, "Saturday, 12 September 2026", got.data["event_date"])
}

func TestNotifyContractReadyGoesToClientWithSigningURL(t *testing.T) {
	svc := &fakeNotificationService{}
	adapter := NewDomainNotifierAdapter(svc, fakeDirectory{}, "https://app.musobuddy.test/")

	err := adapter.NotifyContractReady(context.Background(), &contracts.Contract{
		ID:             uuid.New(),
		ContractNumber: 7,
		ClientName:     "Sarah Mitchell",
		ClientEmail:    "sarah@example.com",
		Fee:            450,
		SigningToken:   "abc123",
	})
	require.NoError(t, err)

	require.Len(t, svc.captured, 1)
	got := svc.captured[0]
	assert.Equal(t, "sarah@example.com", got.email)
	assert.Equal(t, NotificationTypeContractReadyToSign, got.typ)
	assert.Equal(t, "https://app.musobuddy.test/api/v1/contracts/sign/abc123", got.data["signing_url"])
}

func TestNotifyInvoiceSentGoesToClient(t *testing.T) {
	svc := &fakeNotificationService{}
	adapter := NewDomainNotifierAdapter(svc, fakeDirectory{}, "https://app.musobuddy.test")

	due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	err := adapter.NotifyInvoiceSent(context.Background(), &invoices.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: 9,
		ClientName:    "Tom Barker",
		ClientEmail:   "tom@example.com",
		Amount:        275,
		DueDate:       &due,
	})
	require.NoError(t, err)

	require.Len(t, svc.captured, 1)
	got := svc.captured[0]
	assert.Equal(t, "tom@example.com", got.email)
	assert.Equal(t, NotificationTypeInvoiceSent, got.typ)
	assert.Equal(t, "1 October 2026", got.data["due_date"])
}

func TestNotificationBuilderDefaults(t *testing.T) {
	n := NewNotificationBuilder().
		WithType(NotificationTypeContractReadyToSign).
		WithRecipient("sarah@example.com", "Sarah Mitchell").
		WithSubject("Your contract is ready").
		Build()

	assert.Equal(t, NotificationStatusPending, n.Status)
	assert.Equal(t, NotificationPriorityHigh, n.Priority)
	assert.Equal(t, 3, n.MaxRetries)
	assert.Equal(t, "sarah@example.com", n.GetPartitionKey())
	assert.False(t, n.IsExpired())
}

func TestNotificationRetryBookkeeping(t *testing.T) {
	n := NewNotificationBuilder().
		WithType(NotificationTypeInvoiceSent).
		WithRecipient("tom@example.com", "Tom Barker").
		WithMaxRetries(2).
		Build()

	n.MarkFailed(assert.AnError)
	assert.Equal(t, NotificationStatusFailed, n.Status)
	assert.True(t, n.ShouldRetry())

	n.IncrementRetry()
	assert.Equal(t, NotificationStatusRetrying, n.Status)

	n.Status = NotificationStatusFailed
	n.IncrementRetry()
	assert.Equal(t, NotificationStatusExpired, n.Status)
	assert.False(t, n.ShouldRetry())
}
