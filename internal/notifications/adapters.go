package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"musobuddy/internal/bookings"
	"musobuddy/internal/contracts"
	"musobuddy/internal/invoices"
)

// RecipientDirectory resolves the musician behind a record to an email
// recipient. Implemented over the users service at wiring time.
type RecipientDirectory interface {
	GetRecipient(ctx context.Context, userID uuid.UUID) (email, name string, err error)
}

// DomainNotifierAdapter bridges the bookings, contracts and invoices
// services onto the notification pipeline. Booking confirmations and
// signed-contract notices go to the musician; signing requests and
// invoices go to the client.
type DomainNotifierAdapter struct {
	service   NotificationService
	directory RecipientDirectory
	baseURL   string
}

// NewDomainNotifierAdapter creates the adapter. publicBaseURL is used to
// compose the public contract signing link.
func NewDomainNotifierAdapter(service NotificationService, directory RecipientDirectory, publicBaseURL string) *DomainNotifierAdapter {
	return &DomainNotifierAdapter{
		service:   service,
		directory: directory,
		baseURL:   strings.TrimRight(publicBaseURL, "/"),
	}
}

// enabled reports whether a notification pipeline was wired in. The server
// runs without one when Kafka is unreachable at startup.
func (a *DomainNotifierAdapter) enabled() bool {
	return a.service != nil
}

// NotifyBookingConfirmed implements bookings.Notifier
func (a *DomainNotifierAdapter) NotifyBookingConfirmed(ctx context.Context, booking *bookings.Booking) error {
	if !a.enabled() {
		return nil
	}

	email, name, err := a.directory.GetRecipient(ctx, booking.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve booking owner: %w", err)
	}

	eventDate := "date to be confirmed"
	if booking.EventDate != nil {
		eventDate = booking.EventDate.Format("Monday, 2 January 2006")
	}

	return a.service.SendBookingNotification(ctx, email, name, booking.ID,
		NotificationTypeBookingConfirmed, map[string]interface{}{
			"booking_number": booking.BookingNumber,
			"client_name":    booking.ClientName,
			"event_date":     eventDate,
			"event_time":     booking.EventTime,
			"venue":          booking.Venue,
			"fee":            booking.Fee,
		})
}

// NotifyContractReady implements contracts.Notifier
func (a *DomainNotifierAdapter) NotifyContractReady(ctx context.Context, contract *contracts.Contract) error {
	if !a.enabled() {
		return nil
	}

	return a.service.SendContractNotification(ctx, contract.ClientEmail, contract.ClientName, contract.ID,
		NotificationTypeContractReadyToSign, map[string]interface{}{
			"contract_number": contract.ContractNumber,
			"fee":             contract.Fee,
			"signing_url":     a.signingURL(contract.SigningToken),
		})
}

// NotifyContractSigned implements contracts.Notifier
func (a *DomainNotifierAdapter) NotifyContractSigned(ctx context.Context, contract *contracts.Contract) error {
	if !a.enabled() {
		return nil
	}

	email, name, err := a.directory.GetRecipient(ctx, contract.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve contract owner: %w", err)
	}

	return a.service.SendContractNotification(ctx, email, name, contract.ID,
		NotificationTypeContractSigned, map[string]interface{}{
			"contract_number": contract.ContractNumber,
			"client_name":     contract.ClientName,
			"signature_name":  contract.SignatureName,
		})
}

// NotifyInvoiceSent implements invoices.Notifier
func (a *DomainNotifierAdapter) NotifyInvoiceSent(ctx context.Context, invoice *invoices.Invoice) error {
	if !a.enabled() {
		return nil
	}

	data := map[string]interface{}{
		"invoice_number": invoice.InvoiceNumber,
		"amount":         invoice.Amount,
	}
	if invoice.DueDate != nil {
		data["due_date"] = invoice.DueDate.Format("2 January 2006")
	}

	return a.service.SendInvoiceNotification(ctx, invoice.ClientEmail, invoice.ClientName, invoice.ID,
		NotificationTypeInvoiceSent, data)
}

func (a *DomainNotifierAdapter) signingURL(token string) string {
	return fmt.Sprintf("%s/api/v1/contracts/sign/%s", a.baseURL, token)
}
