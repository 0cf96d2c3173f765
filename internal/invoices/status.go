package invoices

// Status represents the lifecycle state of an invoice
type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// IsValid checks if the status is a valid invoice status
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsOutstanding reports whether the invoice still awaits payment
func (s Status) IsOutstanding() bool {
	return s == StatusSent || s == StatusOverdue
}
