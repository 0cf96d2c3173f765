package invoices

// CreateInvoiceRequest creates a draft invoice, optionally linked to a
// booking. When BookingID is set, ClientName and Amount default to the
// booking's values.
type CreateInvoiceRequest struct {
	BookingID   string   `json:"booking_id,omitempty" validate:"omitempty,uuid"`
	ClientName  string   `json:"client_name,omitempty" validate:"omitempty,max=255"`
	ClientEmail string   `json:"client_email,omitempty" validate:"omitempty,email"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	DueDate     string   `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes       string   `json:"notes,omitempty"`
}

// InvoiceListQuery captures list filters and pagination
type InvoiceListQuery struct {
	Status    string `form:"status"`
	BookingID string `form:"booking_id"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}
