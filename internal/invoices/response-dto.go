package invoices

// InvoiceListResponse is the paginated list envelope
type InvoiceListResponse struct {
	Invoices   []Invoice `json:"invoices"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}

// OverdueSweepResponse reports how many sent invoices went overdue
type OverdueSweepResponse struct {
	MarkedOverdue int64 `json:"marked_overdue"`
}
