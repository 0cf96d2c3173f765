package contracts

// CreateContractRequest creates a draft contract for an existing booking.
// ClientName, ClientEmail and Fee default to the booking's values when
// omitted.
type CreateContractRequest struct {
	BookingID   string   `json:"booking_id" validate:"required,uuid"`
	ClientName  string   `json:"client_name,omitempty" validate:"omitempty,max=255"`
	ClientEmail string   `json:"client_email,omitempty" validate:"omitempty,email"`
	Terms       string   `json:"terms,omitempty"`
	Fee         *float64 `json:"fee,omitempty" validate:"omitempty,gte=0"`
}

// SignContractRequest is the public signing payload
type SignContractRequest struct {
	SignatureName string `json:"signature_name" validate:"required,min=2,max=255"`
}

// ContractListQuery captures list filters and pagination
type ContractListQuery struct {
	Status    string `form:"status"`
	BookingID string `form:"booking_id"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}
