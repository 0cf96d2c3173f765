package contracts

import "time"

// ContractListResponse is the paginated list envelope
type ContractListResponse struct {
	Contracts  []Contract `json:"contracts"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
}

// PublicContractResponse is what the signing page sees. It deliberately
// omits internal IDs and the owner's details.
type PublicContractResponse struct {
	ContractNumber int        `json:"contract_number"`
	ClientName     string     `json:"client_name"`
	Terms          string     `json:"terms,omitempty"`
	Fee            float64    `json:"fee"`
	Status         Status     `json:"status"`
	SignedAt       *time.Time `json:"signed_at,omitempty"`
	SignatureName  string     `json:"signature_name,omitempty"`
}

func (c *Contract) ToPublicResponse() *PublicContractResponse {
	return &PublicContractResponse{
		ContractNumber: c.ContractNumber,
		ClientName:     c.ClientName,
		Terms:          c.Terms,
		Fee:            c.Fee,
		Status:         c.Status,
		SignedAt:       c.SignedAt,
		SignatureName:  c.SignatureName,
	}
}
