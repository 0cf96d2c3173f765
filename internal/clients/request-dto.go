package clients

// create client request payload
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"max=30"`
	Address string `json:"address,omitempty" validate:"max=500"`
	Notes   string `json:"notes,omitempty"`
}

// update client request payload; nil fields are left untouched
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Notes   *string `json:"notes,omitempty"`
}

// ClientListQuery carries list filters and pagination
type ClientListQuery struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}
