package bookings

// create booking request payload
type CreateBookingRequest struct {
	ClientID     string  `json:"client_id,omitempty" validate:"omitempty,uuid"`
	ClientName   string  `json:"client_name" validate:"required,min=2,max=200"`
	Title        string  `json:"title,omitempty" validate:"max=200"`
	EventDate    string  `json:"event_date,omitempty"` // YYYY-MM-DD
	EventTime    string  `json:"event_time,omitempty" validate:"max=20"`
	EventEndTime string  `json:"event_end_time,omitempty" validate:"max=20"`
	Venue        string  `json:"venue,omitempty" validate:"max=200"`
	VenueAddress string  `json:"venue_address,omitempty" validate:"max=500"`
	Fee          float64 `json:"fee,omitempty" validate:"gte=0"`
	Notes        string  `json:"notes,omitempty"`
}

// update booking request payload; nil fields are left untouched
type UpdateBookingRequest struct {
	ClientName   *string  `json:"client_name,omitempty" validate:"omitempty,min=2,max=200"`
	Title        *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	EventDate    *string  `json:"event_date,omitempty"` // YYYY-MM-DD, empty string clears
	EventTime    *string  `json:"event_time,omitempty" validate:"omitempty,max=20"`
	EventEndTime *string  `json:"event_end_time,omitempty" validate:"omitempty,max=20"`
	Venue        *string  `json:"venue,omitempty" validate:"omitempty,max=200"`
	VenueAddress *string  `json:"venue_address,omitempty" validate:"omitempty,max=500"`
	Fee          *float64 `json:"fee,omitempty" validate:"omitempty,gte=0"`
	Notes        *string  `json:"notes,omitempty"`
}

// status transition request payload
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BookingListQuery carries list filters and pagination
type BookingListQuery struct {
	Status   string `form:"status"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}
