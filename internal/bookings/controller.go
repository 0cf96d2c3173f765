package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"musobuddy/internal/shared/utils/response"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// CreateBooking handles POST /api/v1/bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEventDate):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event date", nil, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create booking", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

// GetBooking handles GET /api/v1/bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookingID, ok := bookingIDParam(ctx)
	if !ok {
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), userID, bookingID)
	if err != nil {
		respondBookingError(ctx, err, "Failed to get booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// ListBookings handles GET /api/v1/bookings
func (c *Controller) ListBookings(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	list, err := c.service.ListBookings(ctx.Request.Context(), userID, query)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid status filter", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list bookings", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", list, nil)
}

// UpdateBooking handles PATCH /api/v1/bookings/:id
func (c *Controller) UpdateBooking(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookingID, ok := bookingIDParam(ctx)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.UpdateBooking(ctx.Request.Context(), userID, bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEventDate):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event date", nil, err.Error())
		default:
			respondBookingError(ctx, err, "Failed to update booking")
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking updated successfully", booking, nil)
}

// UpdateStatus handles POST /api/v1/bookings/:id/status
func (c *Controller) UpdateStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookingID, ok := bookingIDParam(ctx)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.TransitionStatus(ctx.Request.Context(), userID, bookingID, Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking status", nil, nil)
		case errors.Is(err, ErrInvalidTransition):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Status transition not allowed", nil, nil)
		default:
			respondBookingError(ctx, err, "Failed to update booking status")
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking status updated successfully", booking, nil)
}

// DeleteBooking handles DELETE /api/v1/bookings/:id
func (c *Controller) DeleteBooking(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookingID, ok := bookingIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteBooking(ctx.Request.Context(), userID, bookingID); err != nil {
		respondBookingError(ctx, err, "Failed to delete booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking deleted successfully", nil, nil)
}

// ScanConflicts handles GET /api/v1/bookings/conflicts
func (c *Controller) ScanConflicts(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	scan, err := c.service.ScanConflicts(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to scan for conflicts", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Conflict scan completed", scan, nil)
}

// GetBookingConflicts handles GET /api/v1/bookings/:id/conflicts
func (c *Controller) GetBookingConflicts(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookingID, ok := bookingIDParam(ctx)
	if !ok {
		return
	}

	result, err := c.service.BookingConflicts(ctx.Request.Context(), userID, bookingID)
	if err != nil {
		respondBookingError(ctx, err, "Failed to check booking conflicts")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking conflicts retrieved successfully", result, nil)
}

// currentUserID pulls the authenticated user's ID from the JWT context set
// by the auth middleware. Writes the error response itself on failure.
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return uuid.Nil, false
	}

	userIDStr, ok := userIDInterface.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Invalid user ID format", nil, nil)
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return uuid.Nil, false
	}

	return userID, true
}

func bookingIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return uuid.Nil, false
	}
	return bookingID, true
}

func respondBookingError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
	case errors.Is(err, ErrNotOwner):
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Access denied", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}
