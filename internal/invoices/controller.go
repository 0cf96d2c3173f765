package invoices

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"musobuddy/internal/bookings"
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

// CreateInvoice handles POST /api/v1/invoices
func (c *Controller) CreateInvoice(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	invoice, err := c.service.CreateInvoice(ctx.Request.Context(), userID, &req)
	if err != nil {
		respondInvoiceError(ctx, err, "Failed to create invoice")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Invoice created successfully", invoice, nil)
}

// GetInvoice handles GET /api/v1/invoices/:id
func (c *Controller) GetInvoice(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	invoiceID, ok := invoiceIDParam(ctx)
	if !ok {
		return
	}

	invoice, err := c.service.GetInvoice(ctx.Request.Context(), userID, invoiceID)
	if err != nil {
		respondInvoiceError(ctx, err, "Failed to get invoice")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Invoice retrieved successfully", invoice, nil)
}

// ListInvoices handles GET /api/v1/invoices
func (c *Controller) ListInvoices(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var query InvoiceListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	list, err := c.service.ListInvoices(ctx.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list invoices", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Invoices retrieved successfully", list, nil)
}

// SendInvoice handles POST /api/v1/invoices/:id/send
func (c *Controller) SendInvoice(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	invoiceID, ok := invoiceIDParam(ctx)
	if !ok {
		return
	}

	invoice, err := c.service.SendInvoice(ctx.Request.Context(), userID, invoiceID)
	if err != nil {
		respondInvoiceError(ctx, err, "Failed to send invoice")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Invoice sent successfully", invoice, nil)
}

// MarkInvoicePaid handles POST /api/v1/invoices/:id/pay
func (c *Controller) MarkInvoicePaid(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	invoiceID, ok := invoiceIDParam(ctx)
	if !ok {
		return
	}

	invoice, err := c.service.MarkPaid(ctx.Request.Context(), userID, invoiceID)
	if err != nil {
		respondInvoiceError(ctx, err, "Failed to mark invoice paid")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Invoice marked as paid", invoice, nil)
}

// SweepOverdue handles POST /api/v1/invoices/sweep-overdue (admin)
func (c *Controller) SweepOverdue(ctx *gin.Context) {
	result, err := c.service.SweepOverdue(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to sweep overdue invoices", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Overdue sweep completed", result, nil)
}

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

func invoiceIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid invoice ID", nil, nil)
		return uuid.Nil, false
	}
	return invoiceID, true
}

func respondInvoiceError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvoiceNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Invoice not found", nil, nil)
	case errors.Is(err, bookings.ErrBookingNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
	case errors.Is(err, ErrNotOwner), errors.Is(err, bookings.ErrNotOwner):
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Access denied", nil, nil)
	case errors.Is(err, ErrNotDraft):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Invoice has already been sent", nil, nil)
	case errors.Is(err, ErrAlreadyPaid):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Invoice has already been paid", nil, nil)
	case errors.Is(err, ErrNotSent):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Invoice has not been sent", nil, nil)
	case errors.Is(err, ErrMissingClientEmail):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invoice has no client email", nil, nil)
	case errors.Is(err, ErrInvalidDueDate):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Due date must be YYYY-MM-DD", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}
