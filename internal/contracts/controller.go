package contracts

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

// CreateContract handles POST /api/v1/contracts
func (c *Controller) CreateContract(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateContractRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	contract, err := c.service.CreateDraft(ctx.Request.Context(), userID, &req)
	if err != nil {
		respondContractError(ctx, err, "Failed to create contract")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Contract created successfully", contract, nil)
}

// GetContract handles GET /api/v1/contracts/:id
func (c *Controller) GetContract(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	contractID, ok := contractIDParam(ctx)
	if !ok {
		return
	}

	contract, err := c.service.GetContract(ctx.Request.Context(), userID, contractID)
	if err != nil {
		respondContractError(ctx, err, "Failed to get contract")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Contract retrieved successfully", contract, nil)
}

// ListContracts handles GET /api/v1/contracts
func (c *Controller) ListContracts(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var query ContractListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	list, err := c.service.ListContracts(ctx.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list contracts", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Contracts retrieved successfully", list, nil)
}

// SendContract handles POST /api/v1/contracts/:id/send
func (c *Controller) SendContract(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	contractID, ok := contractIDParam(ctx)
	if !ok {
		return
	}

	contract, err := c.service.SendContract(ctx.Request.Context(), userID, contractID)
	if err != nil {
		respondContractError(ctx, err, "Failed to send contract")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Contract sent for signing", contract, nil)
}

// ViewContractByToken handles GET /api/v1/contracts/sign/:token (public)
func (c *Controller) ViewContractByToken(ctx *gin.Context) {
	contract, err := c.service.ViewByToken(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		respondContractError(ctx, err, "Failed to load contract")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Contract retrieved successfully", contract, nil)
}

// SignContract handles POST /api/v1/contracts/sign/:token (public)
func (c *Controller) SignContract(ctx *gin.Context) {
	var req SignContractRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	contract, err := c.service.SignByToken(ctx.Request.Context(), ctx.Param("token"), &req)
	if err != nil {
		respondContractError(ctx, err, "Failed to sign contract")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Contract signed successfully", contract, nil)
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

func contractIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	contractID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid contract ID", nil, nil)
		return uuid.Nil, false
	}
	return contractID, true
}

func respondContractError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrContractNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Contract not found", nil, nil)
	case errors.Is(err, bookings.ErrBookingNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
	case errors.Is(err, ErrNotOwner), errors.Is(err, bookings.ErrNotOwner):
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Access denied", nil, nil)
	case errors.Is(err, ErrAlreadySigned):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Contract has already been signed", nil, nil)
	case errors.Is(err, ErrContractClosed):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Contract is no longer open", nil, nil)
	case errors.Is(err, ErrNotSent):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Contract has not been sent for signing", nil, nil)
	case errors.Is(err, ErrMissingClientEmail):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Contract has no client email", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}
