package clients

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

// CreateClient handles POST /api/v1/clients
func (c *Controller) CreateClient(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	client, err := c.service.CreateClient(ctx.Request.Context(), userID, &req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create client", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Client created successfully", client, nil)
}

// GetClient handles GET /api/v1/clients/:id
func (c *Controller) GetClient(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	clientID, ok := clientIDParam(ctx)
	if !ok {
		return
	}

	client, err := c.service.GetClient(ctx.Request.Context(), userID, clientID)
	if err != nil {
		respondClientError(ctx, err, "Failed to get client")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Client retrieved successfully", client, nil)
}

// ListClients handles GET /api/v1/clients
func (c *Controller) ListClients(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var query ClientListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	clients, totalCount, err := c.service.ListClients(ctx.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list clients", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Clients retrieved successfully", gin.H{
		"clients":     clients,
		"total_count": totalCount,
	}, nil)
}

// UpdateClient handles PATCH /api/v1/clients/:id
func (c *Controller) UpdateClient(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	clientID, ok := clientIDParam(ctx)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	client, err := c.service.UpdateClient(ctx.Request.Context(), userID, clientID, &req)
	if err != nil {
		respondClientError(ctx, err, "Failed to update client")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Client updated successfully", client, nil)
}

// DeleteClient handles DELETE /api/v1/clients/:id
func (c *Controller) DeleteClient(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	clientID, ok := clientIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteClient(ctx.Request.Context(), userID, clientID); err != nil {
		respondClientError(ctx, err, "Failed to delete client")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Client deleted successfully", nil, nil)
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

func clientIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid client ID", nil, nil)
		return uuid.Nil, false
	}
	return clientID, true
}

func respondClientError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrClientNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Client not found", nil, nil)
	case errors.Is(err, ErrNotOwner):
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Access denied", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}
