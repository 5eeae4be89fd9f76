package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "sewtrack/internal/domain/errors"
	"sewtrack/internal/domain/model"
	"sewtrack/internal/server/http/dto"
)

// OrderHandler manages order ingestion and lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, domainErrors.ErrValidation)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), req.OrderNumber, req.WalletType, req.Points, req.OrdererName)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Claim handles POST /api/orders/:id/claim.
func (h *OrderHandler) Claim(c *gin.Context) {
	h.applyWithWorker(c, h.facade.Claim)
}

// Complete handles POST /api/orders/:id/complete.
func (h *OrderHandler) Complete(c *gin.Context) {
	h.applyWithWorker(c, h.facade.Complete)
}

// Reassign handles POST /api/orders/:id/reassign.
func (h *OrderHandler) Reassign(c *gin.Context) {
	h.applyWithWorker(c, h.facade.Reassign)
}

// Uncomplete handles POST /api/orders/:id/uncomplete.
func (h *OrderHandler) Uncomplete(c *gin.Context) {
	order, err := h.facade.Uncomplete(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Void handles POST /api/orders/:id/void.
func (h *OrderHandler) Void(c *gin.Context) {
	order, err := h.facade.Void(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func (h *OrderHandler) applyWithWorker(c *gin.Context, op func(ctx context.Context, orderID, workerID string) (*model.Order, error)) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, domainErrors.ErrValidation)
		return
	}

	order, err := op(c.Request.Context(), c.Param("id"), req.WorkerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
