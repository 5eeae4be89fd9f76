package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "sewtrack/internal/domain/errors"
	"sewtrack/internal/server/http/dto"
)

// WorkerHandler manages the sewer roster endpoints.
type WorkerHandler struct {
	facade WorkerFacade
}

// NewWorkerHandler constructs WorkerHandler.
func NewWorkerHandler(facade WorkerFacade) *WorkerHandler {
	return &WorkerHandler{facade: facade}
}

// List handles GET /api/workers.
func (h *WorkerHandler) List(c *gin.Context) {
	workers, err := h.facade.Workers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]dto.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		response = append(response, toWorkerResponse(w))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/workers. Restoring a deactivated namesake
// answers 200, a brand new identity 201.
func (h *WorkerHandler) Create(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, domainErrors.ErrValidation)
		return
	}

	worker, created, err := h.facade.AddWorker(c.Request.Context(), req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, toWorkerResponse(*worker))
}

// Update handles PATCH /api/workers/:id.
func (h *WorkerHandler) Update(c *gin.Context) {
	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		abortWithError(c, domainErrors.ErrValidation)
		return
	}

	worker, err := h.facade.SetWorkerActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWorkerResponse(*worker))
}
