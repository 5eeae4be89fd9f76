package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "sewtrack/internal/domain/errors"
	"sewtrack/internal/domain/model"
	"sewtrack/internal/server/http/dto"
	"sewtrack/internal/usecase"
)

// abortWithError maps domain failures onto HTTP statuses. Stale state and
// finalized orders both surface as conflicts the caller resolves by
// re-fetching.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrWorkerNotFound), errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrStaleState),
		errors.Is(err, domainErrors.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domainErrors.ErrInactiveWorker):
		status = http.StatusUnprocessableEntity
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

const dateLayout = "2006-01-02"

// rangeFromQuery resolves ?preset= or ?start=&end= into a DateRange.
// Without either the manager dashboard default, this-week, applies.
func rangeFromQuery(c *gin.Context) (model.DateRange, error) {
	if preset := c.Query("preset"); preset != "" {
		return usecase.ResolvePreset(preset, time.Now())
	}

	startStr, endStr := c.Query("start"), c.Query("end")
	if startStr == "" && endStr == "" {
		return usecase.ResolvePreset(usecase.PresetThisWeek, time.Now())
	}

	start, err := parseDate(startStr)
	if err != nil {
		return model.DateRange{}, err
	}
	end, err := parseDate(endStr)
	if err != nil {
		return model.DateRange{}, err
	}
	return usecase.CustomRange(start, end)
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domainErrors.ErrValidation
	}
	return t, nil
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		WalletType:  order.WalletType,
		Points:      order.Points,
		Status:      string(order.Status),
		ClaimedBy:   order.ClaimedBy,
		ClaimedAt:   order.ClaimedAt,
		CompletedAt: order.CompletedAt,
		VoidedAt:    order.VoidedAt,
		OrdererName: order.OrdererName,
		CreatedAt:   order.CreatedAt,
	}
}

func toWorkerResponse(worker model.Worker) dto.WorkerResponse {
	return dto.WorkerResponse{
		ID:        worker.ID,
		Name:      worker.Name,
		IsActive:  worker.IsActive,
		CreatedAt: worker.CreatedAt,
	}
}
