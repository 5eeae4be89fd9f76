package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sewtrack/internal/domain/model"
	"sewtrack/internal/server/http/dto"
)

// MetricsHandler serves windowed performance queries.
type MetricsHandler struct {
	facade MetricsFacade
}

// NewMetricsHandler constructs MetricsHandler.
func NewMetricsHandler(facade MetricsFacade) *MetricsHandler {
	return &MetricsHandler{facade: facade}
}

// Summary handles GET /api/metrics/summary.
func (h *MetricsHandler) Summary(c *gin.Context) {
	r, err := rangeFromQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	summaries, err := h.facade.Summaries(c.Request.Context(), r)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]dto.WorkerSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, dto.WorkerSummaryResponse{
			WorkerID:       s.WorkerID,
			WorkerName:     s.WorkerName,
			CompletedCount: s.CompletedCount,
			TotalPoints:    s.TotalPoints,
			AveragePoints:  s.AveragePoints,
			Rank:           s.Rank,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Daily handles GET /api/metrics/daily.
func (h *MetricsHandler) Daily(c *gin.Context) {
	r, err := rangeFromQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	buckets, err := h.facade.Daily(c.Request.Context(), r)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]dto.DayBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		response = append(response, toDayBucketResponse(b))
	}
	c.JSON(http.StatusOK, response)
}

// Overview handles GET /api/metrics/overview.
func (h *MetricsHandler) Overview(c *gin.Context) {
	stats, err := h.facade.Overview(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OverviewResponse{
		TotalOrders:     stats.TotalOrders,
		CompletedOrders: stats.CompletedOrders,
		ActiveOrders:    stats.ActiveOrders,
		OpenPoints:      stats.OpenPoints,
		ActiveWorkers:   stats.ActiveWorkers,
		EstimatedHours:  stats.EstimatedHours,
	})
}

func toDayBucketResponse(b model.DayBucket) dto.DayBucketResponse {
	workers := make([]dto.DailyMetricResponse, 0, len(b.Workers))
	for _, m := range b.Workers {
		workers = append(workers, dto.DailyMetricResponse{
			WorkerID:        m.WorkerID,
			WorkerName:      m.WorkerName,
			TotalPoints:     m.TotalPoints,
			OrdersCompleted: m.OrdersCompleted,
		})
	}
	return dto.DayBucketResponse{
		Date:            b.Date.Format(dateLayout),
		TotalPoints:     b.TotalPoints,
		OrdersCompleted: b.OrdersCompleted,
		Workers:         workers,
	}
}
