package usecase

import (
	"math"
	"sort"

	"sewtrack/internal/domain/model"
)

// minutesPerPoint is the fixed capacity assumption behind the estimated
// completion time on the dashboard. It is a rough planning figure, not a
// delivery commitment.
const minutesPerPoint = 10

// MetricsUseCase derives per-worker and per-day statistics from an immutable
// order snapshot. Nothing here is persisted; every query recomputes.
type MetricsUseCase struct{}

// NewMetricsUseCase constructs MetricsUseCase.
func NewMetricsUseCase() *MetricsUseCase {
	return &MetricsUseCase{}
}

// Summarize computes ranked per-worker totals for orders completed inside the
// range. Ranking sorts descending by total points with a stable sort, so ties
// keep the caller's worker order; callers wanting deterministic tie-breaks
// pre-sort workers.
func (MetricsUseCase) Summarize(orders []model.Order, workers []model.Worker, r model.DateRange) []model.WorkerSummary {
	summaries := make([]model.WorkerSummary, 0, len(workers))
	for _, w := range workers {
		var points, count int
		for _, o := range orders {
			if !completedBy(o, w.ID) || !r.Contains(*o.CompletedAt) {
				continue
			}
			points += o.Points
			count++
		}
		var avg float64
		if count > 0 {
			avg = math.Round(float64(points)/float64(count)*10) / 10
		}
		summaries = append(summaries, model.WorkerSummary{
			WorkerID:       w.ID,
			WorkerName:     w.Name,
			CompletedCount: count,
			TotalPoints:    points,
			AveragePoints:  avg,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalPoints > summaries[j].TotalPoints
	})
	for i := range summaries {
		summaries[i].Rank = i + 1
	}
	return summaries
}

// DailyBreakdown buckets completions per calendar day. Every day in the range
// produces exactly one bucket with one zero-filled entry per worker, so an
// idle day renders as "no activity" rather than going missing.
func (MetricsUseCase) DailyBreakdown(orders []model.Order, workers []model.Worker, r model.DateRange) []model.DayBucket {
	days := r.Days()
	buckets := make([]model.DayBucket, 0, len(days))
	for _, day := range days {
		bucket := model.DayBucket{Date: day, Workers: make([]model.DailyMetric, 0, len(workers))}
		for _, w := range workers {
			metric := model.DailyMetric{WorkerID: w.ID, WorkerName: w.Name, Date: day}
			for _, o := range orders {
				if !completedBy(o, w.ID) || !model.SameDay(*o.CompletedAt, day) {
					continue
				}
				metric.TotalPoints += o.Points
				metric.OrdersCompleted++
			}
			bucket.TotalPoints += metric.TotalPoints
			bucket.OrdersCompleted += metric.OrdersCompleted
			bucket.Workers = append(bucket.Workers, metric)
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// Overview computes the dashboard aggregate across the whole ledger. Voided
// orders are excluded from every count.
func (MetricsUseCase) Overview(orders []model.Order, workers []model.Worker) model.OverviewStats {
	var stats model.OverviewStats
	for _, o := range orders {
		if o.Status == model.OrderStatusVoid {
			continue
		}
		stats.TotalOrders++
		switch {
		case o.Status == model.OrderStatusCompleted:
			stats.CompletedOrders++
		case o.Open():
			stats.ActiveOrders++
			stats.OpenPoints += o.Points
		}
	}
	for _, w := range workers {
		if w.IsActive {
			stats.ActiveWorkers++
		}
	}
	stats.EstimatedHours = int(math.Ceil(float64(stats.OpenPoints*minutesPerPoint) / 60))
	return stats
}

func completedBy(o model.Order, workerID string) bool {
	return o.Status == model.OrderStatusCompleted &&
		o.ClaimedBy != nil && *o.ClaimedBy == workerID &&
		o.CompletedAt != nil
}
