package usecase

import (
	"testing"
	"time"

	"sewtrack/internal/domain/model"
)

func completedOrder(id, workerID string, points int, completedAt time.Time) model.Order {
	return model.Order{
		ID:          id,
		OrderNumber: "#" + id,
		Points:      points,
		Status:      model.OrderStatusCompleted,
		ClaimedBy:   &workerID,
		ClaimedAt:   &completedAt,
		CompletedAt: &completedAt,
	}
}

var metricsWorkers = []model.Worker{
	{ID: "w1", Name: "John Smith", IsActive: true},
	{ID: "w2", Name: "Maria Garcia", IsActive: true},
}

func TestSummarizeSingleCompletion(t *testing.T) {
	t0 := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	t1 := time.Date(2024, 3, 15, 11, 0, 0, 0, time.Local)
	orders := []model.Order{completedOrder("1001", "w1", 5, t1)}

	summaries := MetricsUseCase{}.Summarize(orders, metricsWorkers, model.DateRange{Start: t0, End: t1})
	if len(summaries) != 2 {
		t.Fatalf("expected a summary per worker, got %d", len(summaries))
	}
	top := summaries[0]
	if top.WorkerID != "w1" || top.CompletedCount != 1 || top.TotalPoints != 5 || top.AveragePoints != 5.0 {
		t.Fatalf("unexpected top summary: %+v", top)
	}
	if top.Rank != 1 || summaries[1].Rank != 2 {
		t.Fatal("expected ranks 1 and 2")
	}
}

func TestSummarizeZeroCompletions(t *testing.T) {
	r := model.DateRange{
		Start: time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
		End:   time.Date(2024, 3, 12, 0, 0, 0, 0, time.Local),
	}

	summaries := MetricsUseCase{}.Summarize(nil, metricsWorkers, r)
	for _, s := range summaries {
		if s.TotalPoints != 0 || s.CompletedCount != 0 || s.AveragePoints != 0 {
			t.Fatalf("expected zeroed summary, got %+v", s)
		}
	}
}

func TestSummarizeAverageRoundsToOneDecimal(t *testing.T) {
	day := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	orders := []model.Order{
		completedOrder("1001", "w1", 2, day),
		completedOrder("1002", "w1", 5, day),
		completedOrder("1003", "w1", 3, day),
	}
	r := model.DateRange{Start: day, End: day}

	summaries := MetricsUseCase{}.Summarize(orders, metricsWorkers, r)
	if got := summaries[0].AveragePoints; got != 3.3 {
		t.Fatalf("expected average 3.3, got %v", got)
	}
}

func TestSummarizeTiesKeepInputOrder(t *testing.T) {
	day := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	orders := []model.Order{
		completedOrder("1001", "w1", 5, day),
		completedOrder("1002", "w2", 5, day),
	}
	r := model.DateRange{Start: day, End: day}

	summaries := MetricsUseCase{}.Summarize(orders, metricsWorkers, r)
	if summaries[0].WorkerID != "w1" || summaries[1].WorkerID != "w2" {
		t.Fatalf("ties must keep the input worker order, got %s then %s", summaries[0].WorkerID, summaries[1].WorkerID)
	}
}

func TestSummarizeExcludesOutOfRangeAndNonCompleted(t *testing.T) {
	day := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	outside := completedOrder("1002", "w1", 7, day.AddDate(0, 0, -5))
	w1 := "w1"
	inProgress := model.Order{ID: "1003", Points: 9, Status: model.OrderStatusInProgress, ClaimedBy: &w1, ClaimedAt: &day}
	voided := completedOrder("1004", "w1", 4, day)
	voided.Status = model.OrderStatusVoid
	orders := []model.Order{completedOrder("1001", "w1", 5, day), outside, inProgress, voided}
	r := model.DateRange{Start: day, End: day}

	summaries := MetricsUseCase{}.Summarize(orders, metricsWorkers, r)
	if summaries[0].TotalPoints != 5 || summaries[0].CompletedCount != 1 {
		t.Fatalf("expected only the in-range completion to count, got %+v", summaries[0])
	}
}

func TestDailyBreakdownBucketPerDay(t *testing.T) {
	r := model.DateRange{
		Start: time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
		End:   time.Date(2024, 3, 12, 0, 0, 0, 0, time.Local),
	}
	orders := []model.Order{
		completedOrder("1001", "w1", 2, time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)),
		completedOrder("1002", "w1", 3, time.Date(2024, 3, 12, 16, 0, 0, 0, time.Local)),
	}

	buckets := MetricsUseCase{}.DailyBreakdown(orders, metricsWorkers, r)
	if len(buckets) != 3 {
		t.Fatalf("expected exactly 3 buckets, got %d", len(buckets))
	}
	if buckets[0].TotalPoints != 2 || buckets[2].TotalPoints != 3 {
		t.Fatalf("unexpected bucket totals: %+v", buckets)
	}
	if buckets[1].TotalPoints != 0 || buckets[1].OrdersCompleted != 0 {
		t.Fatal("idle day must render as a zero-point bucket, not be absent")
	}
	if len(buckets[1].Workers) != len(metricsWorkers) {
		t.Fatal("every bucket carries one entry per worker")
	}
}

func TestDailyBreakdownEmptyRangeStillBuckets(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	buckets := MetricsUseCase{}.DailyBreakdown(nil, metricsWorkers, model.DateRange{Start: day, End: day})
	if len(buckets) != 1 {
		t.Fatalf("single-day range must produce one bucket, got %d", len(buckets))
	}
}

func TestOverviewStats(t *testing.T) {
	day := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	orders := []model.Order{
		{ID: "1", Points: 5, Status: model.OrderStatusPending},
		{ID: "2", Points: 7, Status: model.OrderStatusInProgress},
		completedOrder("3", "w1", 2, day),
		{ID: "4", Points: 9, Status: model.OrderStatusVoid},
	}
	workers := []model.Worker{
		{ID: "w1", IsActive: true},
		{ID: "w2", IsActive: false},
	}

	stats := MetricsUseCase{}.Overview(orders, workers)
	if stats.TotalOrders != 3 {
		t.Fatalf("voided orders must not count, got total %d", stats.TotalOrders)
	}
	if stats.CompletedOrders != 1 || stats.ActiveOrders != 2 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.OpenPoints != 12 {
		t.Fatalf("expected 12 open points, got %d", stats.OpenPoints)
	}
	// 12 points at 10 minutes each is 120 minutes, so 2 hours.
	if stats.EstimatedHours != 2 {
		t.Fatalf("expected 2 estimated hours, got %d", stats.EstimatedHours)
	}
	if stats.ActiveWorkers != 1 {
		t.Fatalf("expected 1 active worker, got %d", stats.ActiveWorkers)
	}
}

func TestOverviewEstimateRoundsUp(t *testing.T) {
	orders := []model.Order{{ID: "1", Points: 7, Status: model.OrderStatusPending}}
	stats := MetricsUseCase{}.Overview(orders, nil)
	// 70 minutes of work rounds up to 2 hours.
	if stats.EstimatedHours != 2 {
		t.Fatalf("expected estimate to round up to 2, got %d", stats.EstimatedHours)
	}
}
