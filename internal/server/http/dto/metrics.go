package dto

// WorkerSummaryResponse is one row of the performance ranking.
type WorkerSummaryResponse struct {
	WorkerID       string  `json:"worker_id"`
	WorkerName     string  `json:"worker_name"`
	CompletedCount int     `json:"completed_count"`
	TotalPoints    int     `json:"total_points"`
	AveragePoints  float64 `json:"average_points"`
	Rank           int     `json:"rank"`
}

// DailyMetricResponse is one worker's output on one day.
type DailyMetricResponse struct {
	WorkerID        string `json:"worker_id"`
	WorkerName      string `json:"worker_name"`
	TotalPoints     int    `json:"total_points"`
	OrdersCompleted int    `json:"orders_completed"`
}

// DayBucketResponse is the calendar cell for one day.
type DayBucketResponse struct {
	Date            string                `json:"date"`
	TotalPoints     int                   `json:"total_points"`
	OrdersCompleted int                   `json:"orders_completed"`
	Workers         []DailyMetricResponse `json:"workers"`
}

// OverviewResponse is the dashboard aggregate.
type OverviewResponse struct {
	TotalOrders     int `json:"total_orders"`
	CompletedOrders int `json:"completed_orders"`
	ActiveOrders    int `json:"active_orders"`
	OpenPoints      int `json:"open_points"`
	ActiveWorkers   int `json:"active_workers"`
	EstimatedHours  int `json:"estimated_hours"`
}
