package model

import "time"

// WorkerSummary aggregates a worker's completed output over a date range.
// Derived on every query, never persisted.
type WorkerSummary struct {
	WorkerID       string
	WorkerName     string
	CompletedCount int
	TotalPoints    int
	AveragePoints  float64
	Rank           int
}

// DailyMetric is one worker's output for one calendar day.
type DailyMetric struct {
	WorkerID        string
	WorkerName      string
	Date            time.Time
	TotalPoints     int
	OrdersCompleted int
}

// DayBucket holds per-worker output for a single calendar day. Every day in
// a requested range produces exactly one bucket, zero-filled when idle.
type DayBucket struct {
	Date            time.Time
	TotalPoints     int
	OrdersCompleted int
	Workers         []DailyMetric
}

// OverviewStats is the dashboard aggregate across the whole ledger.
type OverviewStats struct {
	TotalOrders     int
	CompletedOrders int
	ActiveOrders    int
	OpenPoints      int
	ActiveWorkers   int
	EstimatedHours  int
}
