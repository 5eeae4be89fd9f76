package usecase

import (
	"errors"
	"testing"
	"time"

	domainErrors "sewtrack/internal/domain/errors"
)

func TestResolvePresetToday(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	r, err := ResolvePreset(PresetToday, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Start.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected midnight start, got %v", r.Start)
	}
	if !r.End.Equal(now) {
		t.Fatalf("expected end at now, got %v", r.End)
	}
}

func TestResolvePresetThisWeekStartsSunday(t *testing.T) {
	// 2024-03-15 is a Friday; the week started Sunday 2024-03-10.
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	r, err := ResolvePreset(PresetThisWeek, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Start.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected Sunday midnight start, got %v", r.Start)
	}
	if r.Start.Weekday() != time.Sunday {
		t.Fatalf("week must start on Sunday, got %v", r.Start.Weekday())
	}
}

func TestResolvePresetThisWeekOnSunday(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.Local)
	r, err := ResolvePreset(PresetThisWeek, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Start.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("on Sunday the week starts today, got %v", r.Start)
	}
}

func TestResolvePresetThisMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	r, err := ResolvePreset(PresetThisMonth, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected first of month, got %v", r.Start)
	}
}

func TestResolvePresetLast30Days(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	r, err := ResolvePreset(PresetLast30Days, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Start.Equal(now.AddDate(0, 0, -30)) {
		t.Fatalf("expected start 30 days back, got %v", r.Start)
	}
	if got := len(r.Days()); got != 31 {
		t.Fatalf("expected 31 daily buckets inclusive of both endpoints, got %d", got)
	}
}

func TestResolvePresetUnknown(t *testing.T) {
	if _, err := ResolvePreset("fortnight", time.Now()); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCustomRangeValidation(t *testing.T) {
	start := time.Date(2024, 3, 12, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	if _, err := CustomRange(start, end); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for inverted range, got %v", err)
	}
}

func TestCustomRangeSingleDay(t *testing.T) {
	day := time.Date(2024, 3, 10, 15, 0, 0, 0, time.Local)
	r, err := CustomRange(day, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(r.Days()); got != 1 {
		t.Fatalf("single-day selection must yield one bucket, got %d", got)
	}
}

func TestCustomRangeSameDayDifferentTimes(t *testing.T) {
	start := time.Date(2024, 3, 10, 18, 0, 0, 0, time.Local)
	end := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
	// Inverted clock times on the same calendar day are still a valid
	// one-day range at day granularity.
	if _, err := CustomRange(start, end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
