package usecase

import (
	"fmt"
	"time"

	domainErrors "sewtrack/internal/domain/errors"
	"sewtrack/internal/domain/model"
)

// Supported date-range presets.
const (
	PresetToday      = "today"
	PresetThisWeek   = "this-week"
	PresetThisMonth  = "this-month"
	PresetLast30Days = "last-30-days"
)

// ResolvePreset maps a named preset to a range relative to now. Weeks start
// on Sunday (day 0). The raw end stays at now; day alignment happens inside
// DateRange when containment is evaluated.
func ResolvePreset(name string, now time.Time) (model.DateRange, error) {
	switch name {
	case PresetToday:
		return model.DateRange{Start: model.StartOfDay(now), End: now}, nil
	case PresetThisWeek:
		start := model.StartOfDay(now.AddDate(0, 0, -int(now.Weekday())))
		return model.DateRange{Start: start, End: now}, nil
	case PresetThisMonth:
		y, m, _ := now.Date()
		start := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		return model.DateRange{Start: start, End: now}, nil
	case PresetLast30Days:
		return model.DateRange{Start: now.AddDate(0, 0, -30), End: now}, nil
	}
	return model.DateRange{}, fmt.Errorf("%w: unknown preset %q", domainErrors.ErrValidation, name)
}

// CustomRange validates a caller-supplied pair. Start must not fall on a
// later calendar day than end; a same-day pair is a valid one-bucket range.
func CustomRange(start, end time.Time) (model.DateRange, error) {
	if model.StartOfDay(start).After(model.StartOfDay(end)) {
		return model.DateRange{}, fmt.Errorf("%w: range start after end", domainErrors.ErrValidation)
	}
	return model.DateRange{Start: start, End: end}, nil
}
