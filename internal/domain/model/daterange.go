package model

import "time"

// DateRange is an inclusive interval compared at day granularity: Start is
// floored to midnight and End is stretched to the last instant of its
// calendar day whenever containment or bucketing is evaluated. The raw
// endpoints are kept as supplied so presets like "today" can report the
// actual resolution instant.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the day-aligned range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(StartOfDay(r.Start)) && !t.After(EndOfDay(r.End))
}

// Days returns the midnight of every calendar day in the range, inclusive of
// both endpoints. A single-day range yields exactly one element.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	last := StartOfDay(r.End)
	for d := StartOfDay(r.Start); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// StartOfDay floors t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999999999 of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
