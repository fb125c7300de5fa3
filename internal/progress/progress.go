// Package progress computes goal completion from externally owned settings.
// Everything here is a pure function; the tracker holds no state of its own.
package progress

import (
	"time"

	"github.com/posilife/posilife/internal/model"
)

// ElapsedDays returns the number of whole days between start and now,
// clamped at 0 when now precedes start. Partial days do not count.
func ElapsedDays(start, now time.Time) int {
	if now.Before(start) {
		return 0
	}
	return int(now.Sub(start).Hours() / 24)
}

// Fraction returns goal completion in [0, 1] at day granularity.
// A non-positive duration is degenerate input and reads as complete.
func Fraction(settings model.GoalSettings, now time.Time) float64 {
	if settings.DurationDays <= 0 {
		return 1.0
	}
	f := float64(ElapsedDays(settings.StartDate, now)) / float64(settings.DurationDays)
	if f > 1.0 {
		return 1.0
	}
	return f
}

// Complete reports whether the goal's period has fully elapsed.
func Complete(settings model.GoalSettings, now time.Time) bool {
	return Fraction(settings, now) >= 1.0
}
