// Package planner turns reminder times and a quote pool into a concrete set
// of notification slots. It is a pure planning step: no platform I/O happens
// here, and a produced plan can be discarded without cleanup. Installation
// (and its cancel-all-then-install-all transaction) belongs to the notify
// dispatcher.
package planner

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/posilife/posilife/internal/model"
)

const (
	recurringTitle = "Daily Motivation"
	dailyTitle     = "Daily Inspiration"

	// WeekDays is the recurrence grid width: one slot per weekday.
	WeekDays = 7
)

// Planner selects quote content for notification slots. Selection is
// uniform-random per slot, independently per slot; the same quote may
// repeat across slots.
type Planner struct {
	rng *rand.Rand
}

func New() *Planner {
	return &Planner{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a planner with deterministic content selection.
func NewSeeded(seed uint64) *Planner {
	return &Planner{rng: rand.New(rand.NewPCG(seed, seed))}
}

func filterByAgenda(pool []model.Quote, agenda model.Agenda) []model.Quote {
	var out []model.Quote
	for _, q := range pool {
		if q.Category == agenda {
			out = append(out, q)
		}
	}
	return out
}

func (p *Planner) pick(pool []model.Quote) model.Quote {
	return pool[p.rng.IntN(len(pool))]
}

// PlanRecurring produces one weekly-recurring slot per (reminder time ×
// weekday) pair: len(reminderTimes) × 7 items. Slot identity is derived from
// the two grid indices, so re-planning is idempotent in terms of identity
// even though content selection is randomized. An empty pool for the active
// agenda produces no items.
func (p *Planner) PlanRecurring(reminderTimes []model.TimeOfDay, pool []model.Quote, agenda model.Agenda) []model.ScheduledNotification {
	agendaQuotes := filterByAgenda(pool, agenda)
	if len(agendaQuotes) == 0 {
		return nil
	}

	var plan []model.ScheduledNotification
	for timeIndex, at := range reminderTimes {
		for day := 0; day < WeekDays; day++ {
			weekday := time.Weekday(day)
			quote := p.pick(agendaQuotes)
			plan = append(plan, model.ScheduledNotification{
				ID:    fmt.Sprintf("recurring_quote_%d_%d", timeIndex, day),
				Title: recurringTitle,
				Body:  quote.Text,
				Payload: model.NotificationPayload{
					QuoteText:      quote.Text,
					QuoteAuthor:    quote.Author,
					QuoteCategory:  quote.Category,
					ShowFullScreen: true,
				},
				Repeats: true,
				Weekday: weekday,
				Time:    at,
			})
		}
	}
	return plan
}

// PlanWeek produces one-shot slots covering the next 7 calendar days from
// now, one per (day offset × reminder time). Slots whose instant has already
// passed today are still produced; the delivery layer skips stale one-shots.
func (p *Planner) PlanWeek(now time.Time, reminderTimes []model.TimeOfDay, pool []model.Quote, agenda model.Agenda) []model.ScheduledNotification {
	agendaQuotes := filterByAgenda(pool, agenda)
	if len(agendaQuotes) == 0 {
		return nil
	}

	var plan []model.ScheduledNotification
	for dayOffset := 0; dayOffset < WeekDays; dayOffset++ {
		target := now.AddDate(0, 0, dayOffset)
		for timeIndex, at := range reminderTimes {
			quote := p.pick(agendaQuotes)
			plan = append(plan, model.ScheduledNotification{
				ID:    fmt.Sprintf("quote_%d_%d", dayOffset, timeIndex),
				Title: dailyTitle,
				Body:  quote.Text,
				Payload: model.NotificationPayload{
					QuoteText:     quote.Text,
					QuoteAuthor:   quote.Author,
					QuoteCategory: quote.Category,
				},
				TriggerAt: at.On(target),
			})
		}
	}
	return plan
}
