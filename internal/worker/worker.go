package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/posilife/posilife/internal/model"
)

// Sender delivers one notification. The push client satisfies this.
type Sender interface {
	Send(title, message string) error
}

// Worker is the platform notification collaborator: it holds the installed
// schedule and fires each slot at its trigger instant. It implements
// notify.Installer, so the dispatcher's replace-all run lands here.
//
// The loop is event-driven: it sleeps until the earliest upcoming trigger
// and re-evaluates on Refresh signals instead of polling.
type Worker struct {
	mu         sync.Mutex
	sender     Sender
	slots      map[string]model.ScheduledNotification
	updateChan chan struct{}
}

func NewWorker(sender Sender) *Worker {
	return &Worker{
		sender:     sender,
		slots:      make(map[string]model.ScheduledNotification),
		updateChan: make(chan struct{}, 1),
	}
}

// CancelAll drops every installed slot.
func (w *Worker) CancelAll(ctx context.Context) error {
	w.mu.Lock()
	w.slots = make(map[string]model.ScheduledNotification)
	w.mu.Unlock()
	return nil
}

// Install adds one slot. A one-shot whose instant has already passed is
// stale and silently dropped.
func (w *Worker) Install(ctx context.Context, n model.ScheduledNotification) error {
	if !n.Repeats && !n.TriggerAt.After(time.Now()) {
		return nil
	}
	w.mu.Lock()
	w.slots[n.ID] = n
	w.mu.Unlock()
	return nil
}

// Pending returns the number of installed slots.
func (w *Worker) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.slots)
}

// Refresh signals the worker to re-evaluate the schedule immediately.
func (w *Worker) Refresh() {
	select {
	case w.updateChan <- struct{}{}:
	default:
		// A signal is already pending; the next wake-up covers this change.
	}
}

func (w *Worker) Start(ctx context.Context) {
	slog.Info("notification worker started")

	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		nextRun := w.fireDue(time.Now())

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		if nextRun.IsZero() {
			slog.Info("no scheduled notifications, worker idle")
		} else {
			duration := time.Until(nextRun)
			if duration < 0 {
				duration = 0
			}
			timer.Reset(duration)
			slog.Info("next notification scheduled", "in", duration, "at", nextRun.Format("15:04:05"))
		}

		select {
		case <-ctx.Done():
			slog.Info("notification worker stopped")
			return
		case <-w.updateChan:
			slog.Info("schedule changed, re-evaluating")
		case <-timer.C:
		}
	}
}

// fireDue sends every slot whose trigger instant has arrived and returns the
// earliest upcoming trigger across the remaining schedule. Delivery failures
// are logged and the slot moves on; a recurring slot just fires again next
// week.
func (w *Worker) fireDue(now time.Time) time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()

	var earliest time.Time
	for id, n := range w.slots {
		at := triggerInstant(n, now)
		if at.IsZero() {
			delete(w.slots, id)
			continue
		}

		if !at.After(now) {
			slog.Info("sending notification", "id", n.ID, "category", n.Payload.QuoteCategory, "scheduled", at.Format("15:04:05"))
			if err := w.sender.Send(n.Title, n.Body); err != nil {
				slog.Error("send notification", "id", n.ID, "error", err)
			}
			if !n.Repeats {
				delete(w.slots, id)
				continue
			}
			at = n.NextOccurrence(now)
		}

		if earliest.IsZero() || at.Before(earliest) {
			earliest = at
		}
	}
	return earliest
}

// triggerInstant is the slot's current trigger: the pending one-shot instant
// or the next weekly occurrence. Zero means the slot is spent.
func triggerInstant(n model.ScheduledNotification, now time.Time) time.Time {
	if !n.Repeats {
		if n.TriggerAt.After(now) {
			return n.TriggerAt
		}
		// Due (or just past due): deliver on this pass.
		if now.Sub(n.TriggerAt) <= time.Minute {
			return n.TriggerAt
		}
		return time.Time{}
	}
	at := n.Time.On(now)
	daysAhead := (int(n.Weekday) - int(now.Weekday()) + 7) % 7
	at = at.AddDate(0, 0, daysAhead)
	// Keep a slot due within the last minute firable instead of pushing it a
	// full week out.
	if at.Before(now.Add(-time.Minute)) {
		at = at.AddDate(0, 0, 7)
	}
	return at
}
