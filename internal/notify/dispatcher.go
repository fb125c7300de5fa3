// Package notify hands planner output to the platform notification
// collaborator and carries the push client used for actual delivery.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/posilife/posilife/internal/model"
)

// Installer is the platform notification collaborator: it cancels pending
// items and installs new ones. Permission checks and delivery are its
// problem, not the planner's.
type Installer interface {
	CancelAll(ctx context.Context) error
	Install(ctx context.Context, n model.ScheduledNotification) error
}

// Dispatcher applies a plan to an Installer with replace-all semantics.
// Apply is the single mutual-exclusion point for scheduling: two concurrent
// runs must not interleave their cancel/install steps, or stale and fresh
// slots could coexist.
type Dispatcher struct {
	mu        sync.Mutex
	installer Installer
}

func NewDispatcher(installer Installer) *Dispatcher {
	return &Dispatcher{installer: installer}
}

// Apply cancels every previously installed item, then installs the plan.
// Per-item install failures are logged and skipped; they never fail the
// whole run.
func (d *Dispatcher) Apply(ctx context.Context, plan []model.ScheduledNotification) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.installer.CancelAll(ctx); err != nil {
		return err
	}
	for _, n := range plan {
		if err := d.installer.Install(ctx, n); err != nil {
			slog.Error("install notification", "id", n.ID, "error", err)
		}
	}
	slog.Info("notification schedule replaced", "items", len(plan))
	return nil
}
