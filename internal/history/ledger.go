// Package history keeps the ledger of completed goals and its derived
// statistics. Persistence is delegated to an injectable Repository; every
// mutation writes the full collection back.
package history

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/posilife/posilife/internal/model"
)

// Repository loads and saves the complete goal collection. Save replaces
// whatever was stored before; there is no partial-update protocol.
type Repository interface {
	Load() ([]model.CompletedGoal, error)
	Save(goals []model.CompletedGoal) error
}

// Ledger is an insertion-ordered collection of completed goals.
//
// Not safe for concurrent mutation: callers must serialize Add/Remove
// relative to each other. The web layer holds that lock.
type Ledger struct {
	repo  Repository
	goals []model.CompletedGoal
}

// NewLedger constructs a ledger populated from the repository. A load
// failure degrades the whole collection to empty rather than surfacing a
// hard error; partial recovery is deliberately not attempted.
func NewLedger(repo Repository) *Ledger {
	goals, err := repo.Load()
	if err != nil {
		slog.Warn("history load failed, starting with empty ledger", "error", err)
		goals = nil
	}
	return &Ledger{repo: repo, goals: goals}
}

// Goals returns a copy of the collection in insertion order.
func (l *Ledger) Goals() []model.CompletedGoal {
	out := make([]model.CompletedGoal, len(l.goals))
	copy(out, l.goals)
	return out
}

func (l *Ledger) Len() int { return len(l.goals) }

// Add appends the goal and persists the full collection. Duplicate agendas
// are expected over time; no deduplication happens. On a persistence error
// the in-memory state keeps the goal and the error is returned so the
// caller can retry; memory and storage diverge until the next save.
func (l *Ledger) Add(goal model.CompletedGoal) error {
	l.goals = append(l.goals, goal)
	if err := l.repo.Save(l.goals); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

// Remove deletes the goals with the given identities and re-persists.
// Unknown ids are a no-op; removal is by identity, never by index.
func (l *Ledger) Remove(ids ...uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := l.goals[:0]
	removed := false
	for _, g := range l.goals {
		if drop[g.ID] {
			removed = true
			continue
		}
		kept = append(kept, g)
	}
	l.goals = kept
	if !removed {
		return nil
	}
	if err := l.repo.Save(l.goals); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}
