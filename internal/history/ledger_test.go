package history

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posilife/posilife/internal/model"
)

// fakeRepo is an in-memory Repository with togglable failure modes.
type fakeRepo struct {
	goals   []model.CompletedGoal
	loadErr error
	saveErr error
	saves   int
}

func (r *fakeRepo) Load() ([]model.CompletedGoal, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]model.CompletedGoal, len(r.goals))
	copy(out, r.goals)
	return out, nil
}

func (r *fakeRepo) Save(goals []model.CompletedGoal) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.goals = make([]model.CompletedGoal, len(goals))
	copy(r.goals, goals)
	return nil
}

func goalWith(agenda model.Agenda, days, quotes int) model.CompletedGoal {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	return model.NewCompletedGoal(agenda, start, start.AddDate(0, 0, days), days, quotes)
}

func TestAddPersistsAndPreservesOrder(t *testing.T) {
	repo := &fakeRepo{}
	l := NewLedger(repo)

	first := goalWith(model.AgendaHealth, 7, 21)
	second := goalWith(model.AgendaHealth, 14, 42)
	require.NoError(t, l.Add(first))
	require.NoError(t, l.Add(second))

	got := l.Goals()
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, 2, repo.saves)

	// Simulated restart picks up exactly what was persisted.
	reloaded := NewLedger(repo)
	assert.Equal(t, got, reloaded.Goals())
}

func TestAddKeepsZeroQuotes(t *testing.T) {
	repo := &fakeRepo{}
	l := NewLedger(repo)
	require.NoError(t, l.Add(goalWith(model.AgendaStudy, 7, 0)))

	reloaded := NewLedger(repo)
	require.Equal(t, 1, reloaded.Len())
	assert.Equal(t, 0, reloaded.Goals()[0].QuotesReceived)
}

func TestLoadFailureDegradesToEmpty(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("corrupt")}
	l := NewLedger(repo)
	assert.Equal(t, 0, l.Len())
}

func TestRemoveByIdentityIsIdempotent(t *testing.T) {
	repo := &fakeRepo{}
	l := NewLedger(repo)

	keep := goalWith(model.AgendaJob, 7, 7)
	drop := goalWith(model.AgendaJob, 14, 14)
	require.NoError(t, l.Add(keep))
	require.NoError(t, l.Add(drop))

	require.NoError(t, l.Remove(drop.ID))
	require.Equal(t, 1, l.Len())
	after := l.Goals()

	// Second removal of the same id changes nothing.
	require.NoError(t, l.Remove(drop.ID))
	assert.Equal(t, after, l.Goals())

	// Unknown ids are a no-op, not an error, and do not trigger a save.
	saves := repo.saves
	require.NoError(t, l.Remove(uuid.New()))
	assert.Equal(t, saves, repo.saves)
}

func TestSaveFailureIsReportedButStateKept(t *testing.T) {
	repo := &fakeRepo{}
	l := NewLedger(repo)

	repo.saveErr = errors.New("disk full")
	goal := goalWith(model.AgendaFitness, 7, 21)
	err := l.Add(goal)
	require.Error(t, err)

	// In-memory state keeps the goal; memory and storage diverge until the
	// next successful save.
	require.Equal(t, 1, l.Len())
	assert.Empty(t, repo.goals)

	repo.saveErr = nil
	require.NoError(t, l.Add(goalWith(model.AgendaFitness, 7, 21)))
	assert.Len(t, repo.goals, 2)
}

func TestStatsScenario(t *testing.T) {
	repo := &fakeRepo{}
	l := NewLedger(repo)

	require.NoError(t, l.Add(goalWith(model.AgendaHealth, 7, 21)))
	require.NoError(t, l.Add(goalWith(model.AgendaHealth, 14, 42)))
	require.NoError(t, l.Add(goalWith(model.AgendaStudy, 30, 90)))

	assert.Equal(t, 51, l.TotalDays())
	assert.Equal(t, 153, l.TotalQuotes())
	assert.Equal(t, map[model.Agenda]int{
		model.AgendaHealth: 2,
		model.AgendaStudy:  1,
	}, l.CountsByAgenda())

	best, ok := l.MostFocused()
	require.True(t, ok)
	assert.Equal(t, model.AgendaHealth, best)
}

func TestCountsSumToTotal(t *testing.T) {
	repo := &fakeRepo{}
	l := NewLedger(repo)
	agendas := []model.Agenda{
		model.AgendaGeneral, model.AgendaStudy, model.AgendaGeneral,
		model.AgendaFitness, model.AgendaStudy, model.AgendaGeneral,
	}
	for _, a := range agendas {
		require.NoError(t, l.Add(goalWith(a, 7, 7)))
	}

	counts := l.CountsByAgenda()
	sum := 0
	for _, n := range counts {
		assert.GreaterOrEqual(t, n, 1)
		sum += n
	}
	assert.Equal(t, l.Len(), sum)
}

func TestMostFocusedTieBreaksInCanonicalOrder(t *testing.T) {
	repo := &fakeRepo{}
	l := NewLedger(repo)

	// Fitness added first, but Study comes earlier in canonical order.
	require.NoError(t, l.Add(goalWith(model.AgendaFitness, 7, 7)))
	require.NoError(t, l.Add(goalWith(model.AgendaStudy, 7, 7)))

	best, ok := l.MostFocused()
	require.True(t, ok)
	assert.Equal(t, model.AgendaStudy, best)
}

func TestMostFocusedEmpty(t *testing.T) {
	l := NewLedger(&fakeRepo{})
	_, ok := l.MostFocused()
	assert.False(t, ok)
}
