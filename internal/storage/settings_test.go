package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posilife/posilife/internal/model"
)

func TestSettingsDefaultsWhenMissing(t *testing.T) {
	store := NewSettingsStore(filepath.Join(t.TempDir(), "settings.json"))

	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	got := store.LoadGoalSettings(now)

	assert.Equal(t, model.AgendaGeneral, got.Agenda)
	assert.True(t, now.Equal(got.StartDate))
	assert.Equal(t, model.DefaultDurationDays, got.DurationDays)
	assert.Equal(t, model.DefaultQuotesPerDay, got.QuotesPerDay)
	assert.Equal(t, []model.TimeOfDay{{Hour: 9}}, got.ReminderTimes)
	assert.False(t, got.NotificationsEnabled)
}

func TestSettingsRoundTrip(t *testing.T) {
	store := NewSettingsStore(filepath.Join(t.TempDir(), "settings.json"))

	saved := model.GoalSettings{
		Agenda:               model.AgendaFitness,
		StartDate:            time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC),
		DurationDays:         28,
		ReminderTimes:        []model.TimeOfDay{{Hour: 7, Minute: 30}, {Hour: 21}},
		QuotesPerDay:         5,
		NotificationsEnabled: true,
	}
	require.NoError(t, store.SaveGoalSettings(saved))

	got := store.LoadGoalSettings(time.Now())
	assert.Equal(t, saved.Agenda, got.Agenda)
	assert.True(t, saved.StartDate.Equal(got.StartDate))
	assert.Equal(t, saved.DurationDays, got.DurationDays)
	assert.Equal(t, saved.ReminderTimes, got.ReminderTimes)
	assert.Equal(t, saved.QuotesPerDay, got.QuotesPerDay)
	assert.True(t, got.NotificationsEnabled)
}

func TestSettingsCorruptKeyFallsBackPerField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	blob := `{
		"selectedAgenda": "Fitness",
		"agendaDuration": "not a number",
		"quotesPerDay": 5
	}`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0644))

	store := NewSettingsStore(path)
	got := store.LoadGoalSettings(time.Now())

	// Valid keys survive, the corrupt one falls back alone.
	assert.Equal(t, model.AgendaFitness, got.Agenda)
	assert.Equal(t, model.DefaultDurationDays, got.DurationDays)
	assert.Equal(t, 5, got.QuotesPerDay)
}

func TestSettingsSavePreservesPassword(t *testing.T) {
	store := NewSettingsStore(filepath.Join(t.TempDir(), "settings.json"))

	require.NoError(t, store.SetPassword("hunter2"))
	require.NoError(t, store.SaveGoalSettings(model.DefaultGoalSettings(time.Now())))
	assert.Equal(t, "hunter2", store.Password())
}
