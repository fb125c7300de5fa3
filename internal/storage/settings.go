package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/posilife/posilife/internal/model"
)

// Settings keys, kept compatible with what earlier app versions persisted.
const (
	keyAgenda        = "selectedAgenda"
	keyStartDate     = "agendaStartDate"
	keyDuration      = "agendaDuration"
	keyReminderTimes = "reminderTimes"
	keyQuotesPerDay  = "quotesPerDay"
	keyNotifications = "notificationsEnabled"
	keyPassword      = "password"
)

// SettingsStore is a key-value store for goal settings, one JSON object per
// file. Each field is decoded independently: a missing or corrupt key falls
// back to its default instead of failing the whole load.
type SettingsStore struct {
	filePath string
}

func NewSettingsStore(filePath string) *SettingsStore {
	return &SettingsStore{filePath: filePath}
}

func (s *SettingsStore) read() map[string]json.RawMessage {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("settings file unreadable, using defaults", "path", s.filePath, "error", err)
		}
		return nil
	}
	var kv map[string]json.RawMessage
	if err := json.Unmarshal(data, &kv); err != nil {
		slog.Warn("settings file is corrupt, using defaults", "path", s.filePath, "error", err)
		return nil
	}
	return kv
}

func decodeKey[T any](kv map[string]json.RawMessage, key string, fallback T) T {
	raw, ok := kv[key]
	if !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("settings key is corrupt, using default", "key", key, "error", err)
		return fallback
	}
	return v
}

// LoadGoalSettings returns the persisted goal settings, with defaults for
// anything missing or corrupt. now seeds the default start date.
func (s *SettingsStore) LoadGoalSettings(now time.Time) model.GoalSettings {
	defaults := model.DefaultGoalSettings(now)
	kv := s.read()
	if kv == nil {
		return defaults
	}

	settings := model.GoalSettings{
		Agenda:               decodeKey(kv, keyAgenda, defaults.Agenda),
		StartDate:            decodeKey(kv, keyStartDate, defaults.StartDate),
		DurationDays:         decodeKey(kv, keyDuration, defaults.DurationDays),
		ReminderTimes:        decodeKey(kv, keyReminderTimes, defaults.ReminderTimes),
		QuotesPerDay:         decodeKey(kv, keyQuotesPerDay, defaults.QuotesPerDay),
		NotificationsEnabled: decodeKey(kv, keyNotifications, defaults.NotificationsEnabled),
	}
	settings.Normalize()
	return settings
}

// SaveGoalSettings persists the goal settings, preserving unrelated keys
// (such as the auth password) already in the file.
func (s *SettingsStore) SaveGoalSettings(settings model.GoalSettings) error {
	kv := s.read()
	if kv == nil {
		kv = make(map[string]json.RawMessage)
	}
	setKey(kv, keyAgenda, settings.Agenda)
	setKey(kv, keyStartDate, settings.StartDate)
	setKey(kv, keyDuration, settings.DurationDays)
	setKey(kv, keyReminderTimes, settings.ReminderTimes)
	setKey(kv, keyQuotesPerDay, settings.QuotesPerDay)
	setKey(kv, keyNotifications, settings.NotificationsEnabled)
	return s.write(kv)
}

// Password returns the stored auth password, empty when unset.
func (s *SettingsStore) Password() string {
	return decodeKey(s.read(), keyPassword, "")
}

// SetPassword persists the auth password.
func (s *SettingsStore) SetPassword(password string) error {
	kv := s.read()
	if kv == nil {
		kv = make(map[string]json.RawMessage)
	}
	setKey(kv, keyPassword, password)
	return s.write(kv)
}

func setKey(kv map[string]json.RawMessage, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		// Only reachable for unmarshalable types; nothing stored here is one.
		slog.Error("encode settings key", "key", key, "error", err)
		return
	}
	kv[key] = raw
}

func (s *SettingsStore) write(kv map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(kv, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
