package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/posilife/posilife/internal/model"
)

// HistoryStore persists the completed-goal collection as a single JSON file,
// rewritten in full on every save. It implements history.Repository.
type HistoryStore struct {
	filePath string
}

func NewHistoryStore(filePath string) *HistoryStore {
	return &HistoryStore{filePath: filePath}
}

// Load reads the full collection. A missing or empty file is an empty
// history, and a file that fails to decode also degrades to empty: partial
// recovery of a corrupt history is deliberately not attempted. Only real
// read errors (permissions and the like) are reported.
func (s *HistoryStore) Load() ([]model.CompletedGoal, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var goals []model.CompletedGoal
	if err := json.Unmarshal(data, &goals); err != nil {
		slog.Warn("history file is corrupt, treating as empty", "path", s.filePath, "error", err)
		return nil, nil
	}
	return goals, nil
}

// Save replaces the stored collection. Records always go out under the
// corrected quotesReceived key, regardless of what key they were read with.
func (s *HistoryStore) Save(goals []model.CompletedGoal) error {
	if goals == nil {
		goals = []model.CompletedGoal{}
	}
	data, err := json.MarshalIndent(goals, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}
