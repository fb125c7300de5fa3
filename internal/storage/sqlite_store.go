package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/posilife/posilife/internal/model"
)

// SQLiteHistoryStore is the SQLite-backed history repository, for installs
// that want the history in a database instead of a flat file. It keeps the
// same replace-all contract as HistoryStore: Save rewrites the whole
// collection in one transaction.
type SQLiteHistoryStore struct {
	db *sql.DB
}

// OpenSQLiteHistoryStore opens (and creates if missing) the database at path
// and ensures the schema exists.
func OpenSQLiteHistoryStore(path string) (*SQLiteHistoryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS completed_goals (
		pos INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL,
		agenda TEXT NOT NULL,
		start_date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		duration INTEGER NOT NULL,
		quotes_received INTEGER NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteHistoryStore{db: db}, nil
}

func (s *SQLiteHistoryStore) Close() error { return s.db.Close() }

// Load returns the collection in insertion order.
func (s *SQLiteHistoryStore) Load() ([]model.CompletedGoal, error) {
	rows, err := s.db.Query(`
		SELECT id, agenda, start_date, end_date, duration, quotes_received
		FROM completed_goals
		ORDER BY pos
	`)
	if err != nil {
		return nil, fmt.Errorf("history select: %w", err)
	}
	defer rows.Close()

	var goals []model.CompletedGoal
	for rows.Next() {
		var g model.CompletedGoal
		var id, agenda string
		var start, end time.Time
		if err := rows.Scan(&id, &agenda, &start, &end, &g.DurationDays, &g.QuotesReceived); err != nil {
			return nil, fmt.Errorf("history scan: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("history id %q: %w", id, err)
		}
		g.ID = parsed
		g.Agenda = model.Agenda(agenda)
		g.StartDate = start
		g.EndDate = end
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history rows: %w", err)
	}
	return goals, nil
}

// Save replaces the stored collection atomically.
func (s *SQLiteHistoryStore) Save(goals []model.CompletedGoal) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("history tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM completed_goals`); err != nil {
		return fmt.Errorf("history clear: %w", err)
	}
	for _, g := range goals {
		_, err := tx.Exec(`
			INSERT INTO completed_goals (id, agenda, start_date, end_date, duration, quotes_received)
			VALUES (?, ?, ?, ?, ?, ?)
		`, g.ID.String(), string(g.Agenda), g.StartDate, g.EndDate, g.DurationDays, g.QuotesReceived)
		if err != nil {
			return fmt.Errorf("history insert: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("history commit: %w", err)
	}
	return nil
}
