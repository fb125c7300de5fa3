package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CompletedGoal is a historical record frozen when a goal's period ends.
// The agenda is a copy taken at completion time; it never tracks later
// settings changes. Immutable once created, except for deletion.
type CompletedGoal struct {
	ID             uuid.UUID `json:"id"`
	Agenda         Agenda    `json:"agenda"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	DurationDays   int       `json:"duration"`
	QuotesReceived int       `json:"quotesReceived"`
}

// NewCompletedGoal freezes a completed goal record. endDate is clamped so it
// never precedes startDate, and quotesReceived never goes negative.
func NewCompletedGoal(agenda Agenda, startDate, endDate time.Time, durationDays, quotesReceived int) CompletedGoal {
	if endDate.Before(startDate) {
		endDate = startDate
	}
	if quotesReceived < 0 {
		quotesReceived = 0
	}
	return CompletedGoal{
		ID:             uuid.New(),
		Agenda:         agenda,
		StartDate:      startDate,
		EndDate:        endDate,
		DurationDays:   durationDays,
		QuotesReceived: quotesReceived,
	}
}

// completedGoalJSON carries both the current and the legacy misspelled key
// for quotesReceived. Old installs persisted "quotesRecieved"; we accept it
// on read and always write the corrected key.
type completedGoalJSON struct {
	ID             uuid.UUID `json:"id"`
	Agenda         Agenda    `json:"agenda"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	DurationDays   int       `json:"duration"`
	QuotesReceived *int      `json:"quotesReceived"`
	LegacyQuotes   *int      `json:"quotesRecieved"`
}

func (g *CompletedGoal) UnmarshalJSON(data []byte) error {
	var raw completedGoalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.ID = raw.ID
	g.Agenda = raw.Agenda
	g.StartDate = raw.StartDate
	g.EndDate = raw.EndDate
	g.DurationDays = raw.DurationDays
	switch {
	case raw.QuotesReceived != nil:
		g.QuotesReceived = *raw.QuotesReceived
	case raw.LegacyQuotes != nil:
		g.QuotesReceived = *raw.LegacyQuotes
	default:
		g.QuotesReceived = 0
	}
	return nil
}
