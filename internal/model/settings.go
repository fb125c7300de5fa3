package model

import "time"

const (
	// MaxReminderTimes caps how many daily reminders a user may configure.
	MaxReminderTimes = 5

	MinQuotesPerDay = 1
	MaxQuotesPerDay = 10

	DefaultDurationDays = 60
	DefaultQuotesPerDay = 3
)

// GoalSettings is the active time-boxed focus goal plus its reminder
// configuration. Owned by the application session, persisted field by field.
type GoalSettings struct {
	Agenda               Agenda      `json:"agenda"`
	StartDate            time.Time   `json:"startDate"`
	DurationDays         int         `json:"durationDays"`
	ReminderTimes        []TimeOfDay `json:"reminderTimes"`
	QuotesPerDay         int         `json:"quotesPerDay"`
	NotificationsEnabled bool        `json:"notificationsEnabled"`
}

// DefaultGoalSettings mirrors the defaults applied when nothing has been
// persisted yet: a General goal starting now with a single 09:00 reminder.
func DefaultGoalSettings(now time.Time) GoalSettings {
	return GoalSettings{
		Agenda:        DefaultAgenda,
		StartDate:     now,
		DurationDays:  DefaultDurationDays,
		ReminderTimes: []TimeOfDay{{Hour: 9}},
		QuotesPerDay:  DefaultQuotesPerDay,
	}
}

// Normalize clamps fields into their documented ranges. DurationDays is left
// untouched: the model tolerates any positive integer, and degenerate values
// are handled by the progress computation.
func (s *GoalSettings) Normalize() {
	if !s.Agenda.IsValid() {
		s.Agenda = DefaultAgenda
	}
	if len(s.ReminderTimes) > MaxReminderTimes {
		s.ReminderTimes = s.ReminderTimes[:MaxReminderTimes]
	}
	valid := s.ReminderTimes[:0]
	for _, t := range s.ReminderTimes {
		if t.IsValid() {
			valid = append(valid, t)
		}
	}
	s.ReminderTimes = valid
	if s.QuotesPerDay < MinQuotesPerDay {
		s.QuotesPerDay = MinQuotesPerDay
	}
	if s.QuotesPerDay > MaxQuotesPerDay {
		s.QuotesPerDay = MaxQuotesPerDay
	}
}
