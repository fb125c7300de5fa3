package model

import "time"

// NotificationPayload is the data bound to a delivered notification so the
// client can render the quote (optionally full screen) when it is opened.
type NotificationPayload struct {
	QuoteText      string `json:"quoteText"`
	QuoteAuthor    string `json:"quoteAuthor"`
	QuoteCategory  Agenda `json:"quoteCategory"`
	ShowFullScreen bool   `json:"showFullScreen,omitempty"`
}

// ScheduledNotification is one planned delivery slot. It is derived state:
// recomputed in full on every scheduling call and never persisted.
//
// Repeats selects between the two trigger forms: a recurring slot fires every
// week at (Weekday, Time); a one-shot slot fires once at TriggerAt.
type ScheduledNotification struct {
	ID      string              `json:"id"`
	Title   string              `json:"title"`
	Body    string              `json:"body"`
	Payload NotificationPayload `json:"payload"`

	Repeats bool         `json:"repeats"`
	Weekday time.Weekday `json:"weekday,omitempty"`
	Time    TimeOfDay    `json:"time,omitempty"`

	TriggerAt time.Time `json:"triggerAt,omitzero"`
}

// NextOccurrence returns the next instant this slot fires strictly after now.
// One-shot slots return the zero time once TriggerAt has passed.
func (n ScheduledNotification) NextOccurrence(now time.Time) time.Time {
	if !n.Repeats {
		if n.TriggerAt.After(now) {
			return n.TriggerAt
		}
		return time.Time{}
	}
	at := n.Time.On(now)
	daysAhead := (int(n.Weekday) - int(now.Weekday()) + 7) % 7
	at = at.AddDate(0, 0, daysAhead)
	if !at.After(now) {
		at = at.AddDate(0, 0, 7)
	}
	return at
}
