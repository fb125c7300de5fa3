package history

import "github.com/posilife/posilife/internal/model"

// CountsByAgenda returns completed-goal counts per agenda. Agendas with no
// entries are absent from the map, not present with zero.
func (l *Ledger) CountsByAgenda() map[model.Agenda]int {
	counts := make(map[model.Agenda]int)
	for _, g := range l.goals {
		counts[g.Agenda]++
	}
	return counts
}

// MostFocused returns the agenda with the most completed goals. Ties break
// to the first agenda in canonical enumeration order, so the result is
// deterministic. ok is false when the ledger is empty.
func (l *Ledger) MostFocused() (best model.Agenda, ok bool) {
	counts := l.CountsByAgenda()
	max := 0
	for _, a := range model.Agendas {
		if counts[a] > max {
			max = counts[a]
			best = a
			ok = true
		}
	}
	return best, ok
}

// TotalDays sums durationDays over all completed goals.
func (l *Ledger) TotalDays() int {
	total := 0
	for _, g := range l.goals {
		total += g.DurationDays
	}
	return total
}

// TotalQuotes sums quotesReceived over all completed goals.
func (l *Ledger) TotalQuotes() int {
	total := 0
	for _, g := range l.goals {
		total += g.QuotesReceived
	}
	return total
}
