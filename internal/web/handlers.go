package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/posilife/posilife/internal/model"
	"github.com/posilife/posilife/internal/progress"
	"github.com/posilife/posilife/internal/ui"
)

type credentials struct {
	Password string `json:"password"`
}

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	if s.settings.Password() != "" {
		writeError(w, http.StatusConflict, "already set up")
		return
	}
	var creds credentials
	if err := readJSON(r, &creds); err != nil || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "password is required")
		return
	}
	if err := s.settings.SetPassword(creds.Password); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	password := s.settings.Password()
	if password == "" {
		writeError(w, http.StatusForbidden, "setup required")
		return
	}
	var creds credentials
	if err := readJSON(r, &creds); err != nil || creds.Password != password {
		writeError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token, expires := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    token,
		Expires:  expires,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, _ := r.Cookie("session_token"); cookie != nil {
		s.sessions.Revoke(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type agendaInfo struct {
	Agenda model.Agenda `json:"agenda"`
	Icon   string       `json:"icon"`
	Color  string       `json:"color"`
	Theme  []string     `json:"theme"`
}

func (s *Server) handleAgendas(w http.ResponseWriter, r *http.Request) {
	out := make([]agendaInfo, 0, len(model.Agendas))
	for _, a := range model.Agendas {
		out = append(out, agendaInfo{
			Agenda: a,
			Icon:   ui.AgendaIcon(a),
			Color:  ui.AgendaColor(a),
			Theme:  ui.AgendaTheme(a),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	agenda := s.goal.Agenda
	s.mu.Unlock()
	if raw := r.URL.Query().Get("agenda"); raw != "" {
		agenda = model.ParseAgenda(raw)
	}

	quote, ok := s.catalog.RandomForAgenda(agenda)
	if !ok {
		writeError(w, http.StatusNotFound, "no quotes for agenda")
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (s *Server) handleQuotesToday(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	goal := s.goal
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.catalog.ForToday(goal.Agenda, goal.QuotesPerDay))
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	goal := s.goal
	s.mu.Unlock()

	now := time.Now()
	writeJSON(w, http.StatusOK, map[string]any{
		"agenda":       goal.Agenda,
		"startDate":    goal.StartDate,
		"durationDays": goal.DurationDays,
		"elapsedDays":  progress.ElapsedDays(goal.StartDate, now),
		"fraction":     progress.Fraction(goal, now),
		"complete":     progress.Complete(goal, now),
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	goal := s.goal
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var goal model.GoalSettings
	if err := readJSON(r, &goal); err != nil {
		writeError(w, http.StatusBadRequest, "invalid settings: "+err.Error())
		return
	}
	goal.Normalize()
	if goal.StartDate.IsZero() {
		goal.StartDate = time.Now()
	}

	s.mu.Lock()
	s.goal = goal
	err := s.settings.SaveGoalSettings(goal)
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	s.Reschedule(r.Context())
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	goals := s.ledger.Goals()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, goals)
}

// handleCompleteGoal freezes the active goal into a history record and
// restarts the goal window from now. The recorded duration is the configured
// one once the period has fully elapsed, or the elapsed days when the user
// ends the goal early.
func (s *Server) handleCompleteGoal(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	goal := s.goal
	elapsed := progress.ElapsedDays(goal.StartDate, now)

	recordedDays := elapsed
	if goal.DurationDays > 0 && elapsed > goal.DurationDays {
		recordedDays = goal.DurationDays
	}
	quotesReceived := recordedDays * goal.QuotesPerDay

	record := model.NewCompletedGoal(goal.Agenda, goal.StartDate, now, recordedDays, quotesReceived)
	if err := s.ledger.Add(record); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist history")
		return
	}

	s.goal.StartDate = now
	if err := s.settings.SaveGoalSettings(s.goal); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	s.mu.Lock()
	err = s.ledger.Remove(id)
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist history")
		return
	}
	// Removing an unknown id is a no-op, not an error.
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := map[string]any{
		"totalGoals":     s.ledger.Len(),
		"totalDays":      s.ledger.TotalDays(),
		"totalQuotes":    s.ledger.TotalQuotes(),
		"countsByAgenda": s.ledger.CountsByAgenda(),
	}
	if best, ok := s.ledger.MostFocused(); ok {
		stats["mostFocused"] = best
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handlePending(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"count": s.worker.Pending()})
}
