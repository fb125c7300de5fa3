// Package web is the HTTP surface: a cookie-session-gated JSON API over the
// goal tracker, quote catalog, history ledger and notification schedule.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/posilife/posilife/internal/history"
	"github.com/posilife/posilife/internal/model"
	"github.com/posilife/posilife/internal/notify"
	"github.com/posilife/posilife/internal/planner"
	"github.com/posilife/posilife/internal/quotes"
	"github.com/posilife/posilife/internal/storage"
	"github.com/posilife/posilife/internal/worker"
)

type Server struct {
	// mu serializes settings and ledger mutations. The ledger itself is not
	// internally synchronized; this is the required external serialization.
	mu sync.Mutex

	settings *storage.SettingsStore
	goal     model.GoalSettings
	ledger   *history.Ledger
	catalog  *quotes.Catalog
	planner  *planner.Planner

	dispatcher *notify.Dispatcher
	worker     *worker.Worker

	sessions *SessionStore
	router   *http.ServeMux
}

func NewServer(settings *storage.SettingsStore, ledger *history.Ledger, catalog *quotes.Catalog, p *planner.Planner, dispatcher *notify.Dispatcher, w *worker.Worker) *Server {
	s := &Server{
		settings:   settings,
		goal:       settings.LoadGoalSettings(time.Now()),
		ledger:     ledger,
		catalog:    catalog,
		planner:    p,
		dispatcher: dispatcher,
		worker:     w,
		sessions:   NewSessionStore(),
		router:     http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// Public routes
	s.router.HandleFunc("POST /api/setup", s.handleSetup)
	s.router.HandleFunc("POST /api/login", s.handleLogin)
	s.router.HandleFunc("POST /api/logout", s.handleLogout)

	// Protected routes
	s.router.HandleFunc("GET /api/agendas", s.auth(s.handleAgendas))
	s.router.HandleFunc("GET /api/quote", s.auth(s.handleQuote))
	s.router.HandleFunc("GET /api/quotes/today", s.auth(s.handleQuotesToday))
	s.router.HandleFunc("GET /api/progress", s.auth(s.handleProgress))
	s.router.HandleFunc("GET /api/settings", s.auth(s.handleGetSettings))
	s.router.HandleFunc("PUT /api/settings", s.auth(s.handlePutSettings))
	s.router.HandleFunc("GET /api/history", s.auth(s.handleHistory))
	s.router.HandleFunc("POST /api/history/complete", s.auth(s.handleCompleteGoal))
	s.router.HandleFunc("DELETE /api/history/{id}", s.auth(s.handleDeleteGoal))
	s.router.HandleFunc("GET /api/history/stats", s.auth(s.handleStats))
	s.router.HandleFunc("GET /api/notifications/pending", s.auth(s.handlePending))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Reschedule recomputes the notification plan from the current settings and
// replaces the installed schedule. Called at startup and after every
// settings change.
func (s *Server) Reschedule(ctx context.Context) {
	s.mu.Lock()
	goal := s.goal
	s.mu.Unlock()

	var plan []model.ScheduledNotification
	if goal.NotificationsEnabled {
		plan = s.planner.PlanRecurring(goal.ReminderTimes, s.catalog.All(), goal.Agenda)
	}
	if err := s.dispatcher.Apply(ctx, plan); err != nil {
		slog.Error("apply notification schedule", "error", err)
		return
	}
	s.worker.Refresh()
}

// auth is the session-cookie gate in front of every app route.
func (s *Server) auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.settings.Password() == "" {
			writeError(w, http.StatusForbidden, "setup required")
			return
		}
		cookie, err := r.Cookie("session_token")
		if err != nil || cookie.Value == "" || !s.sessions.Valid(cookie.Value) {
			writeError(w, http.StatusUnauthorized, "not signed in")
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
