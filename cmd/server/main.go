package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/posilife/posilife/internal/config"
	"github.com/posilife/posilife/internal/history"
	"github.com/posilife/posilife/internal/notify"
	"github.com/posilife/posilife/internal/planner"
	"github.com/posilife/posilife/internal/quotes"
	"github.com/posilife/posilife/internal/storage"
	"github.com/posilife/posilife/internal/web"
	"github.com/posilife/posilife/internal/worker"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfgPath := os.Getenv("POSILIFE_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	repo, closeRepo, err := openHistoryRepo(cfg)
	if err != nil {
		slog.Error("failed to open history storage", "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	ledger := history.NewLedger(repo)
	settings := storage.NewSettingsStore(filepath.Join(cfg.Storage.Dir, "settings.json"))
	catalog := quotes.NewCatalog()

	client := notify.NewClient(cfg.Pushover.Token, cfg.Pushover.User)
	if !client.Enabled() {
		slog.Warn("push credentials not configured, notifications will not be delivered")
	}
	w := worker.NewWorker(client)
	dispatcher := notify.NewDispatcher(w)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	srv := web.NewServer(settings, ledger, catalog, planner.New(), dispatcher, w)
	srv.Reschedule(ctx)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server exited")
}

func openHistoryRepo(cfg *config.Config) (history.Repository, func(), error) {
	if err := os.MkdirAll(cfg.Storage.Dir, 0755); err != nil {
		return nil, nil, err
	}
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		store, err := storage.OpenSQLiteHistoryStore(filepath.Join(cfg.Storage.Dir, "history.db"))
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		store := storage.NewHistoryStore(filepath.Join(cfg.Storage.Dir, "history.json"))
		return store, func() {}, nil
	}
}
