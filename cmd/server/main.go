package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Jelly-ChinChan/Zoology-app/internal/api"
	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/quiz"
	"github.com/Jelly-ChinChan/Zoology-app/internal/infrastructure/config"
	"github.com/Jelly-ChinChan/Zoology-app/internal/service"
	"github.com/Jelly-ChinChan/Zoology-app/internal/store"
	"github.com/Jelly-ChinChan/Zoology-app/internal/ws"

	_ "github.com/Jelly-ChinChan/Zoology-app/docs" // generated swagger docs
)

// @title           Zoology Vocabulary Drill API
// @version         1.0
// @description     Chinese/English zoology vocabulary drills: multiple-choice and typed rounds over a shared glossary.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.Open(ctx, store.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	glossary := service.NewGlossaryService(db, logger)
	if len(cfg.GlossaryFiles) > 0 {
		terms, err := glossary.ImportFiles(ctx, cfg.GlossaryFiles, cfg.LoaderWorkers)
		if err != nil {
			logger.Error("failed to import glossary files", "files", cfg.GlossaryFiles, "error", err)
			os.Exit(1)
		}
		logger.Info("glossary imported", "files", len(cfg.GlossaryFiles), "terms", len(terms))
	}
	if n, err := db.CountTerms(ctx); err == nil && n == 0 {
		logger.Warn("glossary is empty; sessions cannot start until terms are imported")
	}

	drills := service.NewDrillService(db, quiz.SessionConfig{
		MaxRounds:         cfg.MaxRounds,
		QuestionsPerRound: cfg.QuestionsPerRound,
		MaxMistakes:       cfg.MaxMistakes,
	}, logger)
	go drills.ExpireIdle(ctx, cfg.SessionTTL)
	handler := api.NewHandler(glossary, drills, logger)

	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)
	mux.Handle("GET /ws", ws.NewHandler(drills, hub, logger, cfg.CORSAllowedOrigins))

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           api.Chain(mux, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "db_driver", cfg.DBDriver)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
