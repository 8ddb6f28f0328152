package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Thuydung43/Xanh-dashboard/internal/config"
	"github.com/Thuydung43/Xanh-dashboard/internal/database"
	"github.com/Thuydung43/Xanh-dashboard/internal/handler"
	"github.com/Thuydung43/Xanh-dashboard/internal/mw"
	"github.com/Thuydung43/Xanh-dashboard/internal/service"
)

func main() {
	cfg := config.New()

	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(db)

	if err := database.InitSchema(db); err != nil {
		slog.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	// Services
	adminClient := service.NewAdminClient(cfg.AdminAPIURL, cfg.AdminAuth)
	ingestSvc := service.NewIngestService(db, adminClient)
	statsSvc := service.NewStatsService(db)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", handler.HomeHandler())

	r.Group(func(r chi.Router) {
		r.Use(mw.IngestKey(cfg.IngestKey))
		r.Get("/ingest", handler.IngestHandler(ingestSvc))
	})

	r.Get("/api/hourly", handler.HourlyHandler(statsSvc))
	r.Get("/api/kpi", handler.KPIHandler(statsSvc))

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
