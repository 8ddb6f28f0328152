package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Thuydung43/Xanh-dashboard/internal/service"
)

// StatsProvider serves the dashboard aggregates.
type StatsProvider interface {
	Hourly(ctx context.Context, date, city, contractType string) ([]service.HourlyRow, error)
	KPI(ctx context.Context, date, city, contractType string) (*service.KPI, error)
}

func HourlyHandler(stats StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := requireDate(w, r)
		if !ok {
			return
		}

		rows, err := stats.Hourly(r.Context(), date, r.URL.Query().Get("city"), r.URL.Query().Get("type"))
		if err != nil {
			slog.Error("hourly query failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}

func KPIHandler(stats StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := requireDate(w, r)
		if !ok {
			return
		}

		kpi, err := stats.KPI(r.Context(), date, r.URL.Query().Get("city"), r.URL.Query().Get("type"))
		if err != nil {
			slog.Error("kpi query failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(kpi); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}

// requireDate validates the date query parameter as YYYY-MM-DD.
func requireDate(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date is required", http.StatusBadRequest)
		return "", false
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return "", false
	}
	return date, true
}
