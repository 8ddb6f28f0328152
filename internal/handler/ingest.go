package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Thuydung43/Xanh-dashboard/internal/service"
)

const defaultVehicleType = "Motorcycle"

// Ingester runs one fetch-and-store pass over the admin API.
type Ingester interface {
	Run(ctx context.Context, from, to int64, vehicleType string) (*service.Summary, error)
}

func IngestHandler(ingest Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, err := strconv.ParseInt(r.URL.Query().Get("from_ts"), 10, 64)
		if err != nil {
			http.Error(w, "from_ts must be an integer epoch", http.StatusBadRequest)
			return
		}
		to, err := strconv.ParseInt(r.URL.Query().Get("to_ts"), 10, 64)
		if err != nil {
			http.Error(w, "to_ts must be an integer epoch", http.StatusBadRequest)
			return
		}

		vehicleType := r.URL.Query().Get("vehicle_type")
		if vehicleType == "" {
			vehicleType = defaultVehicleType
		}

		summary, err := ingest.Run(r.Context(), from, to, vehicleType)
		if err != nil {
			writeIngestError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}

func writeIngestError(w http.ResponseWriter, err error) {
	var upstream *service.UpstreamError
	var config *service.ConfigError

	switch {
	case errors.As(err, &upstream):
		slog.Error("admin fetch failed", "error", err)
		http.Error(w, upstream.Error(), http.StatusBadGateway)
	case errors.As(err, &config):
		http.Error(w, config.Error(), http.StatusInternalServerError)
	case errors.Is(err, service.ErrBadFormat):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		slog.Error("ingest failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
