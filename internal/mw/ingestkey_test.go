package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngestKey(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		key      string
		target   string
		wantCode int
	}{
		{"matching key passes", "s3cret", "/ingest?key=s3cret", http.StatusOK},
		{"wrong key rejected", "s3cret", "/ingest?key=guess", http.StatusUnauthorized},
		{"missing key rejected", "s3cret", "/ingest", http.StatusUnauthorized},
		{"empty config disables check", "", "/ingest", http.StatusOK},
		{"empty config ignores supplied key", "", "/ingest?key=whatever", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			IngestKey(tt.key)(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
