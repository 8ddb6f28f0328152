package mw

import (
	"crypto/subtle"
	"net/http"
)

// IngestKey gates requests behind a shared secret passed as the "key" query
// parameter. An empty configured key disables the check.
func IngestKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key != "" {
				got := r.URL.Query().Get("key")
				if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
