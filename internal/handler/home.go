package handler

import (
	"net/http"
)

const homeHTML = `<h2>Xanh Dashboard API</h2>
<ul>
  <li><b>Ingest:</b> /ingest?from_ts=...&amp;to_ts=...&amp;key=...</li>
  <li><b>Hourly:</b> /api/hourly?date=YYYY-MM-DD&amp;city=...&amp;type=bike</li>
  <li><b>KPI:</b> /api/kpi?date=YYYY-MM-DD&amp;city=...&amp;type=bike</li>
</ul>
`

func HomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(homeHTML))
	}
}
