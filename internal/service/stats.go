package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type StatsService struct {
	db *sql.DB
}

func NewStatsService(db *sql.DB) *StatsService {
	return &StatsService{db: db}
}

type HourlyRow struct {
	Hour      int `json:"hour"`
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Hourly returns per-hour order counts for one date, ascending by hour.
// Hours without matching rows are omitted. city and contractType are optional
// equality filters.
func (s *StatsService) Hourly(ctx context.Context, date, city, contractType string) ([]HourlyRow, error) {
	where, args := buildFilter(date, city, contractType)
	query := fmt.Sprintf(`
		SELECT hour,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = 'COMPLETED') AS completed
		FROM orders
		WHERE %s
		GROUP BY hour
		ORDER BY hour
	`, where)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query hourly: %w", err)
	}
	defer rows.Close()

	out := make([]HourlyRow, 0)
	for rows.Next() {
		var hr HourlyRow
		if err := rows.Scan(&hr.Hour, &hr.Total, &hr.Completed); err != nil {
			return nil, fmt.Errorf("scan hourly row: %w", err)
		}
		out = append(out, hr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return out, nil
}

// KPI holds one day's headline numbers plus day-over-day and week-over-week
// relative deltas. Delta pointers are nil when the prior period has nothing
// to compare against. TxActive and TbRequestTx have no data source yet and
// are always null, as are their deltas.
type KPI struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	FR        float64 `json:"fr"`

	TxActive    *int `json:"tx_active"`
	TbRequestTx *int `json:"tb_request_tx"`

	DoDTotalPct     *float64 `json:"dod_total_pct"`
	WoWTotalPct     *float64 `json:"wow_total_pct"`
	DoDCompletedPct *float64 `json:"dod_completed_pct"`
	WoWCompletedPct *float64 `json:"wow_completed_pct"`
	DoDFRPct        *float64 `json:"dod_fr_pct"`
	WoWFRPct        *float64 `json:"wow_fr_pct"`
	DoDTxPct        *float64 `json:"dod_tx_pct"`
	WoWTxPct        *float64 `json:"wow_tx_pct"`
	DoDTbPct        *float64 `json:"dod_tb_pct"`
	WoWTbPct        *float64 `json:"wow_tb_pct"`
}

// KPI computes the target date's totals and compares them to the prior day
// and the same weekday a week earlier.
func (s *StatsService) KPI(ctx context.Context, date, city, contractType string) (*KPI, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	cur, err := s.dayStat(ctx, date, city, contractType)
	if err != nil {
		return nil, err
	}
	prevDay, err := s.dayStat(ctx, day.AddDate(0, 0, -1).Format(dateLayout), city, contractType)
	if err != nil {
		return nil, err
	}
	prevWeek, err := s.dayStat(ctx, day.AddDate(0, 0, -7).Format(dateLayout), city, contractType)
	if err != nil {
		return nil, err
	}

	return buildKPI(cur, prevDay, prevWeek), nil
}

type dayStat struct {
	Total     int
	Completed int
	FR        float64
}

func (s *StatsService) dayStat(ctx context.Context, date, city, contractType string) (dayStat, error) {
	where, args := buildFilter(date, city, contractType)
	query := fmt.Sprintf(`
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'COMPLETED')
		FROM orders
		WHERE %s
	`, where)

	var st dayStat
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&st.Total, &st.Completed); err != nil {
		return dayStat{}, fmt.Errorf("day counts for %s: %w", date, err)
	}
	if st.Total > 0 {
		st.FR = float64(st.Completed) / float64(st.Total)
	}
	return st, nil
}

func buildKPI(cur, d1, d7 dayStat) *KPI {
	return &KPI{
		Total:     cur.Total,
		Completed: cur.Completed,
		FR:        cur.FR,

		DoDTotalPct:     pctChange(float64(cur.Total), float64(d1.Total)),
		WoWTotalPct:     pctChange(float64(cur.Total), float64(d7.Total)),
		DoDCompletedPct: pctChange(float64(cur.Completed), float64(d1.Completed)),
		WoWCompletedPct: pctChange(float64(cur.Completed), float64(d7.Completed)),
		DoDFRPct:        pctChange(cur.FR, d1.FR),
		WoWFRPct:        pctChange(cur.FR, d7.FR),
	}
}

// pctChange is the relative delta (now-prev)/prev, nil when there is no prior
// value to compare against.
func pctChange(now, prev float64) *float64 {
	if prev == 0 {
		return nil
	}
	v := (now - prev) / prev
	return &v
}

// buildFilter assembles the shared WHERE clause for one date plus the
// optional city and contract-type filters, with positional placeholders.
func buildFilter(date, city, contractType string) (string, []any) {
	where := "date = $1"
	args := []any{date}

	if city != "" {
		args = append(args, city)
		where += fmt.Sprintf(" AND pickup_city = $%d", len(args))
	}
	if contractType != "" {
		args = append(args, contractType)
		where += fmt.Sprintf(" AND sap_contract_type = $%d", len(args))
	}

	return where, args
}
