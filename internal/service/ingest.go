package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Thuydung43/Xanh-dashboard/internal/model"
)

// AdminFetcher is the slice of AdminClient the ingest pipeline needs.
type AdminFetcher interface {
	Fetch(ctx context.Context, from, to int64, vehicleType string) (any, error)
}

type IngestService struct {
	db    *sql.DB
	admin AdminFetcher
}

func NewIngestService(db *sql.DB, admin AdminFetcher) *IngestService {
	return &IngestService{db: db, admin: admin}
}

// Summary reports one ingestion run. InsertedAttempts counts rows that reached
// the insert statement; duplicates swallowed by the conflict clause are not
// distinguished from fresh writes.
type Summary struct {
	Fetched          int `json:"fetched"`
	InsertedAttempts int `json:"inserted_attempts"`
}

const insertOrderSQL = `
	INSERT INTO orders (order_id, status, create_time, date, hour, sap_contract_type, sap_profile_id, pickup_city)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (order_id) DO NOTHING
`

// Run fetches orders for the epoch-second range, normalizes them and writes
// the batch in a single transaction. Re-running over the same range is a
// no-op for rows already stored.
func (s *IngestService) Run(ctx context.Context, from, to int64, vehicleType string) (*Summary, error) {
	payload, err := s.admin.Fetch(ctx, from, to, vehicleType)
	if err != nil {
		return nil, err
	}

	records, err := ExtractRecords(payload)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Fetched: len(records)}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		order, ok := MapRecord(rec)
		if !ok {
			continue
		}
		if err := insertOrder(ctx, tx, order); err != nil {
			return nil, err
		}
		summary.InsertedAttempts++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return summary, nil
}

func insertOrder(ctx context.Context, tx *sql.Tx, o model.Order) error {
	_, err := tx.ExecContext(ctx, insertOrderSQL,
		o.OrderID, o.Status, o.CreateTime, o.Date, o.Hour,
		o.SapContractType, o.SapProfileID, o.PickupCity,
	)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", o.OrderID, err)
	}
	return nil
}
