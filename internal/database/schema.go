package database

import (
	"database/sql"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS orders (
    order_id TEXT PRIMARY KEY,
    status TEXT,
    create_time TIMESTAMP,
    date DATE,
    hour INT,
    sap_contract_type TEXT,
    sap_profile_id TEXT,
    pickup_city TEXT
);

CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(date);
CREATE INDEX IF NOT EXISTS idx_orders_date_hour ON orders(date, hour);
CREATE INDEX IF NOT EXISTS idx_orders_city ON orders(pickup_city);
`

// InitSchema creates the orders table and its lookup indexes. Safe to run on
// every startup.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schemaSQL)
	if err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}
