package model

import (
	"time"
)

// Order is one normalized ride order. Date and Hour are derived from
// CreateTime once at ingest and never recomputed.
type Order struct {
	OrderID         string    `json:"order_id"`
	Status          string    `json:"status"` // free-form upstream code, e.g. COMPLETED
	CreateTime      time.Time `json:"create_time"`
	Date            time.Time `json:"date"`
	Hour            int       `json:"hour"`
	SapContractType string    `json:"sap_contract_type"` // bike, bike_platform, ...
	SapProfileID    string    `json:"sap_profile_id"`
	PickupCity      string    `json:"pickup_city"`
}
