package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/Thuydung43/Xanh-dashboard/internal/model"
)

// The admin API wraps the order list in whichever envelope its current
// version happens to emit; probe the known nestings in order.
var envelopeKeys = []string{"items", "orders", "list", "rows", "data"}

// ExtractRecords digs the order list out of a decoded admin payload.
// A recognizable object with no list inside yields an empty slice; only a
// non-object top level is an error.
func ExtractRecords(payload any) ([]map[string]any, error) {
	top, ok := payload.(map[string]any)
	if !ok {
		return nil, ErrBadFormat
	}

	switch data := top["data"].(type) {
	case []any:
		return recordsOf(data), nil
	case map[string]any:
		for _, key := range envelopeKeys {
			if list, ok := data[key].([]any); ok {
				return recordsOf(list), nil
			}
		}
	}

	for _, key := range envelopeKeys {
		if key == "data" {
			continue // handled above
		}
		if list, ok := top[key].([]any); ok {
			return recordsOf(list), nil
		}
	}

	return []map[string]any{}, nil
}

func recordsOf(list []any) []map[string]any {
	records := make([]map[string]any, 0, len(list))
	for _, el := range list {
		if rec, ok := el.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records
}

// Candidate upstream names per canonical column, highest priority first.
var (
	orderIDKeys    = []string{"id", "order_id", "Order ID"}
	statusKeys     = []string{"status", "Status"}
	createTimeKeys = []string{"create_time", "created_at", "Create Time"}
	contractKeys   = []string{"sap_contract_type", "Sap Contract Type"}
	profileKeys    = []string{"sap_profile_id", "Sap Profile Id"}
	cityKeys       = []string{"pickup_city", "Pickup City"}
)

// MapRecord resolves one raw admin record into a canonical order row.
// Records without a usable order id or create time are dropped (ok=false).
func MapRecord(rec map[string]any) (model.Order, bool) {
	orderID := firstString(rec, orderIDKeys)
	created, okTime := parseCreateTime(firstValue(rec, createTimeKeys))
	if orderID == "" || !okTime {
		return model.Order{}, false
	}

	return model.Order{
		OrderID:         orderID,
		Status:          firstString(rec, statusKeys),
		CreateTime:      created,
		Date:            time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, created.Location()),
		Hour:            created.Hour(),
		SapContractType: firstString(rec, contractKeys),
		SapProfileID:    firstString(rec, profileKeys),
		PickupCity:      firstString(rec, cityKeys),
	}, true
}

// firstValue returns the value of the first candidate key that is present and
// non-empty. Empty strings and zero numbers fall through to the next
// candidate.
func firstValue(rec map[string]any, keys []string) any {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case nil:
		case string:
			if strings.TrimSpace(v) != "" {
				return v
			}
		case float64:
			if v != 0 {
				return v
			}
		case bool:
			if v {
				return v
			}
		default:
			return v
		}
	}
	return nil
}

func firstString(rec map[string]any, keys []string) string {
	return asString(firstValue(rec, keys))
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// parseCreateTime accepts epoch seconds (JSON numbers) or free-text
// date/time strings.
func parseCreateTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case float64:
		return time.Unix(int64(t), 0), true
	case string:
		parsed, err := dateparse.ParseAny(t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}
