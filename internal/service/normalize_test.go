package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var payload any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestExtractRecords(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantIDs []string
		wantLen int
		wantErr bool
	}{
		{
			name:    "data is a list",
			raw:     `{"data": [{"id": "A1"}, {"id": "A2"}]}`,
			wantIDs: []string{"A1", "A2"},
		},
		{
			name:    "data wraps items",
			raw:     `{"data": {"items": [{"id": "B1"}]}}`,
			wantIDs: []string{"B1"},
		},
		{
			name:    "data wraps orders",
			raw:     `{"data": {"orders": [{"id": "B2"}]}}`,
			wantIDs: []string{"B2"},
		},
		{
			name:    "data wraps nested data",
			raw:     `{"data": {"data": [{"id": "B3"}]}}`,
			wantIDs: []string{"B3"},
		},
		{
			name:    "top-level items",
			raw:     `{"items": [{"id": "C1"}]}`,
			wantIDs: []string{"C1"},
		},
		{
			name:    "top-level rows",
			raw:     `{"rows": [{"id": "C2"}]}`,
			wantIDs: []string{"C2"},
		},
		{
			name:    "items preferred over rows",
			raw:     `{"rows": [{"id": "R"}], "items": [{"id": "I"}]}`,
			wantIDs: []string{"I"},
		},
		{
			name:    "non-object list elements skipped",
			raw:     `{"data": [{"id": "A1"}, "junk", 42, null]}`,
			wantIDs: []string{"A1"},
		},
		{
			name:    "object with no list is empty",
			raw:     `{"status": "ok", "count": 3}`,
			wantLen: 0,
		},
		{
			name:    "top-level array is rejected",
			raw:     `[{"id": "A1"}]`,
			wantErr: true,
		},
		{
			name:    "top-level scalar is rejected",
			raw:     `"nope"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ExtractRecords(decode(t, tt.raw))

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadFormat)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, records)

			if tt.wantIDs != nil {
				require.Len(t, records, len(tt.wantIDs))
				for i, id := range tt.wantIDs {
					assert.Equal(t, id, records[i]["id"])
				}
			} else {
				assert.Len(t, records, tt.wantLen)
			}
		})
	}
}

func TestMapRecordEpochTime(t *testing.T) {
	rec := map[string]any{
		"id":                "A1",
		"status":            "COMPLETED",
		"create_time":       float64(1700000000),
		"sap_contract_type": "bike",
		"pickup_city":       "Hanoi",
	}

	order, ok := MapRecord(rec)
	require.True(t, ok)

	want := time.Unix(1700000000, 0)
	assert.Equal(t, "A1", order.OrderID)
	assert.Equal(t, "COMPLETED", order.Status)
	assert.Equal(t, "bike", order.SapContractType)
	assert.Equal(t, "Hanoi", order.PickupCity)
	assert.True(t, want.Equal(order.CreateTime))
	assert.Equal(t, want.Hour(), order.Hour)

	wantDate := time.Date(want.Year(), want.Month(), want.Day(), 0, 0, 0, 0, want.Location())
	assert.True(t, wantDate.Equal(order.Date))
}

func TestMapRecordTextTime(t *testing.T) {
	rec := map[string]any{
		"order_id":   "T1",
		"created_at": "2023-11-14 15:30:00",
	}

	order, ok := MapRecord(rec)
	require.True(t, ok)
	assert.Equal(t, "T1", order.OrderID)
	assert.Equal(t, 15, order.Hour)
	assert.Equal(t, 2023, order.Date.Year())
	assert.Equal(t, time.November, order.Date.Month())
	assert.Equal(t, 14, order.Date.Day())
}

func TestMapRecordKeyPriority(t *testing.T) {
	t.Run("id wins over order_id", func(t *testing.T) {
		order, ok := MapRecord(map[string]any{
			"id":          "PRIMARY",
			"order_id":    "SECONDARY",
			"create_time": float64(1700000000),
		})
		require.True(t, ok)
		assert.Equal(t, "PRIMARY", order.OrderID)
	})

	t.Run("empty id falls through", func(t *testing.T) {
		order, ok := MapRecord(map[string]any{
			"id":          "",
			"order_id":    "SECONDARY",
			"create_time": float64(1700000000),
		})
		require.True(t, ok)
		assert.Equal(t, "SECONDARY", order.OrderID)
	})

	t.Run("spreadsheet-style keys resolve", func(t *testing.T) {
		order, ok := MapRecord(map[string]any{
			"Order ID":          "S1",
			"Create Time":       float64(1700000000),
			"Status":            "CANCELLED",
			"Sap Contract Type": "bike_platform",
			"Sap Profile Id":    "p-9",
			"Pickup City":       "Da Nang",
		})
		require.True(t, ok)
		assert.Equal(t, "S1", order.OrderID)
		assert.Equal(t, "CANCELLED", order.Status)
		assert.Equal(t, "bike_platform", order.SapContractType)
		assert.Equal(t, "p-9", order.SapProfileID)
		assert.Equal(t, "Da Nang", order.PickupCity)
	})

	t.Run("numeric id is stringified", func(t *testing.T) {
		order, ok := MapRecord(map[string]any{
			"id":          float64(98765),
			"create_time": float64(1700000000),
		})
		require.True(t, ok)
		assert.Equal(t, "98765", order.OrderID)
	})
}

func TestMapRecordSkips(t *testing.T) {
	tests := []struct {
		name string
		rec  map[string]any
	}{
		{"missing order id", map[string]any{"create_time": float64(1700000000)}},
		{"missing create time", map[string]any{"id": "A1"}},
		{"unparseable create time", map[string]any{"id": "A1", "create_time": "not a date at all ???"}},
		{"empty record", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := MapRecord(tt.rec)
			assert.False(t, ok)
		})
	}
}
