package normalizer_test

import (
	"testing"

	"github.com/blindtreasure/orderview/model"
	"github.com/blindtreasure/orderview/normalizer"
	"github.com/stretchr/testify/assert"
)

func TestList_ObservedShapes(t *testing.T) {
	// the same underlying array in every shape the backend has ever sent
	shapes := map[string]string{
		"bare array":      `[{"id":"o-1","status":"PENDING"},{"id":"o-2","status":"DELIVERED"}]`,
		"result wrapper":  `{"result":[{"id":"o-1","status":"PENDING"},{"id":"o-2","status":"DELIVERED"}]}`,
		"data.result":     `{"data":{"result":[{"id":"o-1","status":"PENDING"},{"id":"o-2","status":"DELIVERED"}]}}`,
		"full envelope":   `{"isSuccess":true,"value":{"code":"200","data":{"result":[{"id":"o-1","status":"PENDING"},{"id":"o-2","status":"DELIVERED"}]}}}`,
		"value.data list": `{"isSuccess":true,"value":{"data":[{"id":"o-1","status":"PENDING"},{"id":"o-2","status":"DELIVERED"}]}}`,
	}

	var reference []model.Order
	for name, payload := range shapes {
		t.Run(name, func(t *testing.T) {
			orders := normalizer.List[model.Order]([]byte(payload))
			assert.Len(t, orders, 2)
			assert.Equal(t, "o-1", orders[0].ID)
			assert.Equal(t, "o-2", orders[1].ID)
			if reference == nil {
				reference = orders
			} else {
				// element-wise equal regardless of wrapping
				assert.Equal(t, reference, orders)
			}
		})
	}
}

func TestList_MalformedShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty payload", payload: ""},
		{name: "not json", payload: "garbage"},
		{name: "scalar", payload: "42"},
		{name: "object without wrapper keys", payload: `{"foo":"bar"}`},
		{name: "wrapper leading nowhere", payload: `{"data":{"result":"not an array"}}`},
		{name: "array of wrong element type", payload: `[1,2,3]`},
		{name: "null", payload: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, normalizer.List[model.Order]([]byte(tt.payload)))
		})
	}
}

func TestOne(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantOK  bool
		wantID  string
	}{
		{
			name:    "bare object",
			payload: `{"id":"o-9","status":"PAID"}`,
			wantOK:  true,
			wantID:  "o-9",
		},
		{
			name:    "full envelope",
			payload: `{"isSuccess":true,"value":{"data":{"result":{"id":"o-9","status":"PAID"}}}}`,
			wantOK:  true,
			wantID:  "o-9",
		},
		{
			name:    "array payload is not a record",
			payload: `[{"id":"o-9"}]`,
			wantOK:  false,
		},
		{
			name:    "garbage",
			payload: `not json at all`,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, ok := normalizer.One[model.Order]([]byte(tt.payload))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, order.ID)
			}
		})
	}
}
