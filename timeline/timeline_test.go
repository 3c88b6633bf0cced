package timeline_test

import (
	"testing"
	"time"

	"github.com/blindtreasure/orderview/constant"
	"github.com/blindtreasure/orderview/model"
	"github.com/blindtreasure/orderview/timeline"
	"github.com/stretchr/testify/assert"
)

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestBuildDetail_StructuredFullLifecycle(t *testing.T) {
	b := timeline.NewBuilder()

	parent := &model.Order{CompletedAt: ts("2024-01-01T08:00:00Z")}
	detail := &model.OrderDetail{
		Status: constant.OrderStatusDelivered,
		Shipments: []model.Shipment{{
			EstimatedPickupTime: ts("2024-01-02T09:00:00Z"),
			EstimatedDelivery:   ts("2024-01-03T10:00:00Z"),
			ShippedAt:           ts("2024-01-04T11:00:00Z"),
		}},
	}

	events := b.BuildDetail(detail, parent)
	if !assert.Len(t, events, 4) {
		return
	}

	// chronologically ascending by construction
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].At.Before(events[i-1].At), "events must be non-decreasing in time")
	}

	for _, ev := range events {
		assert.True(t, ev.Completed)
	}
	// only the terminal delivered event is final
	assert.False(t, events[0].Final)
	assert.False(t, events[1].Final)
	assert.False(t, events[2].Final)
	assert.True(t, events[3].Final)
}

func TestBuildDetail_AbsentTimestampsProduceNoEvents(t *testing.T) {
	b := timeline.NewBuilder()

	detail := &model.OrderDetail{
		Status:    constant.OrderStatusDelivering,
		Shipments: []model.Shipment{{EstimatedDelivery: ts("2024-01-03T10:00:00Z")}},
	}

	// no parent completedAt, no pickup, no shippedAt: just the one event
	events := b.BuildDetail(detail, nil)
	if assert.Len(t, events, 1) {
		assert.Equal(t, "Đang giao hàng đến địa chỉ nhận", events[0].Label)
		assert.True(t, events[0].Completed)
	}
}

func TestBuildDetail_DeliveringGatedByStatus(t *testing.T) {
	b := timeline.NewBuilder()

	detail := &model.OrderDetail{
		Status:    constant.OrderStatusProcessing,
		Shipments: []model.Shipment{{EstimatedDelivery: ts("2024-01-03T10:00:00Z")}},
	}

	events := b.BuildDetail(detail, nil)
	if assert.Len(t, events, 1) {
		// the estimate exists, but the status has not reached delivering yet
		assert.False(t, events[0].Completed)
	}
}

func TestBuildDetail_NoDeliveredEventBeforeTerminalStatus(t *testing.T) {
	b := timeline.NewBuilder()

	detail := &model.OrderDetail{
		Status: constant.OrderStatusDelivering,
		Shipments: []model.Shipment{{
			ShippedAt: ts("2024-01-04T11:00:00Z"),
		}},
	}

	for _, ev := range b.BuildDetail(detail, nil) {
		assert.False(t, ev.Final)
	}
}

func TestBuildDetail_PickedUpPrefersActualOverEstimate(t *testing.T) {
	b := timeline.NewBuilder()

	detail := &model.OrderDetail{
		Status: constant.OrderStatusDelivering,
		Shipments: []model.Shipment{{
			EstimatedPickupTime: ts("2024-01-02T09:00:00Z"),
			PickedUpAt:          ts("2024-01-02T12:30:00Z"),
		}},
	}

	events := b.BuildDetail(detail, nil)
	if assert.Len(t, events, 1) {
		assert.Equal(t, *ts("2024-01-02T12:30:00Z"), events[0].At)
	}
}

func TestBuildDetail_LogModeFallback(t *testing.T) {
	b := timeline.NewBuilder()

	detail := &model.OrderDetail{
		Status: constant.OrderStatusPending,
		Logs: "[2024-01-01T08:00:00Z] Created\n" +
			"[2024-01-02T09:00:00Z] Shipment requested\n" +
			"some free-form note\n" +
			"[not-a-timestamp] Delivering\n",
	}

	events := b.BuildDetail(detail, nil)
	if !assert.Len(t, events, 4) {
		return
	}

	assert.Equal(t, "Đã tạo đơn hàng", events[0].Label)
	assert.Equal(t, "Yêu cầu vận chuyển", events[1].Label)

	// line without the [ts] prefix keeps its translated raw text, no time
	assert.Equal(t, "N/A", events[2].TimeLabel)
	assert.Equal(t, "some free-form note", events[2].Label)

	// matched line with an unparseable timestamp still yields an event
	assert.Equal(t, "N/A", events[3].TimeLabel)
	assert.Equal(t, "Đang giao hàng", events[3].Label)

	for _, ev := range events {
		assert.True(t, ev.Completed)
	}
}

func TestBuildDetail_LogModeUnknownTokensPassThrough(t *testing.T) {
	b := timeline.NewBuilderWithTerms(map[string]string{"Created": "tạo"})

	detail := &model.OrderDetail{Logs: "[2024-01-01T08:00:00Z] Handed to customs"}
	events := b.BuildDetail(detail, nil)
	if assert.Len(t, events, 1) {
		assert.Equal(t, "Handed to customs", events[0].Label)
	}
}

func TestBuildDetail_EmptyInputs(t *testing.T) {
	b := timeline.NewBuilder()

	assert.Empty(t, b.BuildDetail(nil, nil))
	assert.Empty(t, b.BuildDetail(&model.OrderDetail{}, nil))
	assert.Empty(t, b.BuildDetail(&model.OrderDetail{Logs: "   \n  "}, nil))
}

func TestBuildInventory(t *testing.T) {
	b := timeline.NewBuilder()

	item := &model.InventoryItem{
		Status: constant.InventoryStatusDelivered,
		Shipment: &model.Shipment{
			EstimatedDelivery: ts("2024-01-03T10:00:00Z"),
			ShippedAt:         ts("2024-01-04T11:00:00Z"),
		},
	}

	events := b.BuildInventory(item)
	if assert.Len(t, events, 2) {
		assert.True(t, events[1].Final)
	}

	// log fallback when the item has no shipment
	item = &model.InventoryItem{Logs: "[2024-01-01T08:00:00Z] InventoryItem Created"}
	events = b.BuildInventory(item)
	if assert.Len(t, events, 1) {
		assert.Equal(t, "Sản phẩm Đã tạo đơn hàng", events[0].Label)
	}

	assert.Empty(t, b.BuildInventory(nil))
}

func TestProgressStage(t *testing.T) {
	tests := []struct {
		status constant.OrderStatus
		want   int
	}{
		{constant.OrderStatusDelivered, 3},
		{constant.OrderStatusPartiallyDelivered, 3},
		{constant.OrderStatusCompleted, 3},
		{constant.OrderStatusDelivering, 2},
		{constant.OrderStatusPartiallyDelivering, 2},
		{constant.OrderStatusShippingRequested, 1},
		{constant.OrderStatusPending, 1},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, timeline.ProgressStage(tt.status), "status %s", tt.status)
	}
}
