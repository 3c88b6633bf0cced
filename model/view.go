package model

import (
	"time"

	"github.com/blindtreasure/orderview/constant"
)

// RecordKind discriminates the union behind a DisplayRecord. It is set once
// when the record is classified and is never guessed from field presence.
type RecordKind string

const (
	RecordKindOrder         RecordKind = "order"
	RecordKindOrderDetail   RecordKind = "order_detail"
	RecordKindInventoryItem RecordKind = "inventory_item"
)

// DisplayRecord is one presentation-ready entry of a bucket listing. Exactly
// one of Order, Detail, Inventory is non-nil, matching Kind.
type DisplayRecord struct {
	Kind         RecordKind `json:"kind"`
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	StatusLabel  string     `json:"statusLabel,omitempty"`
	StatusColor  string     `json:"statusColor,omitempty"`
	Name         string     `json:"name,omitempty"`
	Image        string     `json:"image,omitempty"`
	Quantity     int        `json:"quantity,omitempty"`
	TotalPayable float64    `json:"totalPayable"`

	Order     *Order         `json:"order,omitempty"`
	Detail    *OrderDetail   `json:"detail,omitempty"`
	Inventory *InventoryItem `json:"inventory,omitempty"`
}

// TimelineEvent is one derived delivery-lifecycle step. At is the zero time
// when the source log line carried no parseable timestamp; TimeLabel then
// holds the "N/A" marker.
type TimelineEvent struct {
	At        time.Time `json:"at,omitempty"`
	TimeLabel string    `json:"timeLabel"`
	Label     string    `json:"label"`
	Completed bool      `json:"completed"`
	Final     bool      `json:"final"`
}

// ShippingInfo is the carrier block of a tracking view.
type ShippingInfo struct {
	Provider       string  `json:"provider"`
	ProviderLabel  string  `json:"providerLabel"`
	TrackingNumber string  `json:"trackingNumber"`
	TotalFee       float64 `json:"totalFee"`
}

// TrackingView is the full per-detail tracking screen payload.
type TrackingView struct {
	DetailID      string               `json:"detailId"`
	OrderID       string               `json:"orderId,omitempty"`
	Status        constant.OrderStatus `json:"status"`
	StatusLabel   string               `json:"statusLabel"`
	Name          string               `json:"name"`
	Image         string               `json:"image,omitempty"`
	Quantity      int                  `json:"quantity"`
	TotalPrice    float64              `json:"totalPrice"`
	TotalPayable  float64              `json:"totalPayable"`
	ProgressStage int                  `json:"progressStage"`
	Shipping      *ShippingInfo        `json:"shipping,omitempty"`
	Timeline      []TimelineEvent      `json:"timeline"`
}

// OrderSummaryView is the order-detail screen's price breakdown. Discount is
// payment.amount - payment.netAmount; GrandTotal is subtotal plus shipping.
type OrderSummaryView struct {
	OrderID      string               `json:"orderId"`
	Status       constant.OrderStatus `json:"status"`
	StatusLabel  string               `json:"statusLabel"`
	StatusColor  string               `json:"statusColor"`
	PlacedAt     *time.Time           `json:"placedAt,omitempty"`
	CompletedAt  *time.Time           `json:"completedAt,omitempty"`
	Subtotal     float64              `json:"subtotal"`
	ShippingFee  float64              `json:"shippingFee"`
	Discount     float64              `json:"discount"`
	GrandTotal   float64              `json:"grandTotal"`
	TotalPayable float64              `json:"totalPayable"`
	Trackable    bool                 `json:"trackable"`
	// TrackingDetailID points at the detail the tracking screen should open
	// with; empty when nothing is trackable.
	TrackingDetailID string `json:"trackingDetailId,omitempty"`
	Details      []OrderDetail        `json:"details"`
	Payment      *OrderPayment        `json:"payment,omitempty"`
}
