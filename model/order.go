package model

import (
	"time"

	"github.com/blindtreasure/orderview/constant"
)

// Order is a top-level checkout transaction as returned by the commerce
// backend. The client is read-only against it; all mutation happens upstream.
type Order struct {
	ID               string               `json:"id"`
	Status           constant.OrderStatus `json:"status"`
	TotalAmount      float64              `json:"totalAmount"`
	FinalAmount      float64              `json:"finalAmount"`
	TotalShippingFee float64              `json:"totalShippingFee"`
	PlacedAt         *time.Time           `json:"placedAt,omitempty"`
	CompletedAt      *time.Time           `json:"completedAt,omitempty"`
	Payment          *OrderPayment        `json:"payment,omitempty"`
	Details          []OrderDetail        `json:"details,omitempty"`
}

// OrderDetail is one product or blind-box line item. When both product and
// blind-box fields are present, the blind-box fields win for display.
type OrderDetail struct {
	ID                      string               `json:"id"`
	OrderID                 string               `json:"orderId"`
	ProductID               string               `json:"productId,omitempty"`
	ProductName             string               `json:"productName,omitempty"`
	ProductImages           []string             `json:"productImages,omitempty"`
	BlindBoxID              string               `json:"blindBoxId,omitempty"`
	BlindBoxName            string               `json:"blindBoxName,omitempty"`
	BlindBoxImage           string               `json:"blindBoxImage,omitempty"`
	Quantity                int                  `json:"quantity"`
	UnitPrice               float64              `json:"unitPrice"`
	TotalPrice              float64              `json:"totalPrice"`
	Status                  constant.OrderStatus `json:"status"`
	Shipments               []Shipment           `json:"shipments,omitempty"`
	DetailDiscountPromotion float64              `json:"detailDiscountPromotion"`
	Logs                    string               `json:"logs,omitempty"`
}

// DisplayName returns the blind-box name when set, else the product name.
func (d *OrderDetail) DisplayName() string {
	if d.BlindBoxName != "" {
		return d.BlindBoxName
	}
	return d.ProductName
}

// DisplayImage returns the blind-box image when set, else the first product image.
func (d *OrderDetail) DisplayImage() string {
	if d.BlindBoxImage != "" {
		return d.BlindBoxImage
	}
	if len(d.ProductImages) > 0 {
		return d.ProductImages[0]
	}
	return ""
}

// Shipment is one carrier consignment covering all or part of a detail's
// quantity. A detail may carry zero, one or several of them.
type Shipment struct {
	ID                  string     `json:"id"`
	OrderDetailID       string     `json:"orderDetailId,omitempty"`
	Provider            string     `json:"provider"`
	TrackingNumber      string     `json:"trackingNumber"`
	TotalFee            float64    `json:"totalFee"`
	Status              string     `json:"status"`
	EstimatedPickupTime *time.Time `json:"estimatedPickupTime,omitempty"`
	PickedUpAt          *time.Time `json:"pickedUpAt,omitempty"`
	EstimatedDelivery   *time.Time `json:"estimatedDelivery,omitempty"`
	ShippedAt           *time.Time `json:"shippedAt,omitempty"`
}

// OrderPayment is the payment record owned by an order. DiscountRate is an
// absolute currency amount despite the name; the backend has always sent it
// that way and the totals below depend on it.
type OrderPayment struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"orderId,omitempty"`
	Amount       float64    `json:"amount"`
	DiscountRate float64    `json:"discountRate"`
	NetAmount    float64    `json:"netAmount"`
	Method       string     `json:"method"`
	Status       string     `json:"status"`
	PaidAt       *time.Time `json:"paidAt,omitempty"`
}
