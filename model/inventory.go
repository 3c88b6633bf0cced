package model

import (
	"time"

	"github.com/blindtreasure/orderview/constant"
)

// InventoryItem is a post-delivery holding record: an item placed into the
// user's inventory pool instead of (or after) being shipped directly.
// Structurally close to OrderDetail but with the capitalized status
// vocabulary and a single optional shipment rather than a slice.
type InventoryItem struct {
	ID            string                   `json:"id"`
	UserID        string                   `json:"userId,omitempty"`
	OrderID       string                   `json:"orderId,omitempty"`
	OrderDetailID string                   `json:"orderDetailId,omitempty"`
	ProductID     string                   `json:"productId,omitempty"`
	ProductName   string                   `json:"productName,omitempty"`
	ProductImages []string                 `json:"productImages,omitempty"`
	BlindBoxID    string                   `json:"blindBoxId,omitempty"`
	BlindBoxName  string                   `json:"blindBoxName,omitempty"`
	BlindBoxImage string                   `json:"blindBoxImage,omitempty"`
	Quantity       int                      `json:"quantity"`
	UnitPrice      float64                  `json:"unitPrice"`
	TotalPrice     float64                  `json:"totalPrice"`
	Status         constant.InventoryStatus `json:"status"`
	Shipment       *Shipment                `json:"shipment,omitempty"`
	IsFromBlindBox bool                     `json:"isFromBlindBox,omitempty"`
	Logs           string                   `json:"logs,omitempty"`
	CreatedAt      *time.Time               `json:"createdAt,omitempty"`
}

// DisplayName returns the blind-box name when set, else the product name.
func (i *InventoryItem) DisplayName() string {
	if i.BlindBoxName != "" {
		return i.BlindBoxName
	}
	return i.ProductName
}

// DisplayImage returns the blind-box image when set, else the first product image.
func (i *InventoryItem) DisplayImage() string {
	if i.BlindBoxImage != "" {
		return i.BlindBoxImage
	}
	if len(i.ProductImages) > 0 {
		return i.ProductImages[0]
	}
	return ""
}
