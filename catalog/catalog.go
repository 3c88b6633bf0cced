// Package catalog holds the static status-to-display mapping. It is passed
// to consumers as a value instead of being reached through package globals,
// so tests can substitute their own tables.
package catalog

import "github.com/blindtreasure/orderview/constant"

// FallbackColor is used for any status outside the known vocabularies.
const FallbackColor = "#8E8E93"

// Entry is one status display mapping.
type Entry struct {
	Label string
	Color string
}

// Catalog maps backend status codes to display labels and colors. Order and
// detail levels have separate tables; inventory items reuse the order-level
// table through their capitalized variants.
type Catalog struct {
	orderStatus  map[string]Entry
	detailStatus map[string]Entry
	providers    map[string]string
}

// Default returns the catalog the storefront ships with.
func Default() *Catalog {
	return &Catalog{
		orderStatus: map[string]Entry{
			string(constant.OrderStatusPending):    {Label: "Chờ xác nhận", Color: "#FF9500"},
			string(constant.OrderStatusPaid):       {Label: "Đã thanh toán", Color: "#34C759"},
			string(constant.OrderStatusProcessing): {Label: "Chờ lấy hàng", Color: "#007AFF"},
			string(constant.OrderStatusDelivering): {Label: "Chờ giao hàng", Color: "#FF6B35"},
			string(constant.OrderStatusDelivered):  {Label: "Đã giao", Color: "#34C759"},
			string(constant.OrderStatusCompleted):  {Label: "Đã giao", Color: "#34C759"},
			string(constant.OrderStatusCancelled):  {Label: "Đã hủy", Color: "#FF3B30"},
			string(constant.OrderStatusReturned):   {Label: "Trả hàng", Color: "#FF9500"},
			string(constant.OrderStatusRefunded):   {Label: "Đã hoàn tiền", Color: "#34C759"},
			string(constant.OrderStatusExpired):    {Label: "Đã hủy", Color: "#FF3B30"},
			// capitalized inventory-item variants
			string(constant.InventoryStatusDelivering): {Label: "Đang giao hàng", Color: "#FF6B35"},
			string(constant.InventoryStatusDelivered):  {Label: "Đã giao", Color: "#34C759"},
			string(constant.OrderStatusInInventory):    {Label: "Trong túi đồ", Color: "#007AFF"},
		},
		detailStatus: map[string]Entry{
			string(constant.OrderStatusPending):                    {Label: "Chờ xử lý", Color: "#FF9500"},
			string(constant.OrderStatusInInventory):                {Label: "Trong túi đồ", Color: "#007AFF"},
			string(constant.OrderStatusShippingRequested):          {Label: "Đã yêu cầu giao hàng", Color: "#FF6B35"},
			string(constant.OrderStatusPartiallyShippingRequested): {Label: "Yêu cầu giao hàng một phần", Color: "#FF9500"},
			string(constant.OrderStatusDelivering):                 {Label: "Đang giao hàng", Color: "#FF6B35"},
			string(constant.OrderStatusPartiallyDelivering):        {Label: "Đang giao hàng một phần", Color: "#FF9500"},
			string(constant.OrderStatusDelivered):                  {Label: "Đã giao hàng", Color: "#34C759"},
			string(constant.OrderStatusPartiallyDelivered):         {Label: "Đã giao hàng một phần", Color: "#34C759"},
			string(constant.OrderStatusCancelled):                  {Label: "Đã hủy", Color: "#FF3B30"},
		},
		providers: map[string]string{
			"GHN":  "Giao Hàng Nhanh",
			"GHTK": "Giao Hàng Tiết Kiệm",
			"SPX":  "SPX Express",
			"VTP":  "Viettel Post",
			"J&T":  "J&T Express",
		},
	}
}

// OrderStatusLabel returns the order-level display label, falling back to the
// raw status string for unknown codes.
func (c *Catalog) OrderStatusLabel(status string) string {
	if e, ok := c.orderStatus[status]; ok {
		return e.Label
	}
	return status
}

// OrderStatusColor returns the order-level display color.
func (c *Catalog) OrderStatusColor(status string) string {
	if e, ok := c.orderStatus[status]; ok {
		return e.Color
	}
	return FallbackColor
}

// DetailStatusLabel returns the detail-level display label.
func (c *Catalog) DetailStatusLabel(status string) string {
	if e, ok := c.detailStatus[status]; ok {
		return e.Label
	}
	return status
}

// DetailStatusColor returns the detail-level display color.
func (c *Catalog) DetailStatusColor(status string) string {
	if e, ok := c.detailStatus[status]; ok {
		return e.Color
	}
	return FallbackColor
}

// ProviderLabel translates a carrier code to its display name.
func (c *Catalog) ProviderLabel(provider string) string {
	if name, ok := c.providers[provider]; ok {
		return name
	}
	return provider
}
