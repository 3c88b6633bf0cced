package constant

// OrderStatus covers both order-level and order-detail-level states as the
// commerce backend emits them. The two levels draw from the same
// upper-snake-case vocabulary but are independent state machines: a detail
// may be DELIVERING while its parent order is still PAID.
type OrderStatus string

const (
	OrderStatusPending                    OrderStatus = "PENDING"
	OrderStatusPaid                       OrderStatus = "PAID"
	OrderStatusProcessing                 OrderStatus = "PROCESSING"
	OrderStatusDelivering                 OrderStatus = "DELIVERING"
	OrderStatusDelivered                  OrderStatus = "DELIVERED"
	OrderStatusCompleted                  OrderStatus = "COMPLETED"
	OrderStatusCancelled                  OrderStatus = "CANCELLED"
	OrderStatusReturned                   OrderStatus = "RETURNED"
	OrderStatusRefunded                   OrderStatus = "REFUNDED"
	OrderStatusExpired                    OrderStatus = "EXPIRED"
	OrderStatusInInventory                OrderStatus = "IN_INVENTORY"
	OrderStatusShippingRequested          OrderStatus = "SHIPPING_REQUESTED"
	OrderStatusPartiallyShippingRequested OrderStatus = "PARTIALLY_SHIPPING_REQUESTED"
	OrderStatusPartiallyDelivering        OrderStatus = "PARTIALLY_DELIVERING"
	OrderStatusPartiallyDelivered         OrderStatus = "PARTIALLY_DELIVERED"
)

// InventoryStatus is the inventory-item vocabulary. It is capitalized, not
// upper-snake-case, and must never be compared against OrderStatus values.
type InventoryStatus string

const (
	InventoryStatusDelivering InventoryStatus = "Delivering"
	InventoryStatusDelivered  InventoryStatus = "Delivered"
)

// Bucket is one of the tabbed filters the storefront partitions records into.
type Bucket string

const (
	BucketAll         Bucket = "ALL"
	BucketPending     Bucket = "PENDING"
	BucketDelivering  Bucket = "DELIVERING"
	BucketDelivered   Bucket = "DELIVERED"
	BucketCancelled   Bucket = "CANCELLED"
	BucketInventory   Bucket = "INVENTORY"
	BucketInInventory Bucket = "IN_INVENTORY"
)

// Buckets lists every valid bucket in display order.
var Buckets = []Bucket{
	BucketAll,
	BucketPending,
	BucketDelivering,
	BucketDelivered,
	BucketCancelled,
	BucketInventory,
	BucketInInventory,
}

// ValidBucket reports whether b names a known bucket.
func ValidBucket(b Bucket) bool {
	for _, known := range Buckets {
		if b == known {
			return true
		}
	}
	return false
}
