package catalog

import (
	"github.com/blindtreasure/orderview/constant"
	"github.com/blindtreasure/orderview/model"
)

// trackingPriority orders detail statuses by how relevant they are for the
// tracking screen. The first detail matching the highest-priority status wins.
var trackingPriority = []constant.OrderStatus{
	constant.OrderStatusDelivering,
	constant.OrderStatusPartiallyDelivering,
	constant.OrderStatusShippingRequested,
	constant.OrderStatusPartiallyShippingRequested,
}

// HasTrackableItems reports whether any detail is in a shipping-related state.
func HasTrackableItems(details []model.OrderDetail) bool {
	for _, d := range details {
		for _, s := range trackingPriority {
			if d.Status == s {
				return true
			}
		}
	}
	return false
}

// TrackingDetailID returns the id of the most tracking-relevant detail, or
// the empty string when nothing is trackable.
func TrackingDetailID(details []model.OrderDetail) string {
	for _, s := range trackingPriority {
		for _, d := range details {
			if d.Status == s {
				return d.ID
			}
		}
	}
	return ""
}
