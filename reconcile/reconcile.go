// Package reconcile merges the four backend collections into the seven
// bucket views the storefront tabs over. Classification is a pure function
// of the snapshot it is handed; a failed upstream fetch simply shows up here
// as an empty collection.
package reconcile

import (
	"github.com/blindtreasure/orderview/constant"
	"github.com/blindtreasure/orderview/model"
)

// Collections is the joined snapshot of all four upstream fetches.
// Any collection whose fetch failed is left nil.
type Collections struct {
	Orders          []model.Order
	OrderDetails    []model.OrderDetail
	DeliveredOrders []model.Order
	InventoryItems  []model.InventoryItem
}

// Classify returns the records belonging to one bucket, in source-collection
// order, deduplicated by id within the bucket. A record may legitimately
// appear in more than one bucket; it never appears twice in the same one.
func Classify(bucket constant.Bucket, c Collections) []model.DisplayRecord {
	out := make([]model.DisplayRecord, 0)
	seen := make(map[string]struct{})

	appendRecord := func(rec model.DisplayRecord) {
		if _, dup := seen[rec.ID]; dup {
			return
		}
		seen[rec.ID] = struct{}{}
		out = append(out, rec)
	}

	switch bucket {
	case constant.BucketAll:
		for i := range c.Orders {
			appendRecord(orderRecord(&c.Orders[i]))
		}

	case constant.BucketPending:
		for i := range c.Orders {
			if c.Orders[i].Status == constant.OrderStatusPending {
				appendRecord(orderRecord(&c.Orders[i]))
			}
		}
		for i := range c.OrderDetails {
			if c.OrderDetails[i].Status == constant.OrderStatusPending {
				appendRecord(detailRecord(&c.OrderDetails[i]))
			}
		}

	case constant.BucketDelivering:
		for i := range c.Orders {
			if c.Orders[i].Status == constant.OrderStatusDelivering {
				appendRecord(orderRecord(&c.Orders[i]))
			}
		}
		for i := range c.OrderDetails {
			if c.OrderDetails[i].Status == constant.OrderStatusDelivering {
				appendRecord(detailRecord(&c.OrderDetails[i]))
			}
		}

	case constant.BucketDelivered:
		for i := range c.Orders {
			if c.Orders[i].Status == constant.OrderStatusDelivered {
				appendRecord(orderRecord(&c.Orders[i]))
			}
		}
		// delivered-orders endpoint is pre-filtered upstream; the same order
		// may also be present in the main listing, hence the id dedup
		for i := range c.DeliveredOrders {
			appendRecord(orderRecord(&c.DeliveredOrders[i]))
		}

	case constant.BucketCancelled:
		for i := range c.Orders {
			s := c.Orders[i].Status
			if s == constant.OrderStatusCancelled || s == constant.OrderStatusExpired {
				appendRecord(orderRecord(&c.Orders[i]))
			}
		}

	case constant.BucketInventory:
		for i := range c.InventoryItems {
			item := &c.InventoryItems[i]
			if item.OrderDetailID != "" {
				// shadows an order detail; the detail flow owns its display
				continue
			}
			if item.Status != constant.InventoryStatusDelivered && item.Status != constant.InventoryStatusDelivering {
				continue
			}
			appendRecord(inventoryRecord(item))
		}

	case constant.BucketInInventory:
		for i := range c.OrderDetails {
			if c.OrderDetails[i].Status == constant.OrderStatusInInventory {
				appendRecord(detailRecord(&c.OrderDetails[i]))
			}
		}
	}

	return out
}

func orderRecord(o *model.Order) model.DisplayRecord {
	name := ""
	image := ""
	if len(o.Details) > 0 {
		name = o.Details[0].DisplayName()
		image = o.Details[0].DisplayImage()
	}
	return model.DisplayRecord{
		Kind:   model.RecordKindOrder,
		ID:     o.ID,
		Status: string(o.Status),
		Name:   name,
		Image:  image,
		Order:  o,
	}
}

func detailRecord(d *model.OrderDetail) model.DisplayRecord {
	return model.DisplayRecord{
		Kind:     model.RecordKindOrderDetail,
		ID:       d.ID,
		Status:   string(d.Status),
		Name:     d.DisplayName(),
		Image:    d.DisplayImage(),
		Quantity: d.Quantity,
		Detail:   d,
	}
}

func inventoryRecord(i *model.InventoryItem) model.DisplayRecord {
	return model.DisplayRecord{
		Kind:      model.RecordKindInventoryItem,
		ID:        i.ID,
		Status:    string(i.Status),
		Name:      i.DisplayName(),
		Image:     i.DisplayImage(),
		Quantity:  i.Quantity,
		Inventory: i,
	}
}
