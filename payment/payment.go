// Package payment computes the total payable amount for an order, an order
// detail, or an inventory item. Pure arithmetic over already-fetched data.
package payment

import "github.com/blindtreasure/orderview/model"

// DetailTotal computes the payable amount for one order detail. With a
// resolvable parent order the detail's promotion discount is applied; without
// one the promotion is dropped. Dropping it is long-standing backend-observed
// behavior, kept literally pending product confirmation.
func DetailTotal(d *model.OrderDetail, parent *model.Order) float64 {
	if d == nil {
		return 0
	}
	total := d.TotalPrice + ShippingFeeOfDetail(d)
	if parent != nil {
		total -= d.DetailDiscountPromotion
	}
	return clamp(total)
}

// OrderTotal computes the payable amount for a whole order: final amount plus
// all shipment fees, minus the payment discount and the first detail's
// promotion. payment.discountRate is an absolute amount, not a percentage.
func OrderTotal(o *model.Order) float64 {
	if o == nil {
		return 0
	}
	total := o.FinalAmount + ShippingFeeOfOrder(o)
	if o.Payment != nil {
		total -= o.Payment.DiscountRate
	}
	if len(o.Details) > 0 {
		total -= o.Details[0].DetailDiscountPromotion
	}
	return clamp(total)
}

// InventoryTotal computes the payable amount for an inventory item: its price
// plus the fee of its single shipment, if any.
func InventoryTotal(i *model.InventoryItem) float64 {
	if i == nil {
		return 0
	}
	total := i.TotalPrice
	if i.Shipment != nil {
		total += i.Shipment.TotalFee
	}
	return clamp(total)
}

// TotalPayable dispatches on the record's kind. parent is only consulted for
// order details.
func TotalPayable(rec model.DisplayRecord, parent *model.Order) float64 {
	switch rec.Kind {
	case model.RecordKindOrder:
		return OrderTotal(rec.Order)
	case model.RecordKindOrderDetail:
		return DetailTotal(rec.Detail, parent)
	case model.RecordKindInventoryItem:
		return InventoryTotal(rec.Inventory)
	}
	return 0
}

// ShippingFeeOfDetail sums the fees of every shipment on the detail.
func ShippingFeeOfDetail(d *model.OrderDetail) float64 {
	var fee float64
	for i := range d.Shipments {
		fee += d.Shipments[i].TotalFee
	}
	return fee
}

// ShippingFeeOfOrder sums shipment fees across all of the order's details.
func ShippingFeeOfOrder(o *model.Order) float64 {
	var fee float64
	for i := range o.Details {
		fee += ShippingFeeOfDetail(&o.Details[i])
	}
	return fee
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
