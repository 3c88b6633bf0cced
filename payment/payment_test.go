package payment_test

import (
	"testing"

	"github.com/blindtreasure/orderview/model"
	"github.com/blindtreasure/orderview/payment"
	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		order *model.Order
		want  float64
	}{
		{
			name: "full breakdown",
			// 100000 + 15000 - 5000 - 2000
			order: &model.Order{
				FinalAmount: 100000,
				Payment:     &model.OrderPayment{DiscountRate: 5000},
				Details: []model.OrderDetail{
					{
						DetailDiscountPromotion: 2000,
						Shipments:               []model.Shipment{{TotalFee: 15000}},
					},
				},
			},
			want: 108000,
		},
		{
			name:  "no payment, no details",
			order: &model.Order{FinalAmount: 50000},
			want:  50000,
		},
		{
			name: "shipping summed across details and shipments",
			order: &model.Order{
				FinalAmount: 10000,
				Details: []model.OrderDetail{
					{Shipments: []model.Shipment{{TotalFee: 1000}, {TotalFee: 2000}}},
					{Shipments: []model.Shipment{{TotalFee: 500}}},
				},
			},
			want: 13500,
		},
		{
			name: "only first detail promotion applies",
			order: &model.Order{
				FinalAmount: 10000,
				Details: []model.OrderDetail{
					{DetailDiscountPromotion: 1000},
					{DetailDiscountPromotion: 9999},
				},
			},
			want: 9000,
		},
		{
			name:  "nil order",
			order: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payment.OrderTotal(tt.order))
		})
	}
}

func TestDetailTotal(t *testing.T) {
	parent := &model.Order{ID: "o-1"}

	tests := []struct {
		name   string
		detail *model.OrderDetail
		parent *model.Order
		want   float64
	}{
		{
			name: "with parent the promotion applies",
			detail: &model.OrderDetail{
				TotalPrice:              50000,
				DetailDiscountPromotion: 2000,
				Shipments:               []model.Shipment{{TotalFee: 3000}},
			},
			parent: parent,
			want:   51000,
		},
		{
			name: "without parent the promotion is dropped",
			// 50000 + 3000 + 2000 shipping, promotion omitted
			detail: &model.OrderDetail{
				TotalPrice:              50000,
				DetailDiscountPromotion: 2000,
				Shipments:               []model.Shipment{{TotalFee: 3000}, {TotalFee: 2000}},
			},
			parent: nil,
			want:   55000,
		},
		{
			name:   "no shipments means zero fee",
			detail: &model.OrderDetail{TotalPrice: 1234},
			parent: nil,
			want:   1234,
		},
		{
			name:   "nil detail",
			detail: nil,
			parent: parent,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payment.DetailTotal(tt.detail, tt.parent))
		})
	}
}

func TestInventoryTotal(t *testing.T) {
	assert.Equal(t, float64(0), payment.InventoryTotal(nil))
	assert.Equal(t, float64(7000), payment.InventoryTotal(&model.InventoryItem{TotalPrice: 7000}))
	assert.Equal(t, float64(8500), payment.InventoryTotal(&model.InventoryItem{
		TotalPrice: 7000,
		Shipment:   &model.Shipment{TotalFee: 1500},
	}))
}

func TestTotalPayable_Dispatch(t *testing.T) {
	o := &model.Order{FinalAmount: 1000}
	d := &model.OrderDetail{TotalPrice: 2000}
	i := &model.InventoryItem{TotalPrice: 3000}

	assert.Equal(t, float64(1000), payment.TotalPayable(model.DisplayRecord{Kind: model.RecordKindOrder, Order: o}, nil))
	assert.Equal(t, float64(2000), payment.TotalPayable(model.DisplayRecord{Kind: model.RecordKindOrderDetail, Detail: d}, nil))
	assert.Equal(t, float64(3000), payment.TotalPayable(model.DisplayRecord{Kind: model.RecordKindInventoryItem, Inventory: i}, nil))
	assert.Equal(t, float64(0), payment.TotalPayable(model.DisplayRecord{}, nil))
}

func TestTotalPayable_NeverNegative(t *testing.T) {
	// discounts larger than the amount clamp to zero rather than going negative
	order := &model.Order{
		FinalAmount: 1000,
		Payment:     &model.OrderPayment{DiscountRate: 5000},
	}
	assert.GreaterOrEqual(t, payment.OrderTotal(order), float64(0))

	detail := &model.OrderDetail{
		TotalPrice:              100,
		DetailDiscountPromotion: 900,
	}
	assert.GreaterOrEqual(t, payment.DetailTotal(detail, &model.Order{}), float64(0))
}
