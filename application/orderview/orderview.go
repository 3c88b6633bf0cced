package orderview

import (
	"context"
	"sync"

	"github.com/blindtreasure/orderview/catalog"
	"github.com/blindtreasure/orderview/cmd/config"
	"github.com/blindtreasure/orderview/constant"
	"github.com/blindtreasure/orderview/model"
	"github.com/blindtreasure/orderview/normalizer"
	"github.com/blindtreasure/orderview/payment"
	"github.com/blindtreasure/orderview/reconcile"
	backendrepo "github.com/blindtreasure/orderview/repository/backend"
	cacherepo "github.com/blindtreasure/orderview/repository/cache"
	"github.com/blindtreasure/orderview/timeline"
	utilsContext "github.com/blindtreasure/orderview/utils/context"
	"github.com/blindtreasure/orderview/utils/errors"
	"github.com/blindtreasure/orderview/utils/logger"
	"go.uber.org/zap"
)

// OrderViewApp is the storefront-facing read model: bucket listings, order
// summaries and per-detail tracking, all derived from the commerce backend's
// raw collections.
type OrderViewApp interface {
	ListBucket(ctx context.Context, bucket constant.Bucket, page, pageSize int) ([]model.DisplayRecord, error)
	OrderSummary(ctx context.Context, orderID string) (*model.OrderSummaryView, error)
	Tracking(ctx context.Context, detailID string) (*model.TrackingView, error)
}

type orderViewAppImpl struct {
	config      *config.Config
	backendRepo backendrepo.BackendRepository
	cacheRepo   cacherepo.CacheRepository
	catalog     *catalog.Catalog
	timeline    *timeline.Builder
}

func NewOrderViewApp(config *config.Config, backendRepo backendrepo.BackendRepository, cacheRepo cacherepo.CacheRepository, cat *catalog.Catalog, tb *timeline.Builder) OrderViewApp {
	return &orderViewAppImpl{config: config, backendRepo: backendRepo, cacheRepo: cacheRepo, catalog: cat, timeline: tb}
}

// ListBucket fetches the four source collections, classifies them into the
// requested bucket and enriches each record for display. A failed fetch
// degrades that collection to empty instead of failing the listing.
func (s *orderViewAppImpl) ListBucket(ctx context.Context, bucket constant.Bucket, page, pageSize int) ([]model.DisplayRecord, error) {
	if !constant.ValidBucket(bucket) {
		return nil, errors.SetCustomError(constant.ErrUnknownBucket)
	}
	if pageSize <= 0 {
		pageSize = s.config.Backend.DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	userID, _ := utilsContext.GetUserID(ctx)
	if s.cacheRepo != nil && userID != "" {
		if records, ok := s.cacheRepo.GetBucket(ctx, userID, bucket, page, pageSize); ok {
			return records, nil
		}
	}

	collections := s.fetchCollections(ctx, page, pageSize)

	records := reconcile.Classify(bucket, collections)
	for i := range records {
		s.enrich(&records[i], collections.Orders)
	}

	if s.cacheRepo != nil && userID != "" {
		if err := s.cacheRepo.SetBucket(ctx, userID, bucket, page, pageSize, records, s.config.Cache.TTL); err != nil {
			logger.Warn("[ListBucket] cache set", zap.String("error", err.Error()))
		}
	}

	return records, nil
}

// fetchCollections fans out the four upstream reads and joins them into one
// snapshot. Each failed fetch is logged and contributes an empty slice.
func (s *orderViewAppImpl) fetchCollections(ctx context.Context, page, pageSize int) reconcile.Collections {
	var (
		wg          sync.WaitGroup
		collections reconcile.Collections
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		body, err := s.backendRepo.FetchOrders(ctx, page, pageSize)
		if err != nil {
			logger.Warn("[fetchCollections] orders", zap.String("error", err.Error()))
			return
		}
		collections.Orders = normalizer.List[model.Order](body)
	}()
	go func() {
		defer wg.Done()
		body, err := s.backendRepo.FetchOrderDetails(ctx, page, pageSize)
		if err != nil {
			logger.Warn("[fetchCollections] order details", zap.String("error", err.Error()))
			return
		}
		collections.OrderDetails = normalizer.List[model.OrderDetail](body)
	}()
	go func() {
		defer wg.Done()
		body, err := s.backendRepo.FetchDeliveredOrders(ctx, page, pageSize)
		if err != nil {
			logger.Warn("[fetchCollections] delivered orders", zap.String("error", err.Error()))
			return
		}
		collections.DeliveredOrders = normalizer.List[model.Order](body)
	}()
	go func() {
		defer wg.Done()
		body, err := s.backendRepo.FetchInventoryItems(ctx, page, pageSize)
		if err != nil {
			logger.Warn("[fetchCollections] inventory items", zap.String("error", err.Error()))
			return
		}
		collections.InventoryItems = normalizer.List[model.InventoryItem](body)
	}()
	wg.Wait()

	return collections
}

// enrich fills the display fields classification leaves blank: status label
// and color from the catalog and the payable total.
func (s *orderViewAppImpl) enrich(rec *model.DisplayRecord, orders []model.Order) {
	switch rec.Kind {
	case model.RecordKindOrder:
		rec.StatusLabel = s.catalog.OrderStatusLabel(rec.Status)
		rec.StatusColor = s.catalog.OrderStatusColor(rec.Status)
	case model.RecordKindOrderDetail:
		rec.StatusLabel = s.catalog.DetailStatusLabel(rec.Status)
		rec.StatusColor = s.catalog.DetailStatusColor(rec.Status)
	case model.RecordKindInventoryItem:
		// inventory items reuse the order-level table's capitalized variants
		rec.StatusLabel = s.catalog.OrderStatusLabel(rec.Status)
		rec.StatusColor = s.catalog.OrderStatusColor(rec.Status)
	}

	var parent *model.Order
	if rec.Kind == model.RecordKindOrderDetail {
		parent = findParentOrder(orders, rec.Detail.OrderID)
	}
	rec.TotalPayable = payment.TotalPayable(*rec, parent)
}

// OrderSummary returns the order-detail screen payload for one order.
func (s *orderViewAppImpl) OrderSummary(ctx context.Context, orderID string) (*model.OrderSummaryView, error) {
	body, err := s.backendRepo.FetchOrder(ctx, orderID)
	if err != nil {
		logger.Error("[OrderSummary] fetch order", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, asUpstreamError(err)
	}

	order, ok := normalizer.One[model.Order](body)
	if !ok || order.ID == "" {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	view := &model.OrderSummaryView{
		OrderID:          order.ID,
		Status:           order.Status,
		StatusLabel:      s.catalog.OrderStatusLabel(string(order.Status)),
		StatusColor:      s.catalog.OrderStatusColor(string(order.Status)),
		PlacedAt:         order.PlacedAt,
		CompletedAt:      order.CompletedAt,
		Subtotal:         order.TotalAmount,
		ShippingFee:      order.TotalShippingFee,
		GrandTotal:       order.TotalAmount + order.TotalShippingFee,
		TotalPayable:     payment.OrderTotal(&order),
		Trackable:        catalog.HasTrackableItems(order.Details),
		TrackingDetailID: catalog.TrackingDetailID(order.Details),
		Details:          order.Details,
		Payment:          order.Payment,
	}
	if order.Payment != nil {
		view.Discount = order.Payment.Amount - order.Payment.NetAmount
	}
	return view, nil
}

// Tracking locates one order detail, resolves its parent order and derives
// the tracking screen payload. A missing parent only degrades precision (the
// detail promotion is dropped from the payable total); it is not an error.
func (s *orderViewAppImpl) Tracking(ctx context.Context, detailID string) (*model.TrackingView, error) {
	body, err := s.backendRepo.FetchOrderDetails(ctx, 1, s.config.Backend.LookupPageSize)
	if err != nil {
		logger.Error("[Tracking] fetch order details", zap.String("error", err.Error()))
		return nil, asUpstreamError(err)
	}

	details := normalizer.List[model.OrderDetail](body)
	var detail *model.OrderDetail
	for i := range details {
		if details[i].ID == detailID {
			detail = &details[i]
			break
		}
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	parent := s.resolveParentOrder(ctx, detail)

	view := &model.TrackingView{
		DetailID:      detail.ID,
		Status:        detail.Status,
		StatusLabel:   s.catalog.DetailStatusLabel(string(detail.Status)),
		Name:          detail.DisplayName(),
		Image:         detail.DisplayImage(),
		Quantity:      detail.Quantity,
		TotalPrice:    detail.TotalPrice,
		TotalPayable:  payment.DetailTotal(detail, parent),
		ProgressStage: timeline.ProgressStage(detail.Status),
		Timeline:      s.timeline.BuildDetail(detail, parent),
	}
	if parent != nil {
		view.OrderID = parent.ID
	} else if detail.OrderID != "" {
		view.OrderID = detail.OrderID
	}
	if len(detail.Shipments) > 0 {
		sh := detail.Shipments[0]
		view.Shipping = &model.ShippingInfo{
			Provider:       sh.Provider,
			ProviderLabel:  s.catalog.ProviderLabel(sh.Provider),
			TrackingNumber: sh.TrackingNumber,
			TotalFee:       sh.TotalFee,
		}
	}
	return view, nil
}

// resolveParentOrder scans the user's orders for the one containing the
// detail. Failure here is the documented reduced-precision path, not an error.
func (s *orderViewAppImpl) resolveParentOrder(ctx context.Context, detail *model.OrderDetail) *model.Order {
	body, err := s.backendRepo.FetchOrders(ctx, 1, s.config.Backend.LookupPageSize)
	if err != nil {
		logger.Warn("[resolveParentOrder] fetch orders", zap.String("error", err.Error()))
		return nil
	}
	orders := normalizer.List[model.Order](body)
	if detail.OrderID != "" {
		if o := findParentOrder(orders, detail.OrderID); o != nil {
			return o
		}
	}
	for i := range orders {
		for j := range orders[i].Details {
			if orders[i].Details[j].ID == detail.ID {
				return &orders[i]
			}
		}
	}
	return nil
}

func findParentOrder(orders []model.Order, orderID string) *model.Order {
	if orderID == "" {
		return nil
	}
	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i]
		}
	}
	return nil
}

func asUpstreamError(err error) error {
	if cerr, ok := err.(errors.CustomError); ok {
		return cerr
	}
	return errors.SetCustomError(constant.ErrUpstream)
}
