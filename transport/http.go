package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	orderviewapp "github.com/blindtreasure/orderview/application/orderview"
	"github.com/blindtreasure/orderview/cmd/config"
	"github.com/blindtreasure/orderview/constant"
	"github.com/blindtreasure/orderview/utils/errors"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	OrderViewApp orderviewapp.OrderViewApp
}

func NewTransport(cfg *config.Config, orderViewApp orderviewapp.OrderViewApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		OrderViewApp: orderViewApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.HandleFunc("/orders/buckets/{bucket}", rh.ListBucket).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{id}/summary", rh.OrderSummary).Methods(http.MethodGet)
	mux.HandleFunc("/order-details/{id}/tracking", rh.Tracking).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(cfg.Auth.JWTSecret))

	return mux
}

// ListBucket handler
// @Summary List one order bucket
// @Description Returns the reconciled records of one bucket (ALL, PENDING, DELIVERING, DELIVERED, CANCELLED, INVENTORY, IN_INVENTORY)
// @Tags Orders
// @Produce json
// @Param bucket path string true "Bucket key"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {array} model.DisplayRecord
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /orders/buckets/{bucket} [get]
func (s *RestHandler) ListBucket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bucket := constant.Bucket(mux.Vars(r)["bucket"])
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 0)

	if s.OrderViewApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	records, err := s.OrderViewApp.ListBucket(ctx, bucket, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, records)
}

// OrderSummary handler
// @Summary Order summary
// @Description Returns one order with its derived price breakdown
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.OrderSummaryView
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /orders/{id}/summary [get]
func (s *RestHandler) OrderSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.OrderViewApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	view, err := s.OrderViewApp.OrderSummary(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, view)
}

// Tracking handler
// @Summary Detail tracking view
// @Description Returns the delivery timeline and shipping info for one order detail
// @Tags Orders
// @Produce json
// @Param id path string true "Order detail ID"
// @Success 200 {object} model.TrackingView
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /order-details/{id}/tracking [get]
func (s *RestHandler) Tracking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.OrderViewApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	view, err := s.OrderViewApp.Tracking(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, view)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

type response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	cerr, ok := err.(errors.CustomError)
	if !ok {
		cerr = errors.SetCustomError(constant.ErrInternal)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(cerr.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(response{
		Code:    cerr.ErrorCode(),
		Message: cerr.Error(),
	})
}
