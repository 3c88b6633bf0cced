package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/blindtreasure/orderview/constant"
	utilsContext "github.com/blindtreasure/orderview/utils/context"
	"github.com/blindtreasure/orderview/utils/errors"
)

// BackendRepository is the read-only client against the commerce backend.
// Every method returns the raw response body; shape handling is the
// normalizer's job, not the transport's.
type BackendRepository interface {
	FetchOrders(ctx context.Context, page, pageSize int) ([]byte, error)
	FetchOrder(ctx context.Context, orderID string) ([]byte, error)
	FetchOrderDetails(ctx context.Context, page, pageSize int) ([]byte, error)
	FetchDeliveredOrders(ctx context.Context, page, pageSize int) ([]byte, error)
	FetchInventoryItems(ctx context.Context, page, pageSize int) ([]byte, error)
}

type backendRepositoryImpl struct {
	baseURL string
	client  *http.Client
}

// NewBackendRepository returns a BackendRepository talking to baseURL.
func NewBackendRepository(baseURL string, timeout time.Duration) BackendRepository {
	return &backendRepositoryImpl{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *backendRepositoryImpl) FetchOrders(ctx context.Context, page, pageSize int) ([]byte, error) {
	return r.get(ctx, "/orders", pageParams(page, pageSize))
}

func (r *backendRepositoryImpl) FetchOrder(ctx context.Context, orderID string) ([]byte, error) {
	return r.get(ctx, "/orders/"+url.PathEscape(orderID), nil)
}

func (r *backendRepositoryImpl) FetchOrderDetails(ctx context.Context, page, pageSize int) ([]byte, error) {
	return r.get(ctx, "/orders/order-details", pageParams(page, pageSize))
}

func (r *backendRepositoryImpl) FetchDeliveredOrders(ctx context.Context, page, pageSize int) ([]byte, error) {
	return r.get(ctx, "/orders/delivered", pageParams(page, pageSize))
}

func (r *backendRepositoryImpl) FetchInventoryItems(ctx context.Context, page, pageSize int) ([]byte, error) {
	return r.get(ctx, "/inventory-items", pageParams(page, pageSize))
}

func (r *backendRepositoryImpl) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := r.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := utilsContext.GetAuthToken(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("backend returned status %d for %s", resp.StatusCode, path)
	}
	return body, nil
}

func pageParams(page, pageSize int) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	return params
}
