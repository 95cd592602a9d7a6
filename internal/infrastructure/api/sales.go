package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
)

// ── Órdenes y pagos ───────────────────────────────────────────────────────────

// CreateOrder crea una orden; el servidor calcula subtotal, impuestos y total.
func (c *Client) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	var out dto.CreateOrderResponse
	if err := c.Do(ctx, http.MethodPost, "/v1/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrders devuelve una página del historial de órdenes.
func (c *Client) ListOrders(ctx context.Context, params dto.ListParams) (*dto.ListOrdersResponse, error) {
	path := "/v1/orders"
	if q := params.Query(); q != "" {
		path += "?" + q
	}
	var out dto.ListOrdersResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePayment registra el pago de una orden.
func (c *Client) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error) {
	var out dto.CreatePaymentResponse
	if err := c.Do(ctx, http.MethodPost, "/v1/payments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// ListCustomers devuelve una página de clientes; admite búsqueda libre.
func (c *Client) ListCustomers(ctx context.Context, params dto.ListParams) (*dto.ListCustomersResponse, error) {
	path := "/v1/customers"
	if q := params.Query(); q != "" {
		path += "?" + q
	}
	var out dto.ListCustomersResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCustomer crea un cliente y devuelve su id.
func (c *Client) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CreateCustomerResponse, error) {
	var out dto.CreateCustomerResponse
	if err := c.Do(ctx, http.MethodPost, "/v1/customers", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Sucursales ────────────────────────────────────────────────────────────────

// ListStores devuelve una página de sucursales.
func (c *Client) ListStores(ctx context.Context, params dto.ListParams) (*dto.ListStoresResponse, error) {
	path := "/v1/stores"
	if q := params.Query(); q != "" {
		path += "?" + q
	}
	var out dto.ListStoresResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateStore crea una sucursal.
func (c *Client) CreateStore(ctx context.Context, req dto.CreateStoreRequest) error {
	return c.Do(ctx, http.MethodPost, "/v1/stores", req, nil)
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// DashboardStats devuelve las métricas agregadas de ventas.
func (c *Client) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	var out entity.DashboardStats
	if err := c.Do(ctx, http.MethodGet, "/v1/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
