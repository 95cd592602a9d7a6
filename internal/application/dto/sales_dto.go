package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
)

// ── Órdenes ───────────────────────────────────────────────────────────────────

// CreateOrderItemInput línea de la orden a crear. UnitPrice viaja para que el
// servidor valide contra el precio congelado en el carrito.
type CreateOrderItemInput struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes"`
}

// CreateOrderRequest creación de orden desde el snapshot del carrito.
type CreateOrderRequest struct {
	StoreID       string                 `json:"store_id,omitempty"`
	CustomerID    string                 `json:"customer_id,omitempty"`
	CashierID     string                 `json:"cashier_id,omitempty"`
	PaymentMethod entity.PaymentMethod   `json:"payment_method"`
	Items         []CreateOrderItemInput `json:"items"`
	PaidAmount    decimal.Decimal        `json:"paid_amount"`
}

// CreateOrderResponse orden confirmada con montos calculados por el servidor.
type CreateOrderResponse struct {
	Order entity.Order `json:"order"`
}

// ListOrdersResponse página del historial de órdenes.
type ListOrdersResponse struct {
	Orders   []entity.Order `json:"orders"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ── Pagos ─────────────────────────────────────────────────────────────────────

// CreatePaymentRequest registro de pago de una orden. Amount debe ser el
// total calculado por el servidor, no el subtotal local.
type CreatePaymentRequest struct {
	OrderID         string               `json:"order_id"`
	Amount          decimal.Decimal      `json:"amount"`
	PaymentMethod   entity.PaymentMethod `json:"payment_method"`
	ReferenceNumber string               `json:"reference_number,omitempty"`
	Provider        string               `json:"provider,omitempty"`
}

// CreatePaymentResponse pago registrado.
type CreatePaymentResponse struct {
	Payment entity.Payment `json:"payment"`
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// CreateCustomerResponse id del cliente creado.
type CreateCustomerResponse struct {
	ID string `json:"id"`
}

// ListCustomersResponse página de clientes.
type ListCustomersResponse struct {
	Customers []entity.Customer `json:"customers"`
	Total     int               `json:"total"`
}

// ── Sucursales ────────────────────────────────────────────────────────────────

// CreateStoreRequest alta de sucursal.
type CreateStoreRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// ListStoresResponse página de sucursales.
type ListStoresResponse struct {
	Stores []entity.Store `json:"stores"`
	Total  int            `json:"total"`
}
