package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod método de pago aceptado por la API (enum numérico del backend).
type PaymentMethod int

const (
	PaymentMethodUnspecified PaymentMethod = 0
	PaymentMethodCash        PaymentMethod = 1
	PaymentMethodQRIS        PaymentMethod = 2
	PaymentMethodDebit       PaymentMethod = 3
	PaymentMethodCredit      PaymentMethod = 4
)

// String devuelve la etiqueta legible del método de pago.
func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodCash:
		return "CASH"
	case PaymentMethodQRIS:
		return "QRIS"
	case PaymentMethodDebit:
		return "DEBIT"
	case PaymentMethodCredit:
		return "CREDIT"
	default:
		return "UNSPECIFIED"
	}
}

// OrderItem línea de una orden ya confirmada por el servidor.
type OrderItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	VariantID   string          `json:"variant_id,omitempty"`
	VariantName string          `json:"variant_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Notes       string          `json:"notes,omitempty"`
}

// Order orden confirmada. Los montos (subtotal, impuestos, total) los
// calcula el servidor; el cliente nunca los recalcula.
type Order struct {
	ID             string          `json:"id"`
	OrderNumber    string          `json:"order_number"`
	Status         int             `json:"status"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	ChangeAmount   decimal.Decimal `json:"change_amount"`
	Items          []OrderItem     `json:"items"`
	CreatedAt      time.Time       `json:"created_at"`
}
