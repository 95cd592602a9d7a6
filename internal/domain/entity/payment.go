package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus estado de un pago (enum numérico del backend).
type PaymentStatus int

const (
	PaymentStatusUnspecified PaymentStatus = 0
	PaymentStatusPending     PaymentStatus = 1
	PaymentStatusSuccess     PaymentStatus = 2
	PaymentStatusFailed      PaymentStatus = 3
	PaymentStatusRefunded    PaymentStatus = 4
)

// Payment registro de pago asociado a una orden.
type Payment struct {
	ID              string          `json:"id"`
	MerchantID      string          `json:"merchant_id"`
	OrderID         string          `json:"order_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Status          PaymentStatus   `json:"status"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Provider        string          `json:"provider,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
