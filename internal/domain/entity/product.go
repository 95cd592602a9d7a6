package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo tal como lo expone la API.
// BasePrice es el precio de venta vigente; el carrito congela una copia
// (snapshot) al agregar, de modo que un cambio de precio posterior no
// altera una venta en curso.
type Product struct {
	ID             string          `json:"id"`
	MerchantID     string          `json:"merchant_id"`
	CategoryID     string          `json:"category_id,omitempty"`
	SKU            string          `json:"sku"`
	Barcode        string          `json:"barcode,omitempty"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	BasePrice      decimal.Decimal `json:"base_price"`
	CostPrice      decimal.Decimal `json:"cost_price,omitempty"`
	TaxRate        decimal.Decimal `json:"tax_rate,omitempty"`
	HasVariants    bool            `json:"has_variants"`
	TrackInventory bool            `json:"track_inventory"`
	ImageURL       string          `json:"image_url,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      *time.Time      `json:"created_at,omitempty"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
	Category       *Category       `json:"category,omitempty"`
}
