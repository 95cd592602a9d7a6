package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
)

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategoryRequest alta/edición de categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	SortOrder   int    `json:"sort_order,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// ListCategoriesResponse listado plano de categorías.
type ListCategoriesResponse struct {
	Categories []entity.Category `json:"categories"`
	Total      int               `json:"total"`
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProductRequest alta/edición de producto.
type CreateProductRequest struct {
	CategoryID     string          `json:"category_id,omitempty"`
	SKU            string          `json:"sku"`
	Barcode        string          `json:"barcode,omitempty"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	BasePrice      decimal.Decimal `json:"base_price"`
	CostPrice      decimal.Decimal `json:"cost_price,omitempty"`
	TaxRate        decimal.Decimal `json:"tax_rate,omitempty"`
	TrackInventory bool            `json:"track_inventory"`
	IsActive       bool            `json:"is_active"`
}

// ListProductsResponse página de productos.
type ListProductsResponse struct {
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
