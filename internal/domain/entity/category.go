package entity

import "time"

// Category representa una categoría del catálogo del comercio.
// Las categorías pueden anidarse vía ParentID (árbol en Children).
type Category struct {
	ID          string     `json:"id"`
	MerchantID  string     `json:"merchant_id"`
	ParentID    string     `json:"parent_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	SortOrder   int        `json:"sort_order"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Children    []Category `json:"children,omitempty"`
}
