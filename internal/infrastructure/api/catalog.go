package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
)

// ── Categorías ────────────────────────────────────────────────────────────────

// ListCategories devuelve el catálogo de categorías del comercio.
func (c *Client) ListCategories(ctx context.Context) (*dto.ListCategoriesResponse, error) {
	var out dto.ListCategoriesResponse
	if err := c.Do(ctx, http.MethodGet, "/v1/categories", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory crea una categoría.
func (c *Client) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) error {
	return c.Do(ctx, http.MethodPost, "/v1/categories", req, nil)
}

// UpdateCategory actualiza una categoría existente.
func (c *Client) UpdateCategory(ctx context.Context, id string, req dto.CreateCategoryRequest) error {
	return c.Do(ctx, http.MethodPut, "/v1/categories/"+id, req, nil)
}

// DeleteCategory elimina una categoría.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/v1/categories/"+id, nil, nil)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProducts devuelve una página de productos; admite búsqueda libre.
func (c *Client) ListProducts(ctx context.Context, params dto.ListParams) (*dto.ListProductsResponse, error) {
	path := "/v1/products"
	if q := params.Query(); q != "" {
		path += "?" + q
	}
	var out dto.ListProductsResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct crea un producto.
func (c *Client) CreateProduct(ctx context.Context, req dto.CreateProductRequest) error {
	return c.Do(ctx, http.MethodPost, "/v1/products", req, nil)
}

// UpdateProduct actualiza un producto existente.
func (c *Client) UpdateProduct(ctx context.Context, id string, req dto.CreateProductRequest) error {
	return c.Do(ctx, http.MethodPut, "/v1/products/"+id, req, nil)
}

// DeleteProduct elimina un producto.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/v1/products/"+id, nil, nil)
}
