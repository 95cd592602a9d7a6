package dto

import (
	"net/url"
	"strconv"
)

// ListParams paginación y búsqueda para listados. El backend espera page
// (basado en 1), page_size y search como query params.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
}

// DefaultPage aplica valores por defecto si Page/PageSize son cero.
func (p *ListParams) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
}

// Query codifica los parámetros como query string ("" si todo es cero).
func (p ListParams) Query() string {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	return v.Encode()
}

// ErrorResponse cuerpo de error que devuelve la API.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}
