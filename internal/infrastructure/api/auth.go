package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
)

// MerchantLogin autentica al dueño con teléfono + PIN. La respuesta trae los
// tokens, el flag de gestión de personal y la nómina de empleados disponible.
func (c *Client) MerchantLogin(ctx context.Context, req dto.MerchantLoginRequest) (*dto.MerchantLoginResponse, error) {
	var out dto.MerchantLoginResponse
	if err := c.Do(ctx, http.MethodPost, "/v1/merchant/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserLogin autentica a un empleado dentro del tenant. Los tokens devueltos
// reemplazan a los del dueño.
func (c *Client) UserLogin(ctx context.Context, req dto.UserLoginRequest) (*dto.UserLoginResponse, error) {
	var out dto.UserLoginResponse
	if err := c.Do(ctx, http.MethodPost, "/v1/users/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentMerchant devuelve el perfil del comercio autenticado.
func (c *Client) CurrentMerchant(ctx context.Context) (*entity.Merchant, error) {
	var out entity.Merchant
	if err := c.Do(ctx, http.MethodGet, "/v1/merchant/current", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
