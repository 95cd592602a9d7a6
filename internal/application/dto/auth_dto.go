package dto

import (
	"encoding/json"

	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
)

// MerchantLoginRequest credenciales del dueño: teléfono + PIN de 6 dígitos.
type MerchantLoginRequest struct {
	Phone string `json:"phone"`
	PIN   string `json:"pin"`
}

// MerchantLoginResponse respuesta del login del dueño. El gateway gRPC del
// backend serializa en camelCase por defecto, pero algunos despliegues
// devuelven snake_case; se aceptan ambas grafías.
type MerchantLoginResponse struct {
	AccessToken           string
	RefreshToken          string
	UserManagementEnabled bool
	AvailableUsers        []entity.UserSummary
}

// UnmarshalJSON acepta access_token/accessToken, refresh_token/refreshToken,
// user_management_enabled/userManagementEnabled y available_users/availableUsers.
func (r *MerchantLoginResponse) UnmarshalJSON(b []byte) error {
	var wire struct {
		AccessTokenSnake  string               `json:"access_token"`
		AccessTokenCamel  string               `json:"accessToken"`
		RefreshTokenSnake string               `json:"refresh_token"`
		RefreshTokenCamel string               `json:"refreshToken"`
		UserMgmtSnake     bool                 `json:"user_management_enabled"`
		UserMgmtCamel     bool                 `json:"userManagementEnabled"`
		UsersSnake        []entity.UserSummary `json:"available_users"`
		UsersCamel        []entity.UserSummary `json:"availableUsers"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	r.AccessToken = firstNonEmpty(wire.AccessTokenSnake, wire.AccessTokenCamel)
	r.RefreshToken = firstNonEmpty(wire.RefreshTokenSnake, wire.RefreshTokenCamel)
	r.UserManagementEnabled = wire.UserMgmtSnake || wire.UserMgmtCamel
	r.AvailableUsers = wire.UsersSnake
	if r.AvailableUsers == nil {
		r.AvailableUsers = wire.UsersCamel
	}
	return nil
}

// UserLoginRequest login de un empleado: requiere el merchant_id del tenant.
type UserLoginRequest struct {
	MerchantID string `json:"merchant_id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

// UserLoginResponse tokens del empleado (reemplazan a los del dueño) más su
// identidad con rol y permisos.
type UserLoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// RefreshRequest cuerpo de /v1/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse nuevo access token y, opcionalmente, nuevo refresh token.
// Igual que el login, acepta ambas grafías.
type RefreshResponse struct {
	AccessToken  string
	RefreshToken string
}

func (r *RefreshResponse) UnmarshalJSON(b []byte) error {
	var wire struct {
		AccessTokenSnake  string `json:"access_token"`
		AccessTokenCamel  string `json:"accessToken"`
		RefreshTokenSnake string `json:"refresh_token"`
		RefreshTokenCamel string `json:"refreshToken"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	r.AccessToken = firstNonEmpty(wire.AccessTokenSnake, wire.AccessTokenCamel)
	r.RefreshToken = firstNonEmpty(wire.RefreshTokenSnake, wire.RefreshTokenCamel)
	return nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
