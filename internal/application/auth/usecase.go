// Package auth implementa los flujos de autenticación de la terminal: login
// del dueño, selección/login de empleado y logout. Pobla el store de sesión y
// las llaves de token; nunca valida credenciales localmente.
package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
	"github.com/jhoicas/omnipos-terminal/internal/application/session"
	"github.com/jhoicas/omnipos-terminal/internal/domain"
	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
	pkgjwt "github.com/jhoicas/omnipos-terminal/pkg/jwt"
	"github.com/jhoicas/omnipos-terminal/pkg/logger"
)

// API puerto hacia los endpoints de autenticación del backend.
type API interface {
	MerchantLogin(ctx context.Context, req dto.MerchantLoginRequest) (*dto.MerchantLoginResponse, error)
	UserLogin(ctx context.Context, req dto.UserLoginRequest) (*dto.UserLoginResponse, error)
	CurrentMerchant(ctx context.Context) (*entity.Merchant, error)
}

// TokenStorage llaves de token del almacenamiento duradero.
type TokenStorage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

// UseCase flujos de login/logout.
type UseCase struct {
	api     API
	tokens  TokenStorage
	session *session.Store
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API, tokens TokenStorage, sess *session.Store, log *logger.Logger) *UseCase {
	return &UseCase{api: api, tokens: tokens, session: sess, log: log}
}

// MerchantLogin autentica al dueño con teléfono + PIN. Guarda ambos tokens,
// registra el flag de gestión de personal y la nómina, y cachea el perfil del
// comercio. Devuelve true si el comercio tiene cuentas de personal y la
// terminal debe pasar a la selección de perfil.
func (uc *UseCase) MerchantLogin(ctx context.Context, phone, pin string) (bool, error) {
	if phone == "" || pin == "" {
		return false, fmt.Errorf("login: teléfono y PIN son obligatorios: %w", domain.ErrInvalidInput)
	}

	resp, err := uc.api.MerchantLogin(ctx, dto.MerchantLoginRequest{Phone: phone, PIN: pin})
	if err != nil {
		return false, err
	}

	if resp.AccessToken != "" {
		if err := uc.tokens.Set(keyAccessToken, resp.AccessToken); err != nil {
			return false, fmt.Errorf("login: guardar access token: %w", err)
		}
	}
	if resp.RefreshToken != "" {
		if err := uc.tokens.Set(keyRefreshToken, resp.RefreshToken); err != nil {
			return false, fmt.Errorf("login: guardar refresh token: %w", err)
		}
	}

	// Tras el login opera el dueño: cualquier empleado previo queda fuera.
	uc.session.SetUser(nil)
	uc.session.SetUserManagementEnabled(resp.UserManagementEnabled)
	uc.session.SetAvailableUsers(resp.AvailableUsers)

	// El login no devuelve el perfil del comercio; se obtiene aparte para la
	// navegación y como contexto del login de empleados.
	if merchant, err := uc.api.CurrentMerchant(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("login: no se pudo cachear el perfil del comercio")
	} else {
		uc.session.SetMerchant(merchant)
	}

	uc.log.Info().Bool("user_management", resp.UserManagementEnabled).Msg("login de comercio exitoso")
	return resp.UserManagementEnabled, nil
}

// UserLogin autentica a un empleado dentro de la sesión del dueño. Los tokens
// del empleado sobrescriben a los del dueño y el empleado pasa a ser el actor
// actual.
func (uc *UseCase) UserLogin(ctx context.Context, username, password string) (*entity.User, error) {
	merchantID, err := uc.merchantID(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := uc.api.UserLogin(ctx, dto.UserLoginRequest{
		MerchantID: merchantID,
		Username:   username,
		Password:   password,
	})
	if err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		if err := uc.tokens.Set(keyAccessToken, resp.AccessToken); err != nil {
			return nil, fmt.Errorf("login empleado: guardar access token: %w", err)
		}
	}
	if resp.RefreshToken != "" {
		if err := uc.tokens.Set(keyRefreshToken, resp.RefreshToken); err != nil {
			return nil, fmt.Errorf("login empleado: guardar refresh token: %w", err)
		}
	}

	uc.session.SetUser(resp.User)
	uc.log.Info().Str("username", username).Msg("login de empleado exitoso")
	return resp.User, nil
}

// Logout resetea la sesión y limpia ambas llaves de token. El reset del store
// y la limpieza de tokens son pasos independientes a propósito.
func (uc *UseCase) Logout() {
	uc.session.Logout()
	_ = uc.tokens.Delete(keyAccessToken)
	_ = uc.tokens.Delete(keyRefreshToken)
	uc.log.Info().Msg("sesión cerrada")
}

// merchantID resuelve el id del tenant para el login de empleados: primero el
// store, luego el perfil remoto y, como último recurso, el claim del access
// token.
func (uc *UseCase) merchantID(ctx context.Context) (string, error) {
	if m := uc.session.Merchant(); m != nil && m.ID != "" {
		return m.ID, nil
	}
	if merchant, err := uc.api.CurrentMerchant(ctx); err == nil && merchant.ID != "" {
		uc.session.SetMerchant(merchant)
		return merchant.ID, nil
	}
	if token, ok := uc.tokens.Get(keyAccessToken); ok && token != "" {
		if claims, err := pkgjwt.ParseUnverified(token); err == nil && claims.MerchantID != "" {
			return claims.MerchantID, nil
		}
	}
	return "", fmt.Errorf("login empleado: %w", domain.ErrNoMerchant)
}
