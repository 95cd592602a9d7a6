package auth_test

import (
	"context"
	"errors"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/omnipos-terminal/internal/application/auth"
	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
	"github.com/jhoicas/omnipos-terminal/internal/application/session"
	"github.com/jhoicas/omnipos-terminal/internal/domain"
	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
	"github.com/jhoicas/omnipos-terminal/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeAuthAPI puerto de autenticación con respuestas programables.
type fakeAuthAPI struct {
	merchantResp *dto.MerchantLoginResponse
	merchantErr  error

	userResp   *dto.UserLoginResponse
	userErr    error
	gotUserReq *dto.UserLoginRequest

	currentMerchant *entity.Merchant
	currentErr      error
}

func (f *fakeAuthAPI) MerchantLogin(_ context.Context, _ dto.MerchantLoginRequest) (*dto.MerchantLoginResponse, error) {
	return f.merchantResp, f.merchantErr
}

func (f *fakeAuthAPI) UserLogin(_ context.Context, req dto.UserLoginRequest) (*dto.UserLoginResponse, error) {
	f.gotUserReq = &req
	return f.userResp, f.userErr
}

func (f *fakeAuthAPI) CurrentMerchant(_ context.Context) (*entity.Merchant, error) {
	return f.currentMerchant, f.currentErr
}

// memTokens TokenStorage en memoria.
type memTokens map[string]string

func (m memTokens) Get(key string) (string, bool) { v, ok := m[key]; return v, ok }
func (m memTokens) Set(key, value string) error   { m[key] = value; return nil }
func (m memTokens) Delete(key string) error       { delete(m, key); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// MerchantLogin
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: login feliz del dueño. Tokens guardados, sesión poblada y el
// retorno indica si hay que pasar a selección de perfil.
func TestMerchantLogin_PueblaTokensYSesion(t *testing.T) {
	api := &fakeAuthAPI{
		merchantResp: &dto.MerchantLoginResponse{
			AccessToken:           "at",
			RefreshToken:          "rt",
			UserManagementEnabled: true,
			AvailableUsers:        []entity.UserSummary{{ID: "u1", Username: "cajero1"}},
		},
		currentMerchant: &entity.Merchant{ID: "m1", Name: "Tienda Centro"},
	}
	tokens := memTokens{}
	sess := session.New(nil, logger.Nop())
	uc := auth.NewUseCase(api, tokens, sess, logger.Nop())

	needsSelection, err := uc.MerchantLogin(context.Background(), "3001234567", "123456")
	require.NoError(t, err)
	assert.True(t, needsSelection, "con gestión de personal activa hay selección de perfil")

	assert.Equal(t, "at", tokens["access_token"])
	assert.Equal(t, "rt", tokens["refresh_token"])
	require.NotNil(t, sess.Merchant())
	assert.Equal(t, "m1", sess.Merchant().ID)
	assert.Nil(t, sess.User(), "tras el login opera el dueño")
	require.Len(t, sess.AvailableUsers(), 1)
	assert.True(t, sess.HasPermission("settings:read"), "el dueño tiene acceso total")
}

// Caso 2: credenciales vacías → validación local sin tocar la red.
func TestMerchantLogin_CredencialesVacias(t *testing.T) {
	uc := auth.NewUseCase(&fakeAuthAPI{}, memTokens{}, session.New(nil, logger.Nop()), logger.Nop())

	_, err := uc.MerchantLogin(context.Background(), "", "123456")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.MerchantLogin(context.Background(), "3001234567", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 3: si el perfil del comercio no se puede cachear el login igual
// procede; la identidad se resolverá después.
func TestMerchantLogin_SinPerfilDeComercio(t *testing.T) {
	api := &fakeAuthAPI{
		merchantResp: &dto.MerchantLoginResponse{AccessToken: "at", RefreshToken: "rt"},
		currentErr:   errors.New("perfil no disponible"),
	}
	sess := session.New(nil, logger.Nop())
	uc := auth.NewUseCase(api, memTokens{}, sess, logger.Nop())

	needsSelection, err := uc.MerchantLogin(context.Background(), "3001234567", "123456")
	require.NoError(t, err, "el fallo del perfil no debe romper el login")
	assert.False(t, needsSelection)
	assert.Nil(t, sess.Merchant())
}

// Caso 4: un login nuevo desplaza al empleado anterior.
func TestMerchantLogin_DesplazaEmpleadoPrevio(t *testing.T) {
	api := &fakeAuthAPI{
		merchantResp:    &dto.MerchantLoginResponse{AccessToken: "at"},
		currentMerchant: &entity.Merchant{ID: "m1"},
	}
	sess := session.New(nil, logger.Nop())
	sess.SetUser(&entity.User{ID: "u-viejo", Username: "anterior"})
	uc := auth.NewUseCase(api, memTokens{}, sess, logger.Nop())

	_, err := uc.MerchantLogin(context.Background(), "3001234567", "123456")
	require.NoError(t, err)
	assert.Nil(t, sess.User(), "el empleado previo queda fuera")
}

// ──────────────────────────────────────────────────────────────────────────────
// UserLogin y la resolución del merchant_id
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: el merchant_id sale primero del store de sesión.
func TestUserLogin_MerchantDesdeSesion(t *testing.T) {
	api := &fakeAuthAPI{
		userResp: &dto.UserLoginResponse{
			AccessToken:  "at-empleado",
			RefreshToken: "rt-empleado",
			User:         &entity.User{ID: "u7", Username: "cajero1"},
		},
	}
	tokens := memTokens{"access_token": "at-dueno"}
	sess := session.New(nil, logger.Nop())
	sess.SetMerchant(&entity.Merchant{ID: "m1"})
	uc := auth.NewUseCase(api, tokens, sess, logger.Nop())

	user, err := uc.UserLogin(context.Background(), "cajero1", "clave")
	require.NoError(t, err)
	require.NotNil(t, user)

	require.NotNil(t, api.gotUserReq)
	assert.Equal(t, "m1", api.gotUserReq.MerchantID)
	assert.Equal(t, "at-empleado", tokens["access_token"],
		"los tokens del empleado sobrescriben a los del dueño")
	require.NotNil(t, sess.User())
	assert.Equal(t, "u7", sess.User().ID)
}

// Caso 6: sin sesión ni perfil remoto, el merchant_id se rescata del claim
// del access token (sin verificar firma).
func TestUserLogin_MerchantDesdeClaimDelToken(t *testing.T) {
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256,
		gojwt.MapClaims{"merchant_id": "m-claim"}).SignedString([]byte("x"))
	require.NoError(t, err)

	api := &fakeAuthAPI{
		currentErr: errors.New("no disponible"),
		userResp:   &dto.UserLoginResponse{AccessToken: "at", User: &entity.User{ID: "u7"}},
	}
	tokens := memTokens{"access_token": tok}
	uc := auth.NewUseCase(api, tokens, session.New(nil, logger.Nop()), logger.Nop())

	_, err = uc.UserLogin(context.Background(), "cajero1", "clave")
	require.NoError(t, err)
	assert.Equal(t, "m-claim", api.gotUserReq.MerchantID)
}

// Caso 7: sin ninguna fuente de merchant_id el login de empleado no procede.
func TestUserLogin_SinMerchantFalla(t *testing.T) {
	api := &fakeAuthAPI{currentErr: errors.New("no disponible")}
	uc := auth.NewUseCase(api, memTokens{}, session.New(nil, logger.Nop()), logger.Nop())

	_, err := uc.UserLogin(context.Background(), "cajero1", "clave")
	assert.ErrorIs(t, err, domain.ErrNoMerchant)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

// Logout limpia la sesión y ambas llaves de token.
func TestLogout_LimpiaSesionYTokens(t *testing.T) {
	tokens := memTokens{"access_token": "at", "refresh_token": "rt"}
	sess := session.New(nil, logger.Nop())
	sess.SetMerchant(&entity.Merchant{ID: "m1"})
	uc := auth.NewUseCase(&fakeAuthAPI{}, tokens, sess, logger.Nop())

	uc.Logout()

	assert.Nil(t, sess.Merchant())
	assert.Empty(t, tokens, "ambas llaves de token deben eliminarse")
	assert.False(t, sess.HasPermission("pos:access"))
}
