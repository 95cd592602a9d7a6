package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/omnipos-terminal/internal/domain"
	"github.com/jhoicas/omnipos-terminal/internal/infrastructure/api"
	"github.com/jhoicas/omnipos-terminal/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memTokens TokenStorage en memoria para los tests del cliente.
type memTokens struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemTokens(pairs ...string) *memTokens {
	m := &memTokens{data: make(map[string]string)}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.data[pairs[i]] = pairs[i+1]
	}
	return m
}

func (m *memTokens) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *memTokens) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memTokens) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func newClient(t *testing.T, baseURL string, tokens api.TokenStorage, opts ...api.Option) *api.Client {
	t.Helper()
	return api.New(api.Config{BaseURL: baseURL}, tokens, logger.Nop(), opts...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bearer y decodificación
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el bearer sale del almacenamiento duradero en cada petición.
func TestDo_AdjuntaBearerDesdeStorage(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]string{"ok": "si"})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, newMemTokens(api.KeyAccessToken, "tok-123"))
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/v1/products", nil, nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

// Caso 2: los centinelas "undefined" y "null" cuentan como ausencia de token.
func TestDo_CentinelasNoViajanComoBearer(t *testing.T) {
	for _, sentinel := range []string{"undefined", "null", ""} {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, map[string]string{})
		}))

		c := newClient(t, srv.URL, newMemTokens(api.KeyAccessToken, sentinel))
		require.NoError(t, c.Do(context.Background(), http.MethodGet, "/v1/products", nil, nil))
		assert.Empty(t, gotAuth, "el centinela %q no debe viajar como bearer", sentinel)
		srv.Close()
	}
}

// Caso 3: respuesta envuelta en {status, data} se desempaqueta; respuesta
// cruda se decodifica tal cual.
func TestDo_DesempaquetaSobreYAceptaCrudo(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/envuelto":
			writeJSON(w, http.StatusOK, map[string]any{
				"status": "success",
				"data":   payload{Name: "Café"},
			})
		default:
			writeJSON(w, http.StatusOK, payload{Name: "Pan"})
		}
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, newMemTokens(api.KeyAccessToken, "tok"))

	var envuelto payload
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/v1/envuelto", nil, &envuelto))
	assert.Equal(t, "Café", envuelto.Name, "el payload debe salir de data, no del sobre")

	var crudo payload
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/v1/crudo", nil, &crudo))
	assert.Equal(t, "Pan", crudo.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh + replay ante 401
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: un 401 dispara exactamente un refresh y reintenta la petición
// original con el token nuevo.
func TestDo_401RefrescaYReintentaUnaVez(t *testing.T) {
	var refreshCalls, resourceCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/auth/refresh":
			refreshCalls++
			assert.Empty(t, r.Header.Get("Authorization"),
				"el refresh no debe llevar bearer")
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh-viejo", body["refresh_token"])
			writeJSON(w, http.StatusOK, map[string]string{
				"access_token":  "tok-nuevo",
				"refresh_token": "refresh-nuevo",
			})
		case "/v1/orders":
			resourceCalls++
			if r.Header.Get("Authorization") != "Bearer tok-nuevo" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "token vencido"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"ok": "si"})
		default:
			t.Errorf("ruta inesperada: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	tokens := newMemTokens(
		api.KeyAccessToken, "tok-viejo",
		api.KeyRefreshToken, "refresh-viejo",
	)
	c := newClient(t, srv.URL, tokens)

	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/v1/orders", nil, nil))
	assert.Equal(t, 1, refreshCalls, "exactamente un refresh")
	assert.Equal(t, 2, resourceCalls, "petición original + un replay")

	access, _ := tokens.Get(api.KeyAccessToken)
	refresh, _ := tokens.Get(api.KeyRefreshToken)
	assert.Equal(t, "tok-nuevo", access, "el token renovado debe persistirse")
	assert.Equal(t, "refresh-nuevo", refresh)
}

// Caso 5: si el replay vuelve a dar 401 no hay segundo refresh; el error se
// propaga como no autorizado.
func TestDo_SegundoCuatroCeroUnoNoReintenta(t *testing.T) {
	var refreshCalls, resourceCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/auth/refresh":
			refreshCalls++
			writeJSON(w, http.StatusOK, map[string]string{"access_token": "tok-nuevo"})
		default:
			resourceCalls++
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "denegado"})
		}
	}))
	defer srv.Close()

	tokens := newMemTokens(
		api.KeyAccessToken, "tok-viejo",
		api.KeyRefreshToken, "refresh-viejo",
	)
	c := newClient(t, srv.URL, tokens)

	err := c.Do(context.Background(), http.MethodGet, "/v1/orders", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, refreshCalls, "un solo refresh por petición lógica")
	assert.Equal(t, 2, resourceCalls, "sin tercer intento")
}

// Caso 6: 401 sin refresh token almacenado → sesión expirada, ambos tokens
// limpios y el hook de navegación al login disparado.
func TestDo_SinRefreshTokenLimpiaYRedirige(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "vencido"})
	}))
	defer srv.Close()

	tokens := newMemTokens(api.KeyAccessToken, "tok-viejo")
	redirigido := false
	c := newClient(t, srv.URL, tokens, api.WithAuthFailureHandler(func() { redirigido = true }))

	err := c.Do(context.Background(), http.MethodGet, "/v1/orders", nil, nil)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.True(t, redirigido, "debe dispararse la navegación al login")

	_, hayAccess := tokens.Get(api.KeyAccessToken)
	_, hayRefresh := tokens.Get(api.KeyRefreshToken)
	assert.False(t, hayAccess, "el access token debe eliminarse")
	assert.False(t, hayRefresh)
}

// Caso 7: el backend rechaza el refresh → mismo desenlace que sin token.
func TestDo_RefreshRechazadoLimpiaYRedirige(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/auth/refresh" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "refresh inválido"})
			return
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "vencido"})
	}))
	defer srv.Close()

	tokens := newMemTokens(
		api.KeyAccessToken, "tok-viejo",
		api.KeyRefreshToken, "refresh-vencido",
	)
	redirigido := false
	c := newClient(t, srv.URL, tokens, api.WithAuthFailureHandler(func() { redirigido = true }))

	err := c.Do(context.Background(), http.MethodGet, "/v1/orders", nil, nil)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.True(t, redirigido)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores
// ──────────────────────────────────────────────────────────────────────────────

// Cada familia de estado HTTP mapea a su error de dominio, conservando el
// mensaje del backend.
func TestDo_MapeaErroresDeDominio(t *testing.T) {
	cases := []struct {
		nombre  string
		status  int
		wantErr error
	}{
		{"404 → no encontrado", http.StatusNotFound, domain.ErrNotFound},
		{"400 → entrada inválida", http.StatusBadRequest, domain.ErrInvalidInput},
		{"422 → entrada inválida", http.StatusUnprocessableEntity, domain.ErrInvalidInput},
		{"500 → error de servidor", http.StatusInternalServerError, domain.ErrServer},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, map[string]string{"message": "detalle del backend"})
			}))
			defer srv.Close()

			c := newClient(t, srv.URL, newMemTokens(api.KeyAccessToken, "tok"))
			err := c.Do(context.Background(), http.MethodGet, "/v1/cosa", nil, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), "detalle del backend",
				"el mensaje del backend debe conservarse")
		})
	}
}

// Un fallo de red (servidor caído) mapea a error de transporte.
func TestDo_FalloDeRedEsErrTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito

	c := newClient(t, srv.URL, newMemTokens(api.KeyAccessToken, "tok"))
	err := c.Do(context.Background(), http.MethodGet, "/v1/cosa", nil, nil)
	assert.ErrorIs(t, err, domain.ErrTransport)
}
