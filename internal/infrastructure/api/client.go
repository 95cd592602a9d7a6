// Package api es el único punto de egreso hacia el backend OmniPOS. Aplica
// las preocupaciones transversales del cliente: bearer token desde el
// almacenamiento duradero, desempaquetado del sobre {status, data} y un único
// intento de refresh + replay ante un 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
	"github.com/jhoicas/omnipos-terminal/internal/domain"
	"github.com/jhoicas/omnipos-terminal/pkg/logger"
)

const (
	refreshPath = "/v1/auth/refresh"

	// maxBodyBytes límite de lectura de cuerpos de respuesta.
	maxBodyBytes = 4 << 20
)

// TokenStorage puerto hacia las dos llaves de token del almacenamiento
// duradero del cliente (access_token, refresh_token).
type TokenStorage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Llaves en TokenStorage. Mismos nombres que el cliente web.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// Config parámetros del cliente.
type Config struct {
	BaseURL string // sin slash final; el prefijo /v1 va en cada path
	Timeout time.Duration
}

// Client adaptador HTTP tipado. Todas las llamadas de la aplicación pasan por
// Do; el flujo de refresh usa un cliente HTTP aparte para no reentrar en el
// manejo de 401.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	refreshClient *http.Client
	tokens        TokenStorage
	log           *logger.Logger

	// onAuthFailure navegación forzada al login cuando el refresh es
	// irrecuperable. Se invoca después de limpiar ambos tokens.
	onAuthFailure func()
}

// Option configuración opcional del cliente.
type Option func(*Client)

// WithAuthFailureHandler registra el hook de redirección al login.
func WithAuthFailureHandler(fn func()) Option {
	return func(c *Client) { c.onAuthFailure = fn }
}

// WithHTTPClient reemplaza el transporte (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
		c.refreshClient = hc
	}
}

// New construye el cliente.
func New(cfg Config, tokens TokenStorage, log *logger.Logger, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    &http.Client{Timeout: timeout},
		refreshClient: &http.Client{Timeout: timeout},
		tokens:        tokens,
		log:           log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do ejecuta una llamada a la API. body se serializa como JSON (nil = sin
// cuerpo); si out no es nil, la respuesta (desempaquetada del sobre si viene
// envuelto) se decodifica en él.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	// El flag de "ya reintentado" viaja como parámetro explícito: exactamente
	// un refresh por petición lógica, sin estado oculto en la request.
	return c.do(ctx, method, path, body, out, false)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, alreadyRetried bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar request %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: crear request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Bearer desde el almacenamiento duradero. "undefined" y "null" son
	// centinelas que el cliente web llegó a persistir; se tratan como ausencia.
	if token, ok := c.tokens.Get(KeyAccessToken); ok && token != "" && token != "undefined" && token != "null" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		c.log.Warn().Str("path", path).Msg("petición sin access token")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: %s %s cancelado: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("api: %s %s: %w: %v", method, path, domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("api: leer respuesta %s %s: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !alreadyRetried {
		if err := c.refreshTokens(ctx); err != nil {
			// Refresh irrecuperable: tokens limpios y redirección ya
			// disparada dentro de refreshTokens.
			return err
		}
		return c.do(ctx, method, path, body, out, true)
	}

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(method, path, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := decodeBody(raw, out); err != nil {
		return fmt.Errorf("api: decodificar respuesta %s %s: %w", method, path, err)
	}
	return nil
}

// refreshTokens intenta un único refresh con el refresh token almacenado.
// La llamada va por refreshClient (sin bearer, sin manejo de 401) para evitar
// recursión. Ante cualquier fallo limpia ambos tokens y fuerza la navegación
// al login.
//
// Dos peticiones que fallan con 401 al mismo tiempo pueden disparar cada una
// su propio refresh; el backend lo tolera y el último token escrito gana.
func (c *Client) refreshTokens(ctx context.Context) error {
	refreshToken, ok := c.tokens.Get(KeyRefreshToken)
	if !ok || refreshToken == "" || refreshToken == "undefined" || refreshToken == "null" {
		c.forceLogin("sin refresh token")
		return domain.ErrSessionExpired
	}

	payload, err := json.Marshal(dto.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		c.forceLogin("serializar refresh")
		return domain.ErrSessionExpired
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		c.forceLogin("crear request de refresh")
		return domain.ErrSessionExpired
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.refreshClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Msg("refresh de token fallido (transporte)")
		c.forceLogin("refresh fallido")
		return domain.ErrSessionExpired
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil || resp.StatusCode >= 400 {
		c.log.Error().Int("status", resp.StatusCode).Msg("refresh de token rechazado")
		c.forceLogin("refresh rechazado")
		return domain.ErrSessionExpired
	}

	var refreshed dto.RefreshResponse
	if err := decodeBody(raw, &refreshed); err != nil || refreshed.AccessToken == "" {
		c.log.Error().Msg("refresh sin nuevo access token")
		c.forceLogin("refresh sin token")
		return domain.ErrSessionExpired
	}

	if err := c.tokens.Set(KeyAccessToken, refreshed.AccessToken); err != nil {
		return fmt.Errorf("api: guardar access token: %w", err)
	}
	if refreshed.RefreshToken != "" {
		if err := c.tokens.Set(KeyRefreshToken, refreshed.RefreshToken); err != nil {
			return fmt.Errorf("api: guardar refresh token: %w", err)
		}
	}
	c.log.Debug().Msg("access token renovado")
	return nil
}

// forceLogin limpia ambos tokens y dispara la navegación al login.
func (c *Client) forceLogin(reason string) {
	c.log.Warn().Str("motivo", reason).Msg("sesión invalidada: se requiere login")
	_ = c.tokens.Delete(KeyAccessToken)
	_ = c.tokens.Delete(KeyRefreshToken)
	if c.onAuthFailure != nil {
		c.onAuthFailure()
	}
}

// errorFromResponse mapea un estado HTTP de error al error de dominio,
// conservando el mensaje del backend cuando viene en el cuerpo.
func (c *Client) errorFromResponse(method, path string, status int, raw []byte) error {
	var apiErr dto.ErrorResponse
	msg := ""
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		msg = apiErr.Message
	}

	var base error
	switch {
	case status == http.StatusUnauthorized:
		base = domain.ErrUnauthorized
	case status == http.StatusNotFound:
		base = domain.ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		base = domain.ErrInvalidInput
	default:
		base = domain.ErrServer
	}
	if msg != "" {
		return fmt.Errorf("api: %s %s (HTTP %d): %s: %w", method, path, status, msg, base)
	}
	return fmt.Errorf("api: %s %s (HTTP %d): %w", method, path, status, base)
}

// envelope sobre estándar {status, data} que algunas respuestas usan
// alrededor del payload real.
type envelope struct {
	Status json.RawMessage `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// decodeBody decodificación en dos pasos: primero intenta el sobre y, si la
// respuesta no lo trae, decodifica el cuerpo crudo tal cual.
func decodeBody(raw []byte, out any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Status) > 0 && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(raw, out)
}
