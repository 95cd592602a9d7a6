package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims campos de aplicación que el backend incluye en el access token.
// La terminal nunca valida la firma (el secreto vive en el servidor); solo
// inspecciona claims para mostrar la sesión y para recuperar el merchant_id
// cuando el store no lo tiene cacheado.
type Claims struct {
	jwt.RegisteredClaims
	MerchantID string `json:"merchant_id"`
	UserID     string `json:"user_id,omitempty"`
	Role       string `json:"role,omitempty"`
}

// ParseUnverified decodifica los claims SIN verificar la firma. Cualquier
// decisión de autorización real la toma el backend; aquí el token es solo
// una fuente de contexto local.
func ParseUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: decodificar token: %w", err)
	}
	return claims, nil
}

// ExpiresAt devuelve la expiración del token, o zero time si no trae claim exp.
func (c *Claims) ExpiresAt() time.Time {
	if c == nil || c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.RegisteredClaims.ExpiresAt.Time
}

// Expired indica si el token ya venció según el claim exp.
// Un token sin exp se considera vigente (el servidor decide).
func (c *Claims) Expired(now time.Time) bool {
	exp := c.ExpiresAt()
	if exp.IsZero() {
		return false
	}
	return now.After(exp)
}
