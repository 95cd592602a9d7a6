package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Taxonomía del cliente: transporte (red), autorización (401 tras agotar el
// intento único de refresh), validación local y error genérico del servidor.
// Ningún error es fatal para el proceso; todos quedan acotados a la acción
// del usuario que los produjo.
var (
	ErrUnauthorized   = errors.New("no autorizado")
	ErrSessionExpired = errors.New("sesión expirada: se requiere login")
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrTransport      = errors.New("fallo de red o transporte")
	ErrServer         = errors.New("error del servidor")
	ErrEmptyCart      = errors.New("el carrito está vacío")
	ErrNoMerchant     = errors.New("no hay contexto de comercio")
)
