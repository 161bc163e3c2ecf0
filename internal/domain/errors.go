package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los fallos de infraestructura
// no están aquí: se envuelven con %w y el handler los aplana a 500 INTERNAL.
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrAlreadyExists         = errors.New("el recurso ya existe")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrInvalidCredentials    = errors.New("credenciales inválidas")
	ErrAccountInactive       = errors.New("cuenta inactiva")
	ErrInvalidOrExpiredToken = errors.New("token inválido o expirado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
)
