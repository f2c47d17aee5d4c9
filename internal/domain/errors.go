package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrItemNotFound, ErrInsufficientStock y ErrValidation abortan la unidad
// transaccional completa: nunca se persiste una aplicación parcial de un movimiento.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrItemNotFound       = errors.New("artículo no encontrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrValidation         = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)
