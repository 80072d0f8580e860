package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El detalle se agrega con fmt.Errorf("%w: ...") y se compara con errors.Is.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStorage           = errors.New("fallo de almacenamiento")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
