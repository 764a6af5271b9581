package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrSobrepago        = errors.New("el abono excede el saldo del documento")
	ErrPagoNoRegistrado = errors.New("el pago no pudo registrarse")
)
