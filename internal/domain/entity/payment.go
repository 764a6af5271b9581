package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados al registrar un abono.
const (
	MetodoEfectivo      = "Efectivo"
	MetodoTransferencia = "Transferencia"
	MetodoTarjeta       = "Tarjeta"
	MetodoCheque        = "Cheque"
	MetodoNequi         = "Nequi"
	MetodoOtro          = "Otro"
)

var metodosPago = map[string]bool{
	MetodoEfectivo:      true,
	MetodoTransferencia: true,
	MetodoTarjeta:       true,
	MetodoCheque:        true,
	MetodoNequi:         true,
	MetodoOtro:          true,
}

// MetodoPagoValido indica si el método pertenece al catálogo fijo.
func MetodoPagoValido(m string) bool {
	return metodosPago[m]
}

// Payment un abono registrado contra un documento de cartera.
type Payment struct {
	ID         string
	DocumentID string
	Amount     decimal.Decimal
	Method     string
	Notes      string
	PaidAt     time.Time
	CreatedAt  time.Time
}
