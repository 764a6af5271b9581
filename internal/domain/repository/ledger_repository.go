package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DevSairus/cartera-api/internal/domain/entity"
)

// OutstandingFilters filtros opcionales de la consulta de cartera.
// Los campos en cero no imponen restricción: el ledger debe tolerar el
// conjunto vacío y devolver toda la cartera pendiente.
type OutstandingFilters struct {
	CustomerID string
	FromDate   time.Time
	ToDate     time.Time
	Status     entity.PaymentStatus
}

// RegisterPaymentInput datos para registrar un abono contra un documento.
type RegisterPaymentInput struct {
	DocumentID string
	Amount     decimal.Decimal
	Method     string
	Notes      string
	PaidAt     time.Time
}

// LedgerRepository puerto hacia el libro de ventas y pagos (la fuente de
// verdad de facturas y abonos). La capa de cartera nunca parchea saldos
// localmente: registra el pago aquí y vuelve a consultar.
type LedgerRepository interface {
	// ListOutstanding devuelve los documentos con saldo > 0 que cumplan los
	// filtros. Los campos derivados de antigüedad vienen en cero; los calcula
	// el clasificador con la fecha de referencia del caller.
	ListOutstanding(ctx context.Context, filters OutstandingFilters) ([]entity.ReceivableDocument, error)

	// RegisterPayment persiste el abono y actualiza el saldo del documento en
	// una sola transacción. Retorna domain.ErrNotFound si el documento no
	// existe y domain.ErrSobrepago si el abono dejaría paid_amount > total.
	RegisterPayment(ctx context.Context, input RegisterPaymentInput) (*entity.Payment, error)

	// ListPaymentsByDocument historial de abonos de un documento (para el
	// detalle de conciliación).
	ListPaymentsByDocument(ctx context.Context, documentID string) ([]entity.Payment, error)
}
