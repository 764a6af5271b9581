package cartera

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DevSairus/cartera-api/internal/application/dto"
	"github.com/DevSairus/cartera-api/internal/domain"
	"github.com/DevSairus/cartera-api/internal/domain/entity"
	"github.com/DevSairus/cartera-api/internal/domain/repository"
	"github.com/DevSairus/cartera-api/pkg/logger"
)

// PaymentUseCase flujo de conciliación: valida el abono, lo delega al
// ledger y, si queda registrado, dispara el re-fetch completo de la vista.
// Nunca parchea saldos locales: tras un pago exitoso el snapshot se
// considera obsoleto y se reemplaza con lo que el ledger confirme.
type PaymentUseCase struct {
	ledger repository.LedgerRepository
	view   *UseCase
	log    *logger.Logger
	now    func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(ledger repository.LedgerRepository, view *UseCase, log *logger.Logger) *PaymentUseCase {
	return &PaymentUseCase{
		ledger: ledger,
		view:   view,
		log:    log,
		now:    time.Now,
	}
}

// Register registra un abono contra un documento de cartera.
//
// Validación local: monto positivo, método del catálogo y documento
// identificado. El monto mayor al saldo NO se rechaza aquí: esa decisión
// es del ledger, que la resuelve dentro de su transacción (ErrSobrepago).
// En caso de fallo el documento queda intacto y el error llega al operador;
// no existe mutación local parcial.
func (uc *PaymentUseCase) Register(ctx context.Context, in dto.RegisterPaymentRequest) (*dto.PaymentResponse, error) {
	if in.InvoiceID == "" {
		return nil, fmt.Errorf("%w: invoice_id es requerido", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if !entity.MetodoPagoValido(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: método de pago desconocido", domain.ErrInvalidInput)
	}

	payment, err := uc.ledger.RegisterPayment(ctx, repository.RegisterPaymentInput{
		DocumentID: in.InvoiceID,
		Amount:     in.Amount,
		Method:     in.PaymentMethod,
		Notes:      in.Notes,
		PaidAt:     uc.now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) ||
			errors.Is(err, domain.ErrSobrepago) ||
			errors.Is(err, domain.ErrForbidden) {
			return nil, err
		}
		uc.log.Error().Err(err).Str("invoice_id", in.InvoiceID).Msg("registro de pago falló")
		return nil, fmt.Errorf("%w: %s", domain.ErrPagoNoRegistrado, err)
	}

	uc.log.Info().
		Str("invoice_id", in.InvoiceID).
		Str("payment_id", payment.ID).
		Str("monto", payment.Amount.String()).
		Str("metodo", payment.Method).
		Msg("abono registrado")

	// Re-fetch pesimista con la ventana vigente. El pago ya quedó en el
	// ledger; si el refresco falla solo se registra el hecho y la próxima
	// consulta reconstruirá el snapshot.
	if err := uc.view.RefreshAfterPayment(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("pago registrado pero el refresco de cartera falló")
	}

	return &dto.PaymentResponse{
		ID:            payment.ID,
		InvoiceID:     payment.DocumentID,
		Amount:        payment.Amount.Round(2),
		PaymentMethod: payment.Method,
		Notes:         payment.Notes,
		PaidAt:        payment.PaidAt.Format(time.RFC3339),
	}, nil
}

// ListByDocument historial de abonos de un documento.
func (uc *PaymentUseCase) ListByDocument(ctx context.Context, documentID string) ([]dto.PaymentResponse, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: documento requerido", domain.ErrInvalidInput)
	}
	payments, err := uc.ledger.ListPaymentsByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("historial de pagos: %w", err)
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.PaymentResponse{
			ID:            p.ID,
			InvoiceID:     p.DocumentID,
			Amount:        p.Amount.Round(2),
			PaymentMethod: p.Method,
			Notes:         p.Notes,
			PaidAt:        p.PaidAt.Format(time.RFC3339),
		})
	}
	return out, nil
}
