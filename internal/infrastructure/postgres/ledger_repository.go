package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/DevSairus/cartera-api/internal/domain"
	"github.com/DevSairus/cartera-api/internal/domain/entity"
	"github.com/DevSairus/cartera-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo adaptador PostgreSQL del libro de ventas y pagos.
//
// Las lecturas usan el pool directamente; RegisterPayment corre dentro de
// una transacción (TxRunner) con el documento bloqueado, de modo que dos
// operadores abonando al mismo documento quedan serializados por la DB.
type LedgerRepo struct {
	q      Querier
	runner *TxRunner // nil cuando el repo ya está atado a una tx
}

// NewLedgerRepository construye el adaptador sobre el pool.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepo {
	return &LedgerRepo{q: pool, runner: NewTxRunner(pool)}
}

// newLedgerTx ata el repo a una transacción en curso.
func newLedgerTx(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// ListOutstanding documentos con saldo pendiente que cumplan los filtros.
// El defaulting de campos laxos (cliente nulo, placa nula, montos nulos)
// sucede aquí, en la frontera: la agregación recibe siempre valores
// completos y nunca tiene que defenderse de campos ausentes.
func (r *LedgerRepo) ListOutstanding(ctx context.Context, filters repository.OutstandingFilters) ([]entity.ReceivableDocument, error) {
	query := `
		SELECT s.id, s.sale_number, s.document_type, s.payment_status,
		       COALESCE(s.customer_id::TEXT, '')  AS customer_id,
		       COALESCE(c.full_name, '')          AS customer_name,
		       COALESCE(c.tax_id, '')             AS customer_tax_id,
		       COALESCE(s.vehicle_plate, '')      AS vehicle_plate,
		       s.sale_date,
		       COALESCE(s.total_amount, 0)        AS total_amount,
		       COALESCE(s.paid_amount, 0)         AS paid_amount,
		       COALESCE(s.total_amount, 0) - COALESCE(s.paid_amount, 0) AS balance
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE COALESCE(s.total_amount, 0) - COALESCE(s.paid_amount, 0) > 0`

	args := make([]any, 0, 4)
	if filters.CustomerID != "" {
		args = append(args, filters.CustomerID)
		query += fmt.Sprintf(" AND s.customer_id = $%d", len(args))
	}
	if !filters.FromDate.IsZero() {
		args = append(args, filters.FromDate)
		query += fmt.Sprintf(" AND s.sale_date >= $%d", len(args))
	}
	if !filters.ToDate.IsZero() {
		args = append(args, filters.ToDate)
		query += fmt.Sprintf(" AND s.sale_date <= $%d", len(args))
	}
	if filters.Status != "" {
		args = append(args, string(filters.Status))
		query += fmt.Sprintf(" AND s.payment_status = $%d", len(args))
	}
	query += " ORDER BY s.sale_date, s.sale_number"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger.ListOutstanding: %w", translateError(err))
	}
	defer rows.Close()

	var docs []entity.ReceivableDocument
	for rows.Next() {
		var d entity.ReceivableDocument
		if err := rows.Scan(
			&d.ID, &d.SaleNumber, &d.DocumentType, &d.PaymentStatus,
			&d.CustomerID, &d.CustomerName, &d.CustomerTaxID, &d.VehiclePlate,
			&d.SaleDate, &d.TotalAmount, &d.PaidAmount, &d.Balance,
		); err != nil {
			return nil, fmt.Errorf("ledger.ListOutstanding scan: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger.ListOutstanding: %w", translateError(err))
	}
	return docs, nil
}

// RegisterPayment registra el abono y actualiza el saldo del documento en
// una sola transacción. El documento se bloquea (FOR UPDATE) antes de
// validar el sobrepago, así el chequeo y el update son atómicos.
func (r *LedgerRepo) RegisterPayment(ctx context.Context, input repository.RegisterPaymentInput) (*entity.Payment, error) {
	if r.runner == nil {
		return r.registerPaymentLocked(ctx, input)
	}
	var payment *entity.Payment
	err := r.runner.RunPago(ctx, func(ledger *LedgerRepo) error {
		p, err := ledger.registerPaymentLocked(ctx, input)
		payment = p
		return err
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *LedgerRepo) registerPaymentLocked(ctx context.Context, input repository.RegisterPaymentInput) (*entity.Payment, error) {
	var total, paid decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(total_amount, 0), COALESCE(paid_amount, 0)
		FROM sales WHERE id = $1
		FOR UPDATE`, input.DocumentID).Scan(&total, &paid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ledger.RegisterPayment lock: %w", translateError(err))
	}

	newPaid := paid.Add(input.Amount)
	if newPaid.GreaterThan(total) {
		return nil, domain.ErrSobrepago
	}
	status := entity.PagoParcial
	if newPaid.Equal(total) {
		status = entity.PagoCompleto
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:         uuid.New().String(),
		DocumentID: input.DocumentID,
		Amount:     input.Amount,
		Method:     input.Method,
		Notes:      input.Notes,
		PaidAt:     input.PaidAt,
		CreatedAt:  now,
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO payments (id, sale_id, amount, method, notes, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		payment.ID, payment.DocumentID, payment.Amount, payment.Method,
		payment.Notes, payment.PaidAt, payment.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("ledger.RegisterPayment insert: %w", translateError(err))
	}

	_, err = r.q.Exec(ctx, `
		UPDATE sales
		SET paid_amount = $2, payment_status = $3, updated_at = $4
		WHERE id = $1`,
		input.DocumentID, newPaid, string(status), now,
	)
	if err != nil {
		return nil, fmt.Errorf("ledger.RegisterPayment update: %w", translateError(err))
	}
	return payment, nil
}

// ListPaymentsByDocument historial de abonos de un documento, más antiguo primero.
func (r *LedgerRepo) ListPaymentsByDocument(ctx context.Context, documentID string) ([]entity.Payment, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, amount, COALESCE(method, ''), COALESCE(notes, ''), paid_at, created_at
		FROM payments WHERE sale_id = $1
		ORDER BY paid_at, created_at`, documentID)
	if err != nil {
		return nil, fmt.Errorf("ledger.ListPaymentsByDocument: %w", translateError(err))
	}
	defer rows.Close()

	var list []entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.DocumentID, &p.Amount, &p.Method, &p.Notes, &p.PaidAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("ledger.ListPaymentsByDocument scan: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger.ListPaymentsByDocument: %w", translateError(err))
	}
	return list, nil
}
