package dto

import "github.com/shopspring/decimal"

// RegisterPaymentRequest cuerpo de POST /api/cartera/pagos.
type RegisterPaymentRequest struct {
	InvoiceID     string          `json:"invoice_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"` // Efectivo|Transferencia|Tarjeta|Cheque|Nequi|Otro
	Notes         string          `json:"notes,omitempty"`
}

// PaymentResponse abono registrado.
type PaymentResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes,omitempty"`
	PaidAt        string          `json:"paid_at"`
}
