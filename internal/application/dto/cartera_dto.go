package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// CarteraReportRequest parámetros para GET /api/cartera.
//
// Dos niveles de filtro: mode/period_months/from_date/to_date definen la
// ventana que se consulta al ledger (cambiarla reemplaza el conjunto base);
// search/document_type/payment_status/overdue_only se aplican en memoria
// sobre ese conjunto sin volver a consultar.
type CarteraReportRequest struct {
	Mode         string `query:"mode"`          // period (default) | custom
	PeriodMonths int    `query:"period_months"` // 1|3|6|12; default 6
	FromDate     string `query:"from_date"`     // YYYY-MM-DD (modo custom)
	ToDate       string `query:"to_date"`       // YYYY-MM-DD (modo custom)

	Search        string `query:"search"`
	DocumentType  string `query:"document_type"`  // invoice|remission|quote
	PaymentStatus string `query:"payment_status"` // pending|partial
	OverdueOnly   bool   `query:"overdue_only"`
}

// ── Respuesta ─────────────────────────────────────────────────────────────────

// ReceivableDocumentDTO un documento pendiente tal como lo consume la capa
// de presentación.
type ReceivableDocumentDTO struct {
	ID            string          `json:"id"`
	SaleNumber    string          `json:"sale_number"`
	DocumentType  string          `json:"document_type"`
	PaymentStatus string          `json:"payment_status"`
	CustomerID    string          `json:"customer_id,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerTaxID string          `json:"customer_tax_id,omitempty"`
	VehiclePlate  string          `json:"vehicle_plate,omitempty"`
	SaleDate      string          `json:"sale_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Balance       decimal.Decimal `json:"balance"`
	DaysOverdue   int             `json:"days_overdue"`
	IsOverdue     bool            `json:"is_overdue"`
}

// AgingDTO saldos por corte de antigüedad.
type AgingDTO struct {
	Dias0a30   decimal.Decimal `json:"dias_0_30"`
	Dias31a60  decimal.Decimal `json:"dias_31_60"`
	Dias61a90  decimal.Decimal `json:"dias_61_90"`
	Dias90Plus decimal.Decimal `json:"dias_90_plus"`
}

// CustomerGroupDTO cartera agrupada por cliente con agregados.
type CustomerGroupDTO struct {
	CustomerID      string                  `json:"customer_id"`
	CustomerName    string                  `json:"customer_name"`
	TotalAmount     decimal.Decimal         `json:"total_amount"`
	PaidAmount      decimal.Decimal         `json:"paid_amount"`
	Balance         decimal.Decimal         `json:"balance"`
	OverdueAmount   decimal.Decimal         `json:"overdue_amount"`
	PendingInvoices int                     `json:"pending_invoices"`
	AvgDaysPending  decimal.Decimal         `json:"avg_days_pending"`
	Aging           AgingDTO                `json:"aging"`
	Documents       []ReceivableDocumentDTO `json:"documents"`
}

// SummaryDTO resumen global de cartera.
type SummaryDTO struct {
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TotalOverdue    decimal.Decimal `json:"total_overdue"`
	TotalCurrent    decimal.Decimal `json:"total_current"`
	TotalCustomers  int             `json:"total_customers"`
	TotalInvoices   int             `json:"total_invoices"`
}

// CarteraReportDTO respuesta completa de GET /api/cartera. ByCustomer y
// AllInvoices siempre serializan como arreglos (posiblemente vacíos),
// nunca como null: el consumidor no debe defenderse de campos ausentes.
type CarteraReportDTO struct {
	Summary     SummaryDTO              `json:"summary"`
	ByCustomer  []CustomerGroupDTO      `json:"by_customer"`
	AllInvoices []ReceivableDocumentDTO `json:"all_invoices"`
	Period      PeriodDTO               `json:"period"`
}

// CustomerResponse cliente del directorio (asistencia de búsqueda).
type CustomerResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	TaxID        string `json:"tax_id,omitempty"`
	Email        string `json:"email,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
	CustomerType string `json:"customer_type"`
	IsActive     bool   `json:"is_active"`
}
