package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType tipo de documento de venta con saldo pendiente.
type DocumentType string

const (
	DocumentoFactura    DocumentType = "invoice"
	DocumentoRemision   DocumentType = "remission"
	DocumentoCotizacion DocumentType = "quote"
)

// PaymentStatus estado de pago de un documento en cartera.
// Un documento totalmente pagado sale de la vista de cartera; aquí solo
// existen "pending" y "partial".
type PaymentStatus string

const (
	PagoPendiente PaymentStatus = "pending"
	PagoParcial   PaymentStatus = "partial"
	PagoCompleto  PaymentStatus = "paid" // solo como estado destino en el ledger
)

// ReceivableDocument un documento de venta con saldo pendiente (cartera).
// DaysOverdue e IsOverdue son derivados: los calcula el clasificador de
// antigüedad contra una fecha de referencia, nunca vienen del ledger.
type ReceivableDocument struct {
	ID            string
	SaleNumber    string
	DocumentType  DocumentType
	PaymentStatus PaymentStatus
	CustomerID    string // vacío si la venta no tiene cliente asociado
	CustomerName  string
	CustomerTaxID string
	VehiclePlate  string // placa del vehículo; texto opaco, solo para búsqueda
	SaleDate      time.Time
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	Balance       decimal.Decimal
	DaysOverdue   int
	IsOverdue     bool
}

// AgingBuckets saldos agrupados por antigüedad (días desde la venta).
type AgingBuckets struct {
	Dias0a30   decimal.Decimal
	Dias31a60  decimal.Decimal
	Dias61a90  decimal.Decimal
	Dias90Plus decimal.Decimal
}

// CustomerReceivableGroup agrupación derivada por cliente con sus documentos
// y agregados cacheados. Se recalcula completa cada vez que cambia el
// conjunto de documentos; nunca se muta campo a campo.
type CustomerReceivableGroup struct {
	CustomerID      string
	CustomerName    string
	Documents       []ReceivableDocument
	TotalAmount     decimal.Decimal
	PaidAmount      decimal.Decimal
	Balance         decimal.Decimal
	OverdueAmount   decimal.Decimal
	PendingInvoices int
	AvgDaysPending  decimal.Decimal
	Aging           AgingBuckets
}

// ReceivablesSummary resumen global de cartera: un fold puro sobre el
// conjunto actual de documentos.
type ReceivablesSummary struct {
	TotalReceivable decimal.Decimal
	TotalOverdue    decimal.Decimal
	TotalCurrent    decimal.Decimal // TotalReceivable - TotalOverdue
	TotalCustomers  int
	TotalInvoices   int
}
