package cartera

import (
	"github.com/DevSairus/cartera-api/internal/application/dto"
	"github.com/DevSairus/cartera-api/internal/domain/cartera"
	"github.com/DevSairus/cartera-api/internal/domain/entity"
)

// buildReportDTO aplica los filtros locales al snapshot y arma la respuesta.
// El resumen corresponde al conjunto base (lo que devolvió el ledger); los
// filtros solo estrechan las proyecciones by_customer y all_invoices.
func buildReportDTO(snap *snapshot, criteria cartera.Criteria, window cartera.DateRange) *dto.CarteraReportDTO {
	filteredDocs := cartera.ApplyFilters(snap.docs, criteria)
	filteredGroups := cartera.FilterGroups(snap.groups, criteria)

	report := &dto.CarteraReportDTO{
		Summary:     toSummaryDTO(snap.summary),
		ByCustomer:  make([]dto.CustomerGroupDTO, 0, len(filteredGroups)),
		AllInvoices: make([]dto.ReceivableDocumentDTO, 0, len(filteredDocs)),
	}
	for _, g := range filteredGroups {
		report.ByCustomer = append(report.ByCustomer, toGroupDTO(g))
	}
	for _, d := range filteredDocs {
		report.AllInvoices = append(report.AllInvoices, toDocumentDTO(d))
	}
	if !window.IsZero() {
		report.Period = dto.PeriodDTO{
			StartDate: window.From.Format("2006-01-02"),
			EndDate:   window.To.Format("2006-01-02"),
		}
	}
	return report
}

func toSummaryDTO(s entity.ReceivablesSummary) dto.SummaryDTO {
	return dto.SummaryDTO{
		TotalReceivable: s.TotalReceivable.Round(2),
		TotalOverdue:    s.TotalOverdue.Round(2),
		TotalCurrent:    s.TotalCurrent.Round(2),
		TotalCustomers:  s.TotalCustomers,
		TotalInvoices:   s.TotalInvoices,
	}
}

func toGroupDTO(g entity.CustomerReceivableGroup) dto.CustomerGroupDTO {
	out := dto.CustomerGroupDTO{
		CustomerID:      g.CustomerID,
		CustomerName:    g.CustomerName,
		TotalAmount:     g.TotalAmount.Round(2),
		PaidAmount:      g.PaidAmount.Round(2),
		Balance:         g.Balance.Round(2),
		OverdueAmount:   g.OverdueAmount.Round(2),
		PendingInvoices: g.PendingInvoices,
		AvgDaysPending:  g.AvgDaysPending,
		Aging: dto.AgingDTO{
			Dias0a30:   g.Aging.Dias0a30.Round(2),
			Dias31a60:  g.Aging.Dias31a60.Round(2),
			Dias61a90:  g.Aging.Dias61a90.Round(2),
			Dias90Plus: g.Aging.Dias90Plus.Round(2),
		},
		Documents: make([]dto.ReceivableDocumentDTO, 0, len(g.Documents)),
	}
	for _, d := range g.Documents {
		out.Documents = append(out.Documents, toDocumentDTO(d))
	}
	return out
}

func toDocumentDTO(d entity.ReceivableDocument) dto.ReceivableDocumentDTO {
	return dto.ReceivableDocumentDTO{
		ID:            d.ID,
		SaleNumber:    d.SaleNumber,
		DocumentType:  string(d.DocumentType),
		PaymentStatus: string(d.PaymentStatus),
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		CustomerTaxID: d.CustomerTaxID,
		VehiclePlate:  d.VehiclePlate,
		SaleDate:      d.SaleDate.Format("2006-01-02"),
		TotalAmount:   d.TotalAmount.Round(2),
		PaidAmount:    d.PaidAmount.Round(2),
		Balance:       d.Balance.Round(2),
		DaysOverdue:   d.DaysOverdue,
		IsOverdue:     d.IsOverdue,
	}
}
