package cartera

import (
	"github.com/shopspring/decimal"

	"github.com/DevSairus/cartera-api/internal/domain/entity"
)

// Aggregate calcula el resumen global y la agrupación por cliente a partir
// de un conjunto plano de documentos ya clasificados (ver ClassifyDocs).
//
// Garantía de conciliación: toda la aritmética es decimal exacta, de modo
// que Σ(grupo.Balance) == resumen.TotalReceivable y
// Σ(grupo.OverdueAmount) == resumen.TotalOverdue para cualquier partición.
//
// Un documento sin CustomerID cuenta en el resumen global (su dinero sigue
// siendo cartera) pero no aparece en ningún grupo ni incrementa
// TotalCustomers. El orden de los grupos es el de primera aparición del
// cliente en el conjunto; cualquier ordenamiento es asunto de presentación.
func Aggregate(docs []entity.ReceivableDocument) (entity.ReceivablesSummary, []entity.CustomerReceivableGroup) {
	summary := entity.ReceivablesSummary{
		TotalReceivable: decimal.Zero,
		TotalOverdue:    decimal.Zero,
		TotalCurrent:    decimal.Zero,
	}

	index := make(map[string]int)
	groups := make([]entity.CustomerReceivableGroup, 0)

	for _, d := range docs {
		summary.TotalInvoices++
		summary.TotalReceivable = summary.TotalReceivable.Add(d.Balance)
		if d.IsOverdue {
			summary.TotalOverdue = summary.TotalOverdue.Add(d.Balance)
		}

		if d.CustomerID == "" {
			continue
		}
		i, ok := index[d.CustomerID]
		if !ok {
			i = len(groups)
			index[d.CustomerID] = i
			groups = append(groups, entity.CustomerReceivableGroup{
				CustomerID:   d.CustomerID,
				CustomerName: d.CustomerName,
			})
		}
		groups[i].Documents = append(groups[i].Documents, d)
	}

	for i := range groups {
		foldGroup(&groups[i])
	}

	summary.TotalCustomers = len(groups)
	summary.TotalCurrent = summary.TotalReceivable.Sub(summary.TotalOverdue)
	return summary, groups
}

// foldGroup recalcula los agregados cacheados de un grupo desde sus
// documentos. Los grupos son no vacíos por construcción.
func foldGroup(g *entity.CustomerReceivableGroup) {
	g.TotalAmount = decimal.Zero
	g.PaidAmount = decimal.Zero
	g.Balance = decimal.Zero
	g.OverdueAmount = decimal.Zero
	g.Aging = entity.AgingBuckets{
		Dias0a30:   decimal.Zero,
		Dias31a60:  decimal.Zero,
		Dias61a90:  decimal.Zero,
		Dias90Plus: decimal.Zero,
	}

	sumaDias := 0
	for _, d := range g.Documents {
		g.TotalAmount = g.TotalAmount.Add(d.TotalAmount)
		g.PaidAmount = g.PaidAmount.Add(d.PaidAmount)
		g.Balance = g.Balance.Add(d.Balance)
		if d.IsOverdue {
			g.OverdueAmount = g.OverdueAmount.Add(d.Balance)
		}
		sumaDias += d.DaysOverdue

		switch {
		case d.DaysOverdue <= 30:
			g.Aging.Dias0a30 = g.Aging.Dias0a30.Add(d.Balance)
		case d.DaysOverdue <= 60:
			g.Aging.Dias31a60 = g.Aging.Dias31a60.Add(d.Balance)
		case d.DaysOverdue <= 90:
			g.Aging.Dias61a90 = g.Aging.Dias61a90.Add(d.Balance)
		default:
			g.Aging.Dias90Plus = g.Aging.Dias90Plus.Add(d.Balance)
		}
	}

	g.PendingInvoices = len(g.Documents)
	if len(g.Documents) > 0 {
		g.AvgDaysPending = decimal.NewFromInt(int64(sumaDias)).
			Div(decimal.NewFromInt(int64(len(g.Documents)))).
			Round(2)
	} else {
		g.AvgDaysPending = decimal.Zero
	}
}
