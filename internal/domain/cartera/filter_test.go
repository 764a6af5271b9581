package cartera_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevSairus/cartera-api/internal/domain/cartera"
	"github.com/DevSairus/cartera-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Filtros locales: se aplican en memoria sobre el conjunto que el ledger ya
// devolvió. Deben ser puros, idempotentes y componerse con AND; la búsqueda
// libre ignora mayúsculas y tildes.
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyFilters_BusquedaIgnoraTildes(t *testing.T) {
	docs := []entity.ReceivableDocument{
		withName(doc("f1", "c1", "José Pérez", 100, 0, 5)),
		withName(doc("f2", "c2", "María Gómez", 200, 0, 5)),
	}

	out := cartera.ApplyFilters(docs, cartera.Criteria{Search: "jose"})

	require.Len(t, out, 1)
	assert.Equal(t, "f1", out[0].ID, "\"jose\" debe encontrar a \"José Pérez\"")
}

func TestApplyFilters_BusquedaPorPlacaYNumero(t *testing.T) {
	d1 := doc("f1", "c1", "Uno", 100, 0, 5)
	d1.VehiclePlate = "ABC123"
	d2 := doc("f2", "c2", "Dos", 200, 0, 5)
	d2.SaleNumber = "V-00042"
	docs := []entity.ReceivableDocument{d1, d2}

	porPlaca := cartera.ApplyFilters(docs, cartera.Criteria{Search: "abc1"})
	require.Len(t, porPlaca, 1)
	assert.Equal(t, "f1", porPlaca[0].ID)

	porNumero := cartera.ApplyFilters(docs, cartera.Criteria{Search: "00042"})
	require.Len(t, porNumero, 1)
	assert.Equal(t, "f2", porNumero[0].ID)
}

// TestApplyFilters_ComposicionAND todos los criterios activos deben
// cumplirse a la vez.
func TestApplyFilters_ComposicionAND(t *testing.T) {
	d1 := doc("f1", "c1", "Uno", 100, 0, 40) // factura vencida
	d2 := doc("f2", "c1", "Uno", 200, 0, 40) // remisión vencida
	d2.DocumentType = entity.DocumentoRemision
	d3 := doc("f3", "c1", "Uno", 300, 0, 5) // factura corriente
	docs := []entity.ReceivableDocument{d1, d2, d3}

	out := cartera.ApplyFilters(docs, cartera.Criteria{
		DocumentType: entity.DocumentoFactura,
		OverdueOnly:  true,
	})

	require.Len(t, out, 1)
	assert.Equal(t, "f1", out[0].ID)
}

func TestApplyFilters_PorEstadoDePago(t *testing.T) {
	d1 := doc("f1", "c1", "Uno", 100, 0, 5)
	d2 := doc("f2", "c1", "Uno", 200, 50, 5)
	d2.PaymentStatus = entity.PagoParcial
	docs := []entity.ReceivableDocument{d1, d2}

	out := cartera.ApplyFilters(docs, cartera.Criteria{PaymentStatus: entity.PagoParcial})

	require.Len(t, out, 1)
	assert.Equal(t, "f2", out[0].ID)
}

// TestApplyFilters_Idempotente aplicar el mismo filtro dos veces produce
// el mismo resultado; es seguro re-ejecutarlo en cada pulsación.
func TestApplyFilters_Idempotente(t *testing.T) {
	docs := []entity.ReceivableDocument{
		doc("f1", "c1", "Uno", 100, 0, 40),
		doc("f2", "c2", "Dos", 200, 0, 5),
	}
	c := cartera.Criteria{OverdueOnly: true}

	una := cartera.ApplyFilters(docs, c)
	dos := cartera.ApplyFilters(una, c)

	assert.Equal(t, una, dos)
}

func TestApplyFilters_CriterioVacioDevuelveTodo(t *testing.T) {
	docs := []entity.ReceivableDocument{
		doc("f1", "c1", "Uno", 100, 0, 5),
		doc("f2", "c2", "Dos", 200, 0, 45),
	}

	out := cartera.ApplyFilters(docs, cartera.Criteria{})

	assert.Len(t, out, 2)
}

// TestFilterGroups_DescartaGruposVacios un cliente sin documentos que pasen
// el filtro desaparece de la vista agrupada, y los agregados de los grupos
// sobrevivientes se recalculan sobre los documentos que quedaron.
func TestFilterGroups_DescartaGruposVacios(t *testing.T) {
	docs := []entity.ReceivableDocument{
		doc("f1", "c1", "Uno", 100, 0, 40),
		doc("f2", "c1", "Uno", 200, 0, 5),
		doc("f3", "c2", "Dos", 300, 0, 10), // c2 no tiene nada vencido
	}
	_, groups := cartera.Aggregate(docs)

	out := cartera.FilterGroups(groups, cartera.Criteria{OverdueOnly: true})

	require.Len(t, out, 1, "c2 no debe aparecer en la vista filtrada")
	g := out[0]
	assert.Equal(t, "c1", g.CustomerID)
	assert.Equal(t, 1, g.PendingInvoices)
	assert.True(t, g.Balance.Equal(decimal.NewFromInt(100)),
		"el saldo del grupo debe recalcularse sobre los documentos filtrados")
	assert.True(t, g.AvgDaysPending.Equal(decimal.NewFromInt(40)))
}

func TestFilterGroups_CriterioVacioNoRecalcula(t *testing.T) {
	docs := []entity.ReceivableDocument{
		doc("f1", "c1", "Uno", 100, 0, 5),
	}
	_, groups := cartera.Aggregate(docs)

	out := cartera.FilterGroups(groups, cartera.Criteria{})

	assert.Equal(t, groups, out)
}

// ── helper ────────────────────────────────────────────────────────────────────

func withName(d entity.ReceivableDocument) entity.ReceivableDocument {
	d.CustomerTaxID = "900" + d.ID
	return d
}
