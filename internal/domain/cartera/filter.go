package cartera

import (
	"strings"

	"github.com/DevSairus/cartera-api/internal/domain/entity"
	"github.com/DevSairus/cartera-api/pkg/textutil"
)

// Criteria filtros locales de cartera. Se aplican en memoria sobre el
// conjunto que el ledger ya devolvió; cambiarlos nunca dispara un re-fetch.
// Todos los criterios activos deben cumplirse (AND).
type Criteria struct {
	Search        string
	DocumentType  entity.DocumentType
	PaymentStatus entity.PaymentStatus
	OverdueOnly   bool
}

// Empty indica si no hay ningún criterio activo.
func (c Criteria) Empty() bool {
	return c.Search == "" && c.DocumentType == "" && c.PaymentStatus == "" && !c.OverdueOnly
}

// Matches evalúa un documento contra los criterios. La búsqueda libre
// compara subcadenas sobre la concatenación normalizada de nombre del
// cliente, NIT/cédula, placa y número de venta (insensible a mayúsculas
// y tildes).
func (c Criteria) Matches(d entity.ReceivableDocument) bool {
	if c.Search != "" {
		key := textutil.Normalize(d.CustomerName + " " + d.CustomerTaxID + " " + d.VehiclePlate + " " + d.SaleNumber)
		if !strings.Contains(key, textutil.Normalize(c.Search)) {
			return false
		}
	}
	if c.DocumentType != "" && d.DocumentType != c.DocumentType {
		return false
	}
	if c.PaymentStatus != "" && d.PaymentStatus != c.PaymentStatus {
		return false
	}
	if c.OverdueOnly && !d.IsOverdue {
		return false
	}
	return true
}

// ApplyFilters proyección plana: documentos que pasan todos los criterios.
// Transformación pura e idempotente; segura de re-ejecutar en cada pulsación.
func ApplyFilters(docs []entity.ReceivableDocument, c Criteria) []entity.ReceivableDocument {
	if c.Empty() {
		return docs
	}
	out := make([]entity.ReceivableDocument, 0, len(docs))
	for _, d := range docs {
		if c.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// FilterGroups proyección agrupada: filtra los documentos de cada grupo,
// descarta los grupos que quedan vacíos y recalcula los agregados del
// grupo sobre los documentos que sobreviven. Un cliente sin documentos
// coincidentes no aparece en la vista filtrada.
func FilterGroups(groups []entity.CustomerReceivableGroup, c Criteria) []entity.CustomerReceivableGroup {
	if c.Empty() {
		return groups
	}
	out := make([]entity.CustomerReceivableGroup, 0, len(groups))
	for _, g := range groups {
		kept := ApplyFilters(g.Documents, c)
		if len(kept) == 0 {
			continue
		}
		fg := entity.CustomerReceivableGroup{
			CustomerID:   g.CustomerID,
			CustomerName: g.CustomerName,
			Documents:    kept,
		}
		foldGroup(&fg)
		out = append(out, fg)
	}
	return out
}
