// Package cartera contiene la lógica pura de agregación y conciliación de
// cuentas por cobrar: clasificación por antigüedad, agrupación por cliente,
// filtros locales y resolución de ventanas de fecha. Ningún símbolo de este
// paquete hace I/O ni lee el reloj del sistema.
package cartera

import (
	"time"

	"github.com/DevSairus/cartera-api/internal/domain/entity"
)

// DiasVencimiento umbral fijo de la regla de negocio: un documento está
// vencido cuando lleva MÁS de 30 días desde la venta. El día 30 exacto
// sigue siendo "corriente"; el 31 ya es vencido. Este límite aparece en
// varios cortes del reporte (0-30 / 31+), no debe parametrizarse.
const DiasVencimiento = 30

// Classification antigüedad derivada de un documento.
type Classification struct {
	DaysOverdue int
	IsOverdue   bool
}

// Classify deriva los días transcurridos y la marca de vencido a partir de
// la fecha de venta y una fecha de referencia inyectada. Función pura:
// mismas entradas, mismo resultado. Cuenta días calendario, no tramos de
// 24 horas: un cambio de hora (DST) entre venta y referencia no corre el
// límite de vencimiento.
func Classify(saleDate, reference time.Time) Classification {
	days := int(civilDate(reference).Sub(civilDate(saleDate)).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return Classification{
		DaysOverdue: days,
		IsOverdue:   days > DiasVencimiento,
	}
}

// civilDate proyecta el instante a su fecha calendario en UTC; la resta de
// dos fechas así proyectadas es siempre un múltiplo exacto de 24 horas.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClassifyDocs devuelve una copia del conjunto con los campos derivados
// (DaysOverdue, IsOverdue) calculados contra la fecha de referencia. El
// slice original no se modifica: el snapshot de cartera es inmutable.
func ClassifyDocs(docs []entity.ReceivableDocument, reference time.Time) []entity.ReceivableDocument {
	out := make([]entity.ReceivableDocument, len(docs))
	for i, d := range docs {
		c := Classify(d.SaleDate, reference)
		d.DaysOverdue = c.DaysOverdue
		d.IsOverdue = c.IsOverdue
		out[i] = d
	}
	return out
}
