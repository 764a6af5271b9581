package cartera

import (
	"time"

	"github.com/DevSairus/cartera-api/internal/domain"
)

// WindowMode modo de selección del rango de fechas del reporte.
type WindowMode string

const (
	ModoPeriodo        WindowMode = "period" // N meses hacia atrás desde hoy
	ModoPersonalizado  WindowMode = "custom" // rango explícito desde/hasta
	PeriodoMesesPorDef            = 6
)

// PeriodoMesesValido valida que los meses pertenezcan al conjunto enumerado
// que ofrece el selector del reporte.
func PeriodoMesesValido(meses int) bool {
	switch meses {
	case 1, 3, 6, 12:
		return true
	}
	return false
}

// DateRange rango canónico de fechas que se envía al ledger.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsZero indica si el rango no ha sido resuelto aún.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Equal compara dos rangos por instante exacto.
func (r DateRange) Equal(o DateRange) bool {
	return r.From.Equal(o.From) && r.To.Equal(o.To)
}

// WindowInput selección del usuario, aún sin resolver.
type WindowInput struct {
	Mode         WindowMode
	PeriodMonths int
	From         time.Time
	To           time.Time
}

// ResolveWindow traduce la selección del usuario al rango canónico.
//
// Modo period: "hoy menos N meses hasta el final de hoy", anclado a
// límites de día para que dos resoluciones del mismo día produzcan el
// mismo rango (y no disparen fetches redundantes).
//
// Modo custom: el par exacto suministrado; con un solo extremo presente
// resuelve a "sin cambio" (se conserva prev y no debe dispararse fetch).
//
// changed indica si el rango resuelto difiere de prev; el caller solo
// re-consulta al ledger cuando changed es true o no hay snapshot previo.
func ResolveWindow(in WindowInput, prev DateRange, now time.Time) (resolved DateRange, changed bool, err error) {
	switch in.Mode {
	case ModoPeriodo, "":
		meses := in.PeriodMonths
		if meses == 0 {
			meses = PeriodoMesesPorDef
		}
		if !PeriodoMesesValido(meses) {
			return prev, false, domain.ErrInvalidInput
		}
		hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		resolved = DateRange{
			From: hoy.AddDate(0, -meses, 0),
			To:   hoy.Add(24*time.Hour - time.Second), // inclusive hasta el final del día
		}
		return resolved, !resolved.Equal(prev), nil

	case ModoPersonalizado:
		// Rango a medias: se mantiene el rango anterior sin disparar fetch.
		if in.From.IsZero() || in.To.IsZero() {
			return prev, false, nil
		}
		if in.From.After(in.To) {
			return prev, false, domain.ErrInvalidInput
		}
		resolved = DateRange{
			From: in.From,
			To:   in.To.Add(24*time.Hour - time.Second),
		}
		return resolved, !resolved.Equal(prev), nil

	default:
		return prev, false, domain.ErrInvalidInput
	}
}
