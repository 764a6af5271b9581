// Package cartera contiene los casos de uso del reporte de cuentas por
// cobrar y del flujo de conciliación de pagos.
package cartera

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DevSairus/cartera-api/internal/application/dto"
	"github.com/DevSairus/cartera-api/internal/domain"
	"github.com/DevSairus/cartera-api/internal/domain/cartera"
	"github.com/DevSairus/cartera-api/internal/domain/entity"
	"github.com/DevSairus/cartera-api/internal/domain/repository"
	"github.com/DevSairus/cartera-api/pkg/logger"
)

// snapshot el triple documento/grupos/resumen de una consulta al ledger.
// Se reemplaza completo en cada fetch exitoso; nunca se parchea campo a
// campo desde fuera.
type snapshot struct {
	docs    []entity.ReceivableDocument
	groups  []entity.CustomerReceivableGroup
	summary entity.ReceivablesSummary
}

// UseCase mantiene el estado de la vista de cartera: la ventana de fechas
// resuelta, el snapshot vigente y la secuencia de fetch que descarta
// respuestas obsoletas.
//
// Los filtros locales (búsqueda, tipo, estado, solo vencidos) se derivan
// del snapshot en memoria sin tocar el ledger; solo un cambio de ventana
// (o una conciliación exitosa) dispara una nueva consulta.
type UseCase struct {
	ledger       repository.LedgerRepository
	log          *logger.Logger
	now          func() time.Time
	defaultMeses int

	mu     sync.Mutex
	seq    uint64
	window cartera.DateRange
	snap   *snapshot
}

// NewUseCase construye el caso de uso. defaultMeses es el período por
// defecto del modo period (0 usa el del dominio).
func NewUseCase(ledger repository.LedgerRepository, log *logger.Logger, defaultMeses int) *UseCase {
	if defaultMeses == 0 {
		defaultMeses = cartera.PeriodoMesesPorDef
	}
	return &UseCase{
		ledger:       ledger,
		log:          log,
		now:          time.Now,
		defaultMeses: defaultMeses,
	}
}

// GetReport resuelve la ventana de fechas, re-consulta el ledger solo si la
// ventana cambió (o no hay snapshot) y aplica los filtros locales sobre el
// conjunto en memoria.
func (uc *UseCase) GetReport(ctx context.Context, req dto.CarteraReportRequest) (*dto.CarteraReportDTO, error) {
	now := uc.now()
	in, err := parseWindowInput(req, now)
	if err != nil {
		return nil, err
	}
	if in.Mode != cartera.ModoPersonalizado && in.PeriodMonths == 0 {
		in.PeriodMonths = uc.defaultMeses
	}

	uc.mu.Lock()
	prev := uc.window
	haveSnap := uc.snap != nil
	uc.mu.Unlock()

	resolved, changed, err := cartera.ResolveWindow(in, prev, now)
	if err != nil {
		return nil, err
	}
	// Modo custom a medias sin snapshot previo: no hay nada que servir y la
	// entrada es inválida por definición (rango con un solo extremo).
	if !changed && !haveSnap && resolved.IsZero() {
		return nil, fmt.Errorf("%w: rango de fechas incompleto", domain.ErrInvalidInput)
	}

	if changed || !haveSnap {
		if err := uc.refresh(ctx, resolved); err != nil {
			return nil, err
		}
	}

	uc.mu.Lock()
	snap := uc.snap
	window := uc.window
	uc.mu.Unlock()
	if snap == nil {
		snap = &snapshot{}
	}

	criteria := cartera.Criteria{
		Search:        req.Search,
		DocumentType:  entity.DocumentType(req.DocumentType),
		PaymentStatus: entity.PaymentStatus(req.PaymentStatus),
		OverdueOnly:   req.OverdueOnly,
	}
	return buildReportDTO(snap, criteria, window), nil
}

// RefreshAfterPayment vuelve a consultar el ledger con la ventana vigente.
// Lo invoca el flujo de conciliación tras registrar un pago: el estado
// local se considera obsoleto y se reemplaza, no se parchea.
func (uc *UseCase) RefreshAfterPayment(ctx context.Context) error {
	uc.mu.Lock()
	window := uc.window
	haveSnap := uc.snap != nil
	uc.mu.Unlock()
	if !haveSnap && window.IsZero() {
		return nil // la vista nunca se ha cargado; no hay nada que refrescar
	}
	return uc.refresh(ctx, window)
}

// refresh ejecuta un fetch secuenciado. Si durante el I/O se emitió un
// fetch más nuevo, o el contexto de la vista fue cancelado, la respuesta
// se descarta sin tocar el snapshot vigente. En caso de error el snapshot
// se invalida: el error llega al caller y la consulta siguiente vuelve a
// intentar el fetch en vez de servir un vacío que parezca cartera sana.
func (uc *UseCase) refresh(ctx context.Context, window cartera.DateRange) error {
	uc.mu.Lock()
	uc.seq++
	mySeq := uc.seq
	uc.mu.Unlock()

	docs, fetchErr := uc.ledger.ListOutstanding(ctx, repository.OutstandingFilters{
		FromDate: window.From,
		ToDate:   window.To,
	})

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if mySeq != uc.seq {
		// Respuesta obsoleta: ya hay un fetch más reciente en curso o aplicado.
		return nil
	}
	if ctx.Err() != nil {
		return fmt.Errorf("consulta de cartera cancelada: %w", ctx.Err())
	}

	if fetchErr != nil {
		// No se persiste un snapshot vacío: quedaría sirviendo cartera en
		// ceros con la misma ventana aun después de que el ledger se recupere.
		uc.snap = nil
		if errors.Is(fetchErr, domain.ErrForbidden) {
			uc.log.Warn().Err(fetchErr).Msg("ledger negó la consulta de cartera")
			return domain.ErrForbidden
		}
		uc.log.Error().Err(fetchErr).Msg("consulta de cartera al ledger falló")
		return fmt.Errorf("cartera: consultar ledger: %w", fetchErr)
	}

	classified := cartera.ClassifyDocs(docs, uc.now())
	summary, groups := cartera.Aggregate(classified)
	uc.snap = &snapshot{docs: classified, groups: groups, summary: summary}
	uc.window = window
	return nil
}

// parseWindowInput convierte los parámetros crudos del request en la
// selección de ventana; las fechas usan el formato YYYY-MM-DD y se
// interpretan en la zona horaria del reloj inyectado.
func parseWindowInput(req dto.CarteraReportRequest, now time.Time) (cartera.WindowInput, error) {
	in := cartera.WindowInput{
		Mode:         cartera.WindowMode(req.Mode),
		PeriodMonths: req.PeriodMonths,
	}
	loc := now.Location()
	if req.FromDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.FromDate, loc)
		if err != nil {
			return in, fmt.Errorf("%w: from_date inválido", domain.ErrInvalidInput)
		}
		in.From = t
	}
	if req.ToDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.ToDate, loc)
		if err != nil {
			return in, fmt.Errorf("%w: to_date inválido", domain.ErrInvalidInput)
		}
		in.To = t
	}
	return in, nil
}
