package cartera

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevSairus/cartera-api/internal/application/dto"
	"github.com/DevSairus/cartera-api/internal/domain"
	domcartera "github.com/DevSairus/cartera-api/internal/domain/cartera"
	"github.com/DevSairus/cartera-api/internal/domain/entity"
	"github.com/DevSairus/cartera-api/internal/domain/repository"
	"github.com/DevSairus/cartera-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del caso de uso de cartera. El contrato central es el de los dos
// niveles de filtro: cambiar la ventana de fechas dispara exactamente un
// fetch al ledger; cambiar los filtros locales no dispara ninguno.
// ──────────────────────────────────────────────────────────────────────────────

var ahora = time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

// fakeLedger doble de prueba del puerto al ledger con conteo de llamadas.
type fakeLedger struct {
	docs          []entity.ReceivableDocument
	listErr       error
	listCalls     int
	onList        func() // hook opcional, se ejecuta durante ListOutstanding
	lastFilters   repository.OutstandingFilters
	payment       *entity.Payment
	registerErr   error
	registerCalls int
	history       []entity.Payment
}

func (f *fakeLedger) ListOutstanding(_ context.Context, filters repository.OutstandingFilters) ([]entity.ReceivableDocument, error) {
	f.listCalls++
	f.lastFilters = filters
	if f.onList != nil {
		f.onList()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.docs, nil
}

func (f *fakeLedger) RegisterPayment(_ context.Context, in repository.RegisterPaymentInput) (*entity.Payment, error) {
	f.registerCalls++
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if f.payment != nil {
		return f.payment, nil
	}
	return &entity.Payment{
		ID:         "pago-1",
		DocumentID: in.DocumentID,
		Amount:     in.Amount,
		Method:     in.Method,
		Notes:      in.Notes,
		PaidAt:     in.PaidAt,
	}, nil
}

func (f *fakeLedger) ListPaymentsByDocument(_ context.Context, _ string) ([]entity.Payment, error) {
	return f.history, nil
}

func newTestUseCase(ledger *fakeLedger) *UseCase {
	uc := NewUseCase(ledger, logger.Nop(), 0)
	uc.now = func() time.Time { return ahora }
	return uc
}

func TestGetReport_PrimerConsultaDisparaUnFetch(t *testing.T) {
	ledger := &fakeLedger{docs: []entity.ReceivableDocument{
		docPendiente("f1", "c1", "Uno", 100, 0, -40),
		docPendiente("f2", "c1", "Uno", 200, 50, -10),
	}}
	uc := newTestUseCase(ledger)

	report, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{})

	require.NoError(t, err)
	assert.Equal(t, 1, ledger.listCalls)
	assert.True(t, report.Summary.TotalReceivable.Equal(decimal.NewFromInt(250)))
	assert.True(t, report.Summary.TotalOverdue.Equal(decimal.NewFromInt(100)),
		"la venta a 40 días debe quedar vencida con el reloj inyectado")
	assert.Len(t, report.AllInvoices, 2)
	assert.Len(t, report.ByCustomer, 1)
}

func TestGetReport_MismaVentanaNoVuelveAConsultar(t *testing.T) {
	ledger := &fakeLedger{docs: []entity.ReceivableDocument{docPendiente("f1", "c1", "Uno", 100, 0, -5)}}
	uc := newTestUseCase(ledger)

	_, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{})
	require.NoError(t, err)
	_, err = uc.GetReport(context.Background(), dto.CarteraReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, ledger.listCalls, "misma ventana: un solo fetch")
}

// TestGetReport_FiltroLocalNoConsultaElLedger cambiar búsqueda, tipo o
// "solo vencidos" estrecha las proyecciones en memoria; el resumen sigue
// reflejando el conjunto base completo.
func TestGetReport_FiltroLocalNoConsultaElLedger(t *testing.T) {
	ledger := &fakeLedger{docs: []entity.ReceivableDocument{
		docPendiente("f1", "c1", "José Pérez", 100, 0, -40),
		docPendiente("f2", "c2", "María Gómez", 200, 0, -5),
	}}
	uc := newTestUseCase(ledger)

	_, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{})
	require.NoError(t, err)

	report, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{Search: "jose", OverdueOnly: true})
	require.NoError(t, err)

	assert.Equal(t, 1, ledger.listCalls, "los filtros locales no tocan el ledger")
	require.Len(t, report.AllInvoices, 1)
	assert.Equal(t, "f1", report.AllInvoices[0].ID)
	require.Len(t, report.ByCustomer, 1)
	assert.Equal(t, "c1", report.ByCustomer[0].CustomerID)
	assert.True(t, report.Summary.TotalReceivable.Equal(decimal.NewFromInt(300)),
		"el resumen refleja el conjunto base, no el filtrado")
	assert.Equal(t, 2, report.Summary.TotalInvoices)
}

func TestGetReport_CambioDePeriodoDisparaNuevoFetch(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newTestUseCase(ledger)

	_, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{PeriodMonths: 6})
	require.NoError(t, err)
	_, err = uc.GetReport(context.Background(), dto.CarteraReportRequest{PeriodMonths: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, ledger.listCalls)
	assert.Equal(t, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), ledger.lastFilters.FromDate)
}

// TestGetReport_CustomAMediasSinSnapshot sin conjunto previo y con un solo
// extremo del rango no hay nada que servir: entrada inválida, cero fetches.
func TestGetReport_CustomAMediasSinSnapshot(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newTestUseCase(ledger)

	_, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{
		Mode:     "custom",
		FromDate: "2026-03-01",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, ledger.listCalls, "un rango a medias nunca debe disparar fetch")
}

// TestGetReport_CustomAMediasConSnapshot con conjunto previo cargado, el
// rango a medias sirve el snapshot vigente sin volver a consultar.
func TestGetReport_CustomAMediasConSnapshot(t *testing.T) {
	ledger := &fakeLedger{docs: []entity.ReceivableDocument{docPendiente("f1", "c1", "Uno", 100, 0, -5)}}
	uc := newTestUseCase(ledger)

	_, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{})
	require.NoError(t, err)

	report, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{
		Mode:     "custom",
		FromDate: "2026-03-01",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, ledger.listCalls)
	assert.Len(t, report.AllInvoices, 1)
}

// TestGetReport_FechasEnLaZonaDelReloj las fechas del modo custom se
// interpretan en la zona horaria del reloj inyectado, no en la del
// proceso: la ventana que recibe el ledger arranca a la medianoche local.
func TestGetReport_FechasEnLaZonaDelReloj(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	ledger := &fakeLedger{}
	uc := newTestUseCase(ledger)
	uc.now = func() time.Time { return ahora.In(bogota) }

	_, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{
		Mode:     "custom",
		FromDate: "2026-03-01",
		ToDate:   "2026-03-31",
	})

	require.NoError(t, err)
	esperada := time.Date(2026, 3, 1, 0, 0, 0, 0, bogota)
	assert.True(t, ledger.lastFilters.FromDate.Equal(esperada),
		"from_date debe resolverse a la medianoche de la zona del reloj, obtuvo %s", ledger.lastFilters.FromDate)
}

func TestGetReport_FechaMalFormada(t *testing.T) {
	uc := newTestUseCase(&fakeLedger{})

	_, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{
		Mode:     "custom",
		FromDate: "15/03/2026",
		ToDate:   "2026-03-31",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetReport_PeriodoFueraDelCatalogo(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newTestUseCase(ledger)

	_, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{PeriodMonths: 5})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, ledger.listCalls)
}

// TestGetReport_FalloTransitorioNoDejaVistaVaciaLatente un fallo del
// ledger llega al operador como error y no se guarda como snapshot: la
// consulta siguiente con la misma ventana reintenta el fetch y, con el
// ledger recuperado, sirve la cartera real en vez de un vacío permanente.
func TestGetReport_FalloTransitorioNoDejaVistaVaciaLatente(t *testing.T) {
	ledger := &fakeLedger{listErr: errors.New("timeout")}
	uc := newTestUseCase(ledger)

	_, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{})
	require.Error(t, err, "el fallo de I/O debe llegar al caller, nunca tragarse")
	require.Equal(t, 1, ledger.listCalls)

	// El ledger se recupera y ahora sí tiene cartera.
	ledger.listErr = nil
	ledger.docs = []entity.ReceivableDocument{docPendiente("f1", "c1", "Uno", 100, 0, -5)}

	report, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, ledger.listCalls, "misma ventana tras un fallo: debe reintentarse el fetch")
	require.Len(t, report.AllInvoices, 1)
	assert.True(t, report.Summary.TotalReceivable.Equal(decimal.NewFromInt(100)))
}

func TestGetReport_PermisoDenegadoPorElLedger(t *testing.T) {
	ledger := &fakeLedger{listErr: domain.ErrForbidden}
	uc := newTestUseCase(ledger)

	_, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// TestRefresh_DescartaRespuestaObsoleta si durante el I/O de un fetch se
// emite otro más nuevo, la respuesta del primero se descarta: el snapshot
// final corresponde al fetch más reciente.
func TestRefresh_DescartaRespuestaObsoleta(t *testing.T) {
	docsViejos := []entity.ReceivableDocument{docPendiente("viejo", "c1", "Uno", 100, 0, -5)}
	docsNuevos := []entity.ReceivableDocument{docPendiente("nuevo", "c1", "Uno", 999, 0, -5)}

	ledger := &fakeLedger{docs: docsViejos}
	uc := newTestUseCase(ledger)

	ventanaNueva := domcartera.DateRange{
		From: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 8, 15, 23, 59, 59, 0, time.UTC),
	}

	anidado := false
	ledger.onList = func() {
		if anidado {
			return
		}
		anidado = true
		// Fetch más nuevo emitido mientras el primero sigue en vuelo.
		ledger.docs = docsNuevos
		require.NoError(t, uc.refresh(context.Background(), ventanaNueva))
		ledger.docs = docsViejos // el fetch original responde con el conjunto viejo
	}

	ventanaVieja := domcartera.DateRange{
		From: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 8, 15, 23, 59, 59, 0, time.UTC),
	}
	require.NoError(t, uc.refresh(context.Background(), ventanaVieja))

	uc.mu.Lock()
	snap := uc.snap
	window := uc.window
	uc.mu.Unlock()

	require.NotNil(t, snap)
	require.Len(t, snap.docs, 1)
	assert.Equal(t, "nuevo", snap.docs[0].ID, "la respuesta obsoleta debe descartarse")
	assert.True(t, window.Equal(ventanaNueva))
}

func TestRefreshAfterPayment_SinVistaCargadaNoHaceNada(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newTestUseCase(ledger)

	require.NoError(t, uc.RefreshAfterPayment(context.Background()))
	assert.Equal(t, 0, ledger.listCalls)
}

func TestRefreshAfterPayment_ReutilizaLaVentanaVigente(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newTestUseCase(ledger)

	_, err := uc.GetReport(context.Background(), dto.CarteraReportRequest{PeriodMonths: 3})
	require.NoError(t, err)
	primera := ledger.lastFilters

	require.NoError(t, uc.RefreshAfterPayment(context.Background()))

	assert.Equal(t, 2, ledger.listCalls)
	assert.Equal(t, primera.FromDate, ledger.lastFilters.FromDate, "el refresco usa la misma ventana")
	assert.Equal(t, primera.ToDate, ledger.lastFilters.ToDate)
}

// ── helper ────────────────────────────────────────────────────────────────────

// docPendiente documento crudo tal como lo devuelve el ledger: sin campos
// derivados de antigüedad (los calcula el caso de uso con su reloj).
// diasAtras es negativo hacia el pasado.
func docPendiente(id, customerID, customerName string, total, paid float64, diasAtras int) entity.ReceivableDocument {
	tt := decimal.NewFromFloat(total)
	p := decimal.NewFromFloat(paid)
	return entity.ReceivableDocument{
		ID:            id,
		SaleNumber:    "V-" + id,
		DocumentType:  entity.DocumentoFactura,
		PaymentStatus: entity.PagoPendiente,
		CustomerID:    customerID,
		CustomerName:  customerName,
		SaleDate:      ahora.AddDate(0, 0, diasAtras),
		TotalAmount:   tt,
		PaidAmount:    p,
		Balance:       tt.Sub(p),
	}
}
