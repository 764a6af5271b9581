package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcartera "github.com/DevSairus/cartera-api/internal/application/cartera"
	"github.com/DevSairus/cartera-api/internal/application/dto"
	"github.com/DevSairus/cartera-api/internal/domain"
)

// CarteraHandler maneja el reporte de cuentas por cobrar.
type CarteraHandler struct {
	uc *appcartera.UseCase
}

// NewCarteraHandler construye el handler.
func NewCarteraHandler(uc *appcartera.UseCase) *CarteraHandler {
	return &CarteraHandler{uc: uc}
}

// GetReport godoc
// @Summary      Reporte de cartera: resumen, agrupado por cliente y listado plano
// @Description  La ventana de fechas (mode/period_months/from_date/to_date) define qué
//               se consulta al ledger; search/document_type/payment_status/overdue_only
//               se aplican en memoria sobre el conjunto ya consultado.
// @Tags         cartera
// @Produce      json
// @Param        mode            query  string  false  "period (default) | custom"
// @Param        period_months   query  int     false  "1|3|6|12 (modo period, default 6)"
// @Param        from_date       query  string  false  "YYYY-MM-DD (modo custom)"
// @Param        to_date         query  string  false  "YYYY-MM-DD (modo custom)"
// @Param        search          query  string  false  "texto libre: cliente, NIT, placa o número de venta"
// @Param        document_type   query  string  false  "invoice|remission|quote"
// @Param        payment_status  query  string  false  "pending|partial"
// @Param        overdue_only    query  bool    false  "solo documentos vencidos (>30 días)"
// @Success      200  {object}  dto.CarteraReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/cartera [get]
func (h *CarteraHandler) GetReport(c *fiber.Ctx) error {
	var req dto.CarteraReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	report, err := h.uc.GetReport(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: err.Error(),
			})
		case errors.Is(err, domain.ErrForbidden):
			// El resto de la página sigue usable; la UI muestra el aviso de
			// solo-lectura para esta sección.
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "sin permisos para consultar cartera",
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code: "LEDGER", Message: "no fue posible consultar la cartera",
			})
		}
	}
	return c.JSON(report)
}
