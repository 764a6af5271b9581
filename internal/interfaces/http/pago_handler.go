package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcartera "github.com/DevSairus/cartera-api/internal/application/cartera"
	"github.com/DevSairus/cartera-api/internal/application/dto"
	"github.com/DevSairus/cartera-api/internal/domain"
)

// PagoHandler maneja el registro y consulta de abonos.
type PagoHandler struct {
	uc *appcartera.PaymentUseCase
}

// NewPagoHandler construye el handler.
func NewPagoHandler(uc *appcartera.PaymentUseCase) *PagoHandler {
	return &PagoHandler{uc: uc}
}

// Register godoc
// @Summary      Registra un abono contra un documento de cartera
// @Description  Valida monto y método, delega el registro al ledger y refresca la
//               vista de cartera. Si el registro falla, el documento queda intacto.
// @Tags         cartera
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPaymentRequest  true  "abono"
// @Success      201  {object}  dto.PaymentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/cartera/pagos [post]
func (h *PagoHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}

	payment, err := h.uc.Register(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: err.Error(),
			})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "el documento no existe",
			})
		case errors.Is(err, domain.ErrSobrepago):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "SOBREPAGO", Message: "el abono excede el saldo del documento",
			})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "sin permisos para registrar pagos",
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code: "PAGO_NO_REGISTRADO", Message: "el pago no pudo registrarse",
			})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// ListByDocument godoc
// @Summary      Historial de abonos de un documento
// @Tags         cartera
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {array}   dto.PaymentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cartera/documentos/{id}/pagos [get]
func (h *PagoHandler) ListByDocument(c *fiber.Ctx) error {
	list, err := h.uc.ListByDocument(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(list)
}
