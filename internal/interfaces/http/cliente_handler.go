package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DevSairus/cartera-api/internal/application/clientes"
	"github.com/DevSairus/cartera-api/internal/application/dto"
)

// ClienteHandler maneja las consultas al directorio de clientes.
type ClienteHandler struct {
	uc *clientes.UseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *clientes.UseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// List godoc
// @Summary      Clientes activos del directorio (asistencia de búsqueda)
// @Tags         clientes
// @Produce      json
// @Param        search  query  string  false  "texto libre: nombre, razón social o NIT"
// @Success      200  {array}   dto.CustomerResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListActive(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(list)
}
