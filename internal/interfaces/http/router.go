package http

import (
	"github.com/gofiber/fiber/v2"

	appcartera "github.com/DevSairus/cartera-api/internal/application/cartera"
	"github.com/DevSairus/cartera-api/internal/application/clientes"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CarteraUC *appcartera.UseCase
	PagoUC    *appcartera.PaymentUseCase
	ClienteUC *clientes.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Cartera: reporte y conciliación de pagos
	cartera := api.Group("/cartera")
	carteraHandler := NewCarteraHandler(deps.CarteraUC)
	pagoHandler := NewPagoHandler(deps.PagoUC)
	cartera.Get("/", carteraHandler.GetReport)
	cartera.Post("/pagos", pagoHandler.Register)
	cartera.Get("/documentos/:id/pagos", pagoHandler.ListByDocument)

	// Directorio de clientes (solo lectura, asistencia de búsqueda)
	clientesGroup := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientesGroup.Get("/", clienteHandler.List)
}
