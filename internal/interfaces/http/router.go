package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/contable-pro/internal/application/auth"
	"github.com/tu-usuario/contable-pro/internal/application/documentos"
	"github.com/tu-usuario/contable-pro/internal/application/informes"
	"github.com/tu-usuario/contable-pro/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DocumentosUC *documentos.UseCase
	InformesUC   *informes.UseCase
	AuthUC       *auth.UseCase
	Monedas      config.MonedasConfig
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): la puerta de contraseña única
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tafqeet
	tafqeetHandler := NewTafqeetHandler(deps.Monedas)
	protected.Post("/tafqeet", tafqeetHandler.Verbalizar)

	// Documentos de origen: facturas, devoluciones, traslados, comprobantes
	docHandler := NewDocumentosHandler(deps.DocumentosUC)
	protected.Post("/traslados", docHandler.CrearTraslado)
	protected.Put("/traslados/:id", docHandler.EditarTraslado)
	protected.Post("/comprobantes/:clase", docHandler.CrearComprobante)
	protected.Put("/comprobantes/:clase/:id", docHandler.EditarComprobante)
	protected.Delete("/documentos/:id", docHandler.Eliminar)

	// Saldos e informes derivados
	infHandler := NewInformesHandler(deps.InformesUC)
	protected.Get("/saldos/stock", infHandler.SaldoStock)
	protected.Get("/saldos/caja", infHandler.SaldoCaja)
	protected.Get("/saldos/partes/:nombre", infHandler.SaldoParte)
	protected.Get("/informes/actividad", infHandler.ActividadArticulos)
	protected.Get("/aperturas/:ambito", infHandler.Aperturas)
	protected.Put("/aperturas/:ambito", infHandler.GuardarAperturas)

	// Comodín al final: facturas-venta, facturas-compra, devoluciones-venta,
	// devoluciones-compra. Cualquier otro segmento responde 404.
	protected.Post("/:tipo", docHandler.CrearFactura)
	protected.Put("/:tipo/:id", docHandler.EditarFactura)
}
