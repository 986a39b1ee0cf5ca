package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/contable-pro/internal/application/documentos"
	"github.com/tu-usuario/contable-pro/internal/application/dto"
	"github.com/tu-usuario/contable-pro/internal/domain/entity"
)

// DocumentosHandler maneja las peticiones HTTP de documentos de origen.
type DocumentosHandler struct {
	uc *documentos.UseCase
}

// NewDocumentosHandler construye el handler.
func NewDocumentosHandler(uc *documentos.UseCase) *DocumentosHandler {
	return &DocumentosHandler{uc: uc}
}

// tiposFactura tipos de documento con líneas, por segmento de ruta.
var tiposFactura = map[string]string{
	"facturas-venta":      entity.DocFacturaVenta,
	"facturas-compra":     entity.DocFacturaCompra,
	"devoluciones-venta":  entity.DocDevolucionVenta,
	"devoluciones-compra": entity.DocDevolucionCompra,
}

// CrearFactura godoc
// @Summary      Crear factura o devolución
// @Tags         documentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FacturaRequest  true  "fecha, parte, lineas; monto_secundario y pagado_primario opcionales"
// @Success      201   {object}  dto.DocumentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/{tipo} [post]
func (h *DocumentosHandler) CrearFactura(c *fiber.Ctx) error {
	tipo, ok := tiposFactura[c.Params("tipo")]
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	var in dto.FacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.GuardarFactura(c.Context(), tipo, in, false)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// EditarFactura godoc
// @Summary      Editar factura o devolución (compensación: eliminar y regenerar)
// @Tags         documentos
// @Security     Bearer
// @Router       /api/{tipo}/{id} [put]
func (h *DocumentosHandler) EditarFactura(c *fiber.Ctx) error {
	tipo, ok := tiposFactura[c.Params("tipo")]
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	var in dto.FacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	resp, err := h.uc.GuardarFactura(c.Context(), tipo, in, true)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// CrearTraslado godoc
// @Summary      Trasladar un artículo entre bodegas
// @Description  Genera exactamente dos movimientos (SALIDA en origen, ENTRADA
//               en destino) que comparten el código de traslado generado.
// @Tags         documentos
// @Security     Bearer
// @Router       /api/traslados [post]
func (h *DocumentosHandler) CrearTraslado(c *fiber.Ctx) error {
	var in dto.TrasladoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Traslado(c.Context(), in, "")
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// EditarTraslado godoc
// @Summary      Editar un traslado
// @Tags         documentos
// @Security     Bearer
// @Router       /api/traslados/{id} [put]
func (h *DocumentosHandler) EditarTraslado(c *fiber.Ctx) error {
	var in dto.TrasladoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Traslado(c.Context(), in, c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// tiposComprobante tipos de comprobante de caja por segmento de ruta.
var tiposComprobante = map[string]string{
	"recibos": entity.DocReciboCaja,
	"pagos":   entity.DocPagoCaja,
}

// CrearComprobante godoc
// @Summary      Crear comprobante de caja (recibo o pago)
// @Tags         documentos
// @Security     Bearer
// @Router       /api/comprobantes/{clase} [post]
func (h *DocumentosHandler) CrearComprobante(c *fiber.Ctx) error {
	tipo, ok := tiposComprobante[c.Params("clase")]
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	var in dto.ComprobanteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.GuardarComprobante(c.Context(), tipo, in, false)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// EditarComprobante godoc
// @Summary      Editar comprobante de caja
// @Tags         documentos
// @Security     Bearer
// @Router       /api/comprobantes/{clase}/{id} [put]
func (h *DocumentosHandler) EditarComprobante(c *fiber.Ctx) error {
	tipo, ok := tiposComprobante[c.Params("clase")]
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	var in dto.ComprobanteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	resp, err := h.uc.GuardarComprobante(c.Context(), tipo, in, true)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// Eliminar godoc
// @Summary      Borrar un documento y los movimientos que generó
// @Tags         documentos
// @Security     Bearer
// @Router       /api/documentos/{id} [delete]
func (h *DocumentosHandler) Eliminar(c *fiber.Ctx) error {
	resp, err := h.uc.Eliminar(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}
