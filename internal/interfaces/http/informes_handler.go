package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/contable-pro/internal/application/dto"
	"github.com/tu-usuario/contable-pro/internal/application/informes"
	"github.com/tu-usuario/contable-pro/internal/domain/ledger"
)

// InformesHandler maneja las peticiones HTTP de saldos e informes derivados.
type InformesHandler struct {
	uc *informes.UseCase
}

// NewInformesHandler construye el handler.
func NewInformesHandler(uc *informes.UseCase) *InformesHandler {
	return &InformesHandler{uc: uc}
}

// SaldoStock godoc
// @Summary      Saldo de inventario de un artículo
// @Tags         informes
// @Security     Bearer
// @Produce      json
// @Param        articulo   query  string  false  "código exacto"
// @Param        articulos  query  string  false  "códigos separados por coma (unión)"
// @Param        bodega     query  string  false  "filtrar por bodega"
// @Param        desde      query  string  false  "YYYY-MM-DD inclusivo"
// @Param        hasta      query  string  false  "YYYY-MM-DD inclusivo"
// @Success      200  {object}  dto.SaldoDTO
// @Router       /api/saldos/stock [get]
func (h *InformesHandler) SaldoStock(c *fiber.Ctx) error {
	in := informes.SaldoStockInput{
		Articulo: c.Query("articulo"),
		Bodega:   c.Query("bodega"),
		Desde:    c.Query("desde"),
		Hasta:    c.Query("hasta"),
	}
	if lista := c.Query("articulos"); lista != "" {
		in.Articulos = strings.Split(lista, ",")
	}
	saldo, err := h.uc.SaldoStock(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(saldo)
}

// SaldoCaja godoc
// @Summary      Totales de caja por moneda, con unificación opcional
// @Description  base=PRIMARIA|SECUNDARIA y tasa añaden el saldo unificado.
//               La tasa es del momento del informe; nunca se persiste.
// @Tags         informes
// @Security     Bearer
// @Router       /api/saldos/caja [get]
func (h *InformesHandler) SaldoCaja(c *fiber.Ctx) error {
	tasa := decimal.Zero
	if t := c.Query("tasa"); t != "" {
		var err error
		tasa, err = decimal.NewFromString(t)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tasa inválida"})
		}
	}
	resp, err := h.uc.SaldoCaja(c.Context(), c.Query("desde"), c.Query("hasta"), c.Query("base"), tasa)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// SaldoParte godoc
// @Summary      Posición neta de un cliente o proveedor
// @Tags         informes
// @Security     Bearer
// @Param        rol  query  string  true  "cliente | proveedor"
// @Router       /api/saldos/partes/{nombre} [get]
func (h *InformesHandler) SaldoParte(c *fiber.Ctx) error {
	nombre, err := decodificarParam(c, "nombre")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre inválido"})
	}
	saldo, err := h.uc.SaldoParte(c.Context(), nombre, ledger.Rol(c.Query("rol")), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(saldo)
}

// ActividadArticulos godoc
// @Summary      Artículos estancados, más usados o menos usados
// @Tags         informes
// @Security     Bearer
// @Param        orden  query  string  true  "estancados | mas_usados | menos_usados"
// @Router       /api/informes/actividad [get]
func (h *InformesHandler) ActividadArticulos(c *fiber.Ctx) error {
	actividad, err := h.uc.ActividadArticulos(c.Context(), c.Query("orden"), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(actividad)
}

// Aperturas godoc
// @Summary      Leer saldos de apertura (stock o partes)
// @Tags         informes
// @Security     Bearer
// @Router       /api/aperturas/{ambito} [get]
func (h *InformesHandler) Aperturas(c *fiber.Ctx) error {
	var (
		mapa map[string]decimal.Decimal
		err  error
	)
	switch c.Params("ambito") {
	case "stock":
		mapa, err = h.uc.AperturasStock(c.Context())
	case "partes":
		mapa, err = h.uc.AperturasPartes(c.Context())
	default:
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.AperturasRequest{Aperturas: mapa})
}

// GuardarAperturas godoc
// @Summary      Reemplazar saldos de apertura (stock o partes)
// @Tags         informes
// @Security     Bearer
// @Router       /api/aperturas/{ambito} [put]
func (h *InformesHandler) GuardarAperturas(c *fiber.Ctx) error {
	var in dto.AperturasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var err error
	switch c.Params("ambito") {
	case "stock":
		err = h.uc.GuardarAperturasStock(c.Context(), in.Aperturas)
	case "partes":
		err = h.uc.GuardarAperturasPartes(c.Context(), in.Aperturas)
	default:
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
