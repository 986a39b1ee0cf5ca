package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/contable-pro/internal/application/dto"
	"github.com/tu-usuario/contable-pro/pkg/config"
	"github.com/tu-usuario/contable-pro/pkg/tafqeet"
)

// TafqeetHandler expone el verbalizador a la capa de vista (previsualización
// del monto en letras antes de guardar).
type TafqeetHandler struct {
	monedas config.MonedasConfig
}

// NewTafqeetHandler construye el handler.
func NewTafqeetHandler(monedas config.MonedasConfig) *TafqeetHandler {
	return &TafqeetHandler{monedas: monedas}
}

// Verbalizar godoc
// @Summary      Monto en letras árabes (tafqeet)
// @Tags         tafqeet
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TafqeetRequest  true  "monto entero; moneda vacía = primaria configurada"
// @Success      200   {object}  dto.TafqeetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tafqeet [post]
func (h *TafqeetHandler) Verbalizar(c *fiber.Ctx) error {
	var in dto.TafqeetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	moneda := in.Moneda
	if moneda == "" {
		moneda = h.monedas.Primaria
	}
	texto, err := tafqeet.VerbalizeDecimal(in.Monto, moneda)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.TafqeetResponse{Texto: texto})
}
