package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/contable-pro/internal/domain"
)

// Moneda del movimiento de caja.
const (
	MonedaPrimaria   = "PRIMARIA"
	MonedaSecundaria = "SECUNDARIA"
)

// Dirección del flujo de dinero o de valor.
const (
	DireccionRecibido = "RECIBIDO"
	DireccionPagado   = "PAGADO"
)

// Clase del movimiento de caja. RECIBO y PAGO son dinero real; VENTA, COMPRA
// y DEVOLUCION son obligaciones con una parte (cliente o proveedor).
const (
	ClaseRecibo     = "RECIBO"
	ClasePago       = "PAGO"
	ClaseVenta      = "VENTA"
	ClaseCompra     = "COMPRA"
	ClaseDevolucion = "DEVOLUCION"
)

// MovimientoCaja un movimiento de caja o de cuenta de parte, como variante
// etiquetada {moneda, dirección, monto}: un solo monto por registro en lugar
// de cuatro campos mutuamente excluyentes.
type MovimientoCaja struct {
	ID                string          `json:"id"`
	Fecha             string          `json:"fecha"` // YYYY-MM-DD
	Parte             string          `json:"parte,omitempty"`
	Moneda            string          `json:"moneda"`    // PRIMARIA, SECUNDARIA
	Direccion         string          `json:"direccion"` // RECIBIDO, PAGADO
	Monto             decimal.Decimal `json:"monto"`
	Clase             string          `json:"clase"`
	DocumentoOrigenID string          `json:"documento_origen_id"`
	Categoria         string          `json:"categoria"`
	Detalle           string          `json:"detalle,omitempty"`
}

// Validar rechaza registros malformados con un error descriptivo.
func (m MovimientoCaja) Validar() error {
	if m.ID == "" || m.DocumentoOrigenID == "" || m.Categoria == "" {
		return domain.ErrEntradaInvalida
	}
	if m.Moneda != MonedaPrimaria && m.Moneda != MonedaSecundaria {
		return domain.ErrEntradaInvalida
	}
	if m.Direccion != DireccionRecibido && m.Direccion != DireccionPagado {
		return domain.ErrEntradaInvalida
	}
	switch m.Clase {
	case ClaseRecibo, ClasePago, ClaseVenta, ClaseCompra, ClaseDevolucion:
	default:
		return domain.ErrEntradaInvalida
	}
	if !m.Monto.IsPositive() {
		return domain.ErrEntradaInvalida
	}
	if _, err := time.Parse(FormatoFecha, m.Fecha); err != nil {
		return domain.ErrEntradaInvalida
	}
	return nil
}

// Origen devuelve la clave de compensación del movimiento.
func (m MovimientoCaja) Origen() (documentoID, categoria string) {
	return m.DocumentoOrigenID, m.Categoria
}

// EsDineroReal true para las clases que mueven efectivo de la caja (RECIBO y
// PAGO); el saldo de caja solo pliega estas clases.
func (m MovimientoCaja) EsDineroReal() bool {
	return m.Clase == ClaseRecibo || m.Clase == ClasePago
}
