package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/contable-pro/internal/domain"
)

// Tipos de movimiento de stock.
const (
	MovimientoENTRADA    = "ENTRADA"
	MovimientoSALIDA     = "SALIDA"
	MovimientoDEVOLUCION = "DEVOLUCION"
)

// Categorías de origen de un movimiento. Junto con DocumentoOrigenID forman la
// clave de compensación: al editar o borrar un documento se eliminan SOLO los
// movimientos cuya pareja (documento, categoría) coincide. Nunca se busca por
// subcadenas del detalle libre.
const (
	CategoriaFactura     = "factura"
	CategoriaDevolucion  = "devolucion"
	CategoriaTraslado    = "traslado"
	CategoriaComprobante = "comprobante"
)

// FormatoFecha las fechas viajan como cadenas ISO YYYY-MM-DD; la comparación
// lexicográfica coincide con la cronológica.
const FormatoFecha = "2006-01-02"

// MovimientoStock un movimiento de inventario con fecha y tipo. Inmutable una
// vez escrito, salvo por el protocolo de compensación (eliminar y regenerar).
type MovimientoStock struct {
	ID                string          `json:"id"`
	Fecha             string          `json:"fecha"` // YYYY-MM-DD
	CodigoArticulo    string          `json:"codigo_articulo"`
	NombreArticulo    string          `json:"nombre_articulo"`
	Unidad            string          `json:"unidad"`
	Precio            decimal.Decimal `json:"precio"`
	Bodega            string          `json:"bodega"`
	Tipo              string          `json:"tipo"` // ENTRADA, SALIDA, DEVOLUCION
	Cantidad          decimal.Decimal `json:"cantidad"`
	DocumentoOrigenID string          `json:"documento_origen_id"`
	Categoria         string          `json:"categoria"`
	Detalle           string          `json:"detalle,omitempty"`
}

// Validar rechaza registros malformados con un error descriptivo en vez de
// coercionar campos ausentes a cero.
func (m MovimientoStock) Validar() error {
	if m.ID == "" || m.CodigoArticulo == "" || m.DocumentoOrigenID == "" || m.Categoria == "" {
		return domain.ErrEntradaInvalida
	}
	switch m.Tipo {
	case MovimientoENTRADA, MovimientoSALIDA, MovimientoDEVOLUCION:
	default:
		return domain.ErrEntradaInvalida
	}
	if m.Cantidad.IsNegative() {
		return domain.ErrEntradaInvalida
	}
	if _, err := time.Parse(FormatoFecha, m.Fecha); err != nil {
		return domain.ErrEntradaInvalida
	}
	return nil
}

// Origen devuelve la clave de compensación del movimiento.
func (m MovimientoStock) Origen() (documentoID, categoria string) {
	return m.DocumentoOrigenID, m.Categoria
}
