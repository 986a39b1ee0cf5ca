package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/contable-pro/internal/domain/entity"
)

// LineaRequest una línea de artículo en una factura o devolución.
type LineaRequest struct {
	CodigoArticulo string          `json:"codigo_articulo"`
	NombreArticulo string          `json:"nombre_articulo"`
	Unidad         string          `json:"unidad"`
	Bodega         string          `json:"bodega"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Precio         decimal.Decimal `json:"precio"`
}

// FacturaRequest crear o editar una factura o devolución. El monto primario
// se calcula de las líneas; el secundario se declara aparte. PagadoPrimario
// es el efectivo entregado en el acto y genera el movimiento de dinero real.
type FacturaRequest struct {
	ID              string          `json:"id"`
	Fecha           string          `json:"fecha"`
	Parte           string          `json:"parte"`
	Lineas          []LineaRequest  `json:"lineas"`
	MontoSecundario decimal.Decimal `json:"monto_secundario"`
	PagadoPrimario  decimal.Decimal `json:"pagado_primario"`
	Detalle         string          `json:"detalle"`
}

// TrasladoRequest traslado de un artículo entre bodegas. Genera exactamente
// dos movimientos (SALIDA en origen, ENTRADA en destino) que comparten el
// código de traslado generado.
type TrasladoRequest struct {
	CodigoArticulo string          `json:"codigo_articulo"`
	NombreArticulo string          `json:"nombre_articulo"`
	Unidad         string          `json:"unidad"`
	BodegaOrigen   string          `json:"bodega_origen"`
	BodegaDestino  string          `json:"bodega_destino"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Fecha          string          `json:"fecha"`
	Detalle        string          `json:"detalle"`
}

// ComprobanteRequest comprobante de caja (recibo o pago) en una moneda.
type ComprobanteRequest struct {
	ID      string          `json:"id"`
	Fecha   string          `json:"fecha"`
	Parte   string          `json:"parte"`
	Moneda  string          `json:"moneda"` // PRIMARIA, SECUNDARIA
	Monto   decimal.Decimal `json:"monto"`
	Detalle string          `json:"detalle"`
}

// DocumentoResponse el documento guardado, los movimientos que generó y la
// advertencia de compensación si el paso de eliminación no encontró
// movimientos previos esperados.
type DocumentoResponse struct {
	Documento        entity.Documento         `json:"documento"`
	MovimientosStock []entity.MovimientoStock `json:"movimientos_stock,omitempty"`
	MovimientosCaja  []entity.MovimientoCaja  `json:"movimientos_caja,omitempty"`
	Advertencia      string                   `json:"advertencia,omitempty"`
}
