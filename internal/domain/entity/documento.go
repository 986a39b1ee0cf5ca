package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/contable-pro/internal/domain"
)

// Tipos de documento de origen. Cada documento es dueño de cero o más
// movimientos que comparten su DocumentoOrigenID.
const (
	DocFacturaVenta     = "FACTURA_VENTA"
	DocFacturaCompra    = "FACTURA_COMPRA"
	DocDevolucionVenta  = "DEVOLUCION_VENTA"
	DocDevolucionCompra = "DEVOLUCION_COMPRA"
	DocTraslado         = "TRASLADO"
	DocReciboCaja       = "RECIBO_CAJA"
	DocPagoCaja         = "PAGO_CAJA"
)

// LineaDocumento una línea de artículo dentro de una factura o devolución.
type LineaDocumento struct {
	CodigoArticulo string          `json:"codigo_articulo"`
	NombreArticulo string          `json:"nombre_articulo"`
	Unidad         string          `json:"unidad"`
	Bodega         string          `json:"bodega"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Precio         decimal.Decimal `json:"precio"`
}

// Documento un documento de negocio (factura, devolución, traslado o
// comprobante de caja). Ciclo de vida: creado -> editado N veces -> borrado.
// MontoEnLetras se regenera con tafqeet en CADA guardado que cambie el monto,
// nunca queda congelado de una edición anterior.
type Documento struct {
	ID              string           `json:"id"`
	Tipo            string           `json:"tipo"`
	Fecha           string           `json:"fecha"` // YYYY-MM-DD
	Parte           string           `json:"parte,omitempty"`
	Lineas          []LineaDocumento `json:"lineas,omitempty"`
	MontoPrimario   decimal.Decimal  `json:"monto_primario"`
	MontoSecundario decimal.Decimal  `json:"monto_secundario"`
	PagadoPrimario  decimal.Decimal  `json:"pagado_primario"`
	MontoEnLetras   string           `json:"monto_en_letras,omitempty"`
	Detalle         string           `json:"detalle,omitempty"`

	// Solo traslados.
	BodegaOrigen  string `json:"bodega_origen,omitempty"`
	BodegaDestino string `json:"bodega_destino,omitempty"`

	CreadoEn      time.Time `json:"creado_en"`
	ActualizadoEn time.Time `json:"actualizado_en"`
}

// Validar comprueba los campos mínimos comunes a todo documento.
func (d Documento) Validar() error {
	if d.ID == "" {
		return domain.ErrEntradaInvalida
	}
	switch d.Tipo {
	case DocFacturaVenta, DocFacturaCompra, DocDevolucionVenta, DocDevolucionCompra,
		DocTraslado, DocReciboCaja, DocPagoCaja:
	default:
		return domain.ErrEntradaInvalida
	}
	if _, err := time.Parse(FormatoFecha, d.Fecha); err != nil {
		return domain.ErrEntradaInvalida
	}
	return nil
}

// Categoria devuelve la categoría de compensación que corresponde al tipo.
func (d Documento) Categoria() string {
	switch d.Tipo {
	case DocFacturaVenta, DocFacturaCompra:
		return CategoriaFactura
	case DocDevolucionVenta, DocDevolucionCompra:
		return CategoriaDevolucion
	case DocTraslado:
		return CategoriaTraslado
	default:
		return CategoriaComprobante
	}
}
