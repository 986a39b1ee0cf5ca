package documentos

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/contable-pro/internal/domain/entity"
)

// Tipo de movimiento de stock que genera cada tipo de documento. Una
// devolución de compra SACA mercadería (vuelve al proveedor); solo la
// devolución de venta usa el tipo DEVOLUCION, que suma en el reductor.
var tipoStockPorDocumento = map[string]string{
	entity.DocFacturaVenta:     entity.MovimientoSALIDA,
	entity.DocFacturaCompra:    entity.MovimientoENTRADA,
	entity.DocDevolucionVenta:  entity.MovimientoDEVOLUCION,
	entity.DocDevolucionCompra: entity.MovimientoSALIDA,
}

// movimientosStockDeFactura genera los movimientos de inventario de una
// factura o devolución: uno por línea, todos etiquetados con el documento de
// origen y su categoría.
func movimientosStockDeFactura(doc entity.Documento) []entity.MovimientoStock {
	tipo := tipoStockPorDocumento[doc.Tipo]
	out := make([]entity.MovimientoStock, 0, len(doc.Lineas))
	for _, l := range doc.Lineas {
		out = append(out, movimientoStock(doc, l, tipo, l.Bodega))
	}
	return out
}

func movimientoStock(doc entity.Documento, l entity.LineaDocumento, tipo, bodega string) entity.MovimientoStock {
	return entity.MovimientoStock{
		ID:                uuid.New().String(),
		Fecha:             doc.Fecha,
		CodigoArticulo:    l.CodigoArticulo,
		NombreArticulo:    l.NombreArticulo,
		Unidad:            l.Unidad,
		Precio:            l.Precio,
		Bodega:            bodega,
		Tipo:              tipo,
		Cantidad:          l.Cantidad,
		DocumentoOrigenID: doc.ID,
		Categoria:         doc.Categoria(),
		Detalle:           doc.Detalle,
	}
}

// Clase de obligación y dirección del flujo de valor por tipo de documento.
type efectoCaja struct {
	claseObligacion string
	dirObligacion   string
	claseDinero     string
	dirDinero       string
}

var efectoCajaPorDocumento = map[string]efectoCaja{
	entity.DocFacturaVenta:     {entity.ClaseVenta, entity.DireccionRecibido, entity.ClaseRecibo, entity.DireccionRecibido},
	entity.DocFacturaCompra:    {entity.ClaseCompra, entity.DireccionPagado, entity.ClasePago, entity.DireccionPagado},
	entity.DocDevolucionVenta:  {entity.ClaseDevolucion, entity.DireccionPagado, entity.ClasePago, entity.DireccionPagado},
	entity.DocDevolucionCompra: {entity.ClaseDevolucion, entity.DireccionRecibido, entity.ClaseRecibo, entity.DireccionRecibido},
}

// movimientosCajaDeFactura genera hasta tres movimientos de caja: la
// obligación con la parte en moneda primaria, la obligación en secundaria si
// la hay, y el dinero real entregado en el acto (que es lo único que pliega
// el saldo de caja).
func movimientosCajaDeFactura(doc entity.Documento) []entity.MovimientoCaja {
	efecto := efectoCajaPorDocumento[doc.Tipo]
	var out []entity.MovimientoCaja

	if doc.MontoPrimario.IsPositive() {
		out = append(out, movimientoCaja(doc, entity.MonedaPrimaria, doc.MontoPrimario,
			efecto.claseObligacion, efecto.dirObligacion))
	}
	if doc.MontoSecundario.IsPositive() {
		out = append(out, movimientoCaja(doc, entity.MonedaSecundaria, doc.MontoSecundario,
			efecto.claseObligacion, efecto.dirObligacion))
	}
	if doc.PagadoPrimario.IsPositive() {
		out = append(out, movimientoCaja(doc, entity.MonedaPrimaria, doc.PagadoPrimario,
			efecto.claseDinero, efecto.dirDinero))
	}
	return out
}

func movimientoCaja(doc entity.Documento, moneda string, monto decimal.Decimal, clase, direccion string) entity.MovimientoCaja {
	return entity.MovimientoCaja{
		ID:                uuid.New().String(),
		Fecha:             doc.Fecha,
		Parte:             doc.Parte,
		Moneda:            moneda,
		Direccion:         direccion,
		Monto:             monto,
		Clase:             clase,
		DocumentoOrigenID: doc.ID,
		Categoria:         doc.Categoria(),
		Detalle:           doc.Detalle,
	}
}
