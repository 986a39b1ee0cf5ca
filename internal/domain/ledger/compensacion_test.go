package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/contable-pro/internal/domain/entity"
	"github.com/tu-usuario/contable-pro/internal/domain/ledger"
)

func movStock(id, doc, cat, tipo, cantidad string) entity.MovimientoStock {
	return entity.MovimientoStock{
		ID:                id,
		Fecha:             "2026-01-10",
		CodigoArticulo:    "A-100",
		Tipo:              tipo,
		Cantidad:          d(cantidad),
		DocumentoOrigenID: doc,
		Categoria:         cat,
	}
}

func saldoArticulo(log []entity.MovimientoStock) decimal.Decimal {
	partidas := make([]ledger.Partida, 0, len(log))
	for _, m := range log {
		partidas = append(partidas, ledger.Partida{
			Clave: m.CodigoArticulo, Fecha: m.Fecha, Tipo: m.Tipo, Monto: m.Cantidad,
		})
	}
	return ledger.Reducir(partidas, decimal.Zero, ledger.SignoPorRol(ledger.RolArticulo)).Neto
}

func TestCompensar_EliminaSoloLaParejaDocumentoCategoria(t *testing.T) {
	log := []entity.MovimientoStock{
		movStock("m1", "F-1", entity.CategoriaFactura, entity.MovimientoSALIDA, "2"),
		// Mismo número de documento pero otra categoría: no debe tocarse.
		movStock("m2", "F-1", entity.CategoriaDevolucion, entity.MovimientoDEVOLUCION, "1"),
		movStock("m3", "F-2", entity.CategoriaFactura, entity.MovimientoSALIDA, "5"),
	}

	out, eliminados := ledger.Compensar(log, "F-1", entity.CategoriaFactura, nil)

	assert.Equal(t, 1, eliminados)
	require.Len(t, out, 2)
	assert.Equal(t, "m2", out[0].ID)
	assert.Equal(t, "m3", out[1].ID)
}

// Reaplicar la compensación con los mismos movimientos deja el saldo derivado
// idéntico.
func TestCompensar_IdempotenciaDeSaldo(t *testing.T) {
	nuevos := []entity.MovimientoStock{
		movStock("m1", "F-9", entity.CategoriaFactura, entity.MovimientoSALIDA, "3"),
		movStock("m2", "F-9", entity.CategoriaFactura, entity.MovimientoSALIDA, "1"),
	}
	log, _ := ledger.Compensar(nil, "F-9", entity.CategoriaFactura, nuevos)
	antes := saldoArticulo(log)

	log2, eliminados := ledger.Compensar(log, "F-9", entity.CategoriaFactura, nuevos)

	assert.Equal(t, 2, eliminados)
	assert.True(t, antes.Equal(saldoArticulo(log2)))
	assert.Len(t, log2, len(log))
}

// Crear -> editar cambiando la cantidad: el saldo refleja solo la última
// cantidad, sin residuo de los movimientos previos a la edición.
func TestCompensar_EdicionSinResiduo(t *testing.T) {
	log, _ := ledger.Compensar(nil, "F-7", entity.CategoriaFactura,
		[]entity.MovimientoStock{movStock("m1", "F-7", entity.CategoriaFactura, entity.MovimientoSALIDA, "2")})

	log, eliminados := ledger.Compensar(log, "F-7", entity.CategoriaFactura,
		[]entity.MovimientoStock{movStock("m2", "F-7", entity.CategoriaFactura, entity.MovimientoSALIDA, "6")})

	assert.Equal(t, 1, eliminados)
	assert.True(t, saldoArticulo(log).Equal(d("-6")), "fue %s", saldoArticulo(log))
}

// Borrar una factura de venta que generó una SALIDA de 2 unidades devuelve el
// saldo exactamente a su valor previo a la factura.
func TestCompensar_BorradoRestauraSaldo(t *testing.T) {
	log := []entity.MovimientoStock{
		movStock("x", "F-0", entity.CategoriaFactura, entity.MovimientoENTRADA, "10"),
	}
	previo := saldoArticulo(log)

	log, _ = ledger.Compensar(log, "F-3", entity.CategoriaFactura,
		[]entity.MovimientoStock{movStock("m1", "F-3", entity.CategoriaFactura, entity.MovimientoSALIDA, "2")})
	assert.True(t, saldoArticulo(log).Equal(previo.Sub(d("2"))))

	log, eliminados := ledger.Compensar(log, "F-3", entity.CategoriaFactura, nil)
	assert.Equal(t, 1, eliminados)
	assert.True(t, saldoArticulo(log).Equal(previo))
}

func TestCompensar_CeroEliminadosSeReporta(t *testing.T) {
	log := []entity.MovimientoStock{
		movStock("m1", "F-1", entity.CategoriaFactura, entity.MovimientoSALIDA, "2"),
	}
	_, eliminados := ledger.Compensar(log, "F-99", entity.CategoriaFactura, nil)
	assert.Zero(t, eliminados, "el llamador decide si el cero es una advertencia")
}

func TestCompensar_TambienParaCaja(t *testing.T) {
	log := []entity.MovimientoCaja{
		{ID: "c1", Fecha: "2026-01-01", Moneda: entity.MonedaPrimaria, Direccion: entity.DireccionRecibido,
			Monto: d("100"), Clase: entity.ClaseRecibo, DocumentoOrigenID: "R-1", Categoria: entity.CategoriaComprobante},
	}
	out, eliminados := ledger.Compensar(log, "R-1", entity.CategoriaComprobante, nil)
	assert.Equal(t, 1, eliminados)
	assert.Empty(t, out)
}
