package informes_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/contable-pro/internal/application/informes"
	"github.com/tu-usuario/contable-pro/internal/domain"
	"github.com/tu-usuario/contable-pro/internal/domain/entity"
	"github.com/tu-usuario/contable-pro/internal/infrastructure/memstore"
	"github.com/tu-usuario/contable-pro/internal/infrastructure/slotrepo"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func movStock(articulo, nombre, bodega, tipo, fecha, cantidad string) entity.MovimientoStock {
	return entity.MovimientoStock{
		ID: articulo + "/" + fecha, Fecha: fecha,
		CodigoArticulo: articulo, NombreArticulo: nombre, Bodega: bodega,
		Tipo: tipo, Cantidad: d(cantidad),
		DocumentoOrigenID: "D-" + articulo, Categoria: entity.CategoriaFactura,
	}
}

func movCaja(parte, moneda, clase, direccion, fecha, monto string) entity.MovimientoCaja {
	return entity.MovimientoCaja{
		ID: parte + "/" + clase + "/" + fecha, Fecha: fecha,
		Parte: parte, Moneda: moneda, Direccion: direccion,
		Monto: d(monto), Clase: clase,
		DocumentoOrigenID: "D-" + parte, Categoria: entity.CategoriaFactura,
	}
}

// Apertura 10, entrada 5, salida 3, devolución 1: el saldo derivado es 13.
func TestSaldoStock_AperturaMasPlegado(t *testing.T) {
	ctx := context.Background()
	m := memstore.New()
	uc := informes.New(m)

	require.NoError(t, uc.GuardarAperturasStock(ctx, map[string]decimal.Decimal{"A-100": d("10")}))
	require.NoError(t, slotrepo.NewMovimientosStock(m).Guardar(ctx, []entity.MovimientoStock{
		movStock("A-100", "سكر", "م1", entity.MovimientoENTRADA, "2026-01-01", "5"),
		movStock("A-100", "سكر", "م1", entity.MovimientoSALIDA, "2026-01-02", "3"),
		movStock("A-100", "سكر", "م1", entity.MovimientoDEVOLUCION, "2026-01-03", "1"),
		movStock("B-200", "شاي", "م1", entity.MovimientoENTRADA, "2026-01-04", "50"),
	}))

	s, err := uc.SaldoStock(ctx, informes.SaldoStockInput{Articulo: "A-100"})
	require.NoError(t, err)
	assert.True(t, s.Apertura.Equal(d("10")))
	assert.True(t, s.Neto.Equal(d("13")))
	assert.Equal(t, "2026-01-03", s.UltimaFecha)
	assert.Equal(t, 3, s.Lineas)
}

// La apertura es del artículo, no de una bodega: con filtro por bodega el
// saldo se pliega solo de los movimientos de esa bodega, sin apertura.
func TestSaldoStock_AperturaSoloEnSaldoGlobal(t *testing.T) {
	ctx := context.Background()
	m := memstore.New()
	uc := informes.New(m)

	require.NoError(t, uc.GuardarAperturasStock(ctx, map[string]decimal.Decimal{"A-100": d("10")}))
	require.NoError(t, slotrepo.NewMovimientosStock(m).Guardar(ctx, []entity.MovimientoStock{
		movStock("A-100", "سكر", "م1", entity.MovimientoENTRADA, "2026-01-01", "5"),
		movStock("A-100", "سكر", "م2", entity.MovimientoENTRADA, "2026-01-02", "2"),
	}))

	s, err := uc.SaldoStock(ctx, informes.SaldoStockInput{Articulo: "A-100", Bodega: "م1"})
	require.NoError(t, err)
	assert.True(t, s.Apertura.IsZero())
	assert.True(t, s.Neto.Equal(d("5")))
}

func TestSaldoStock_RangoDeFechasInclusivo(t *testing.T) {
	ctx := context.Background()
	m := memstore.New()
	uc := informes.New(m)

	require.NoError(t, slotrepo.NewMovimientosStock(m).Guardar(ctx, []entity.MovimientoStock{
		movStock("A-100", "", "م1", entity.MovimientoENTRADA, "2026-01-01", "1"),
		movStock("A-100", "", "م1", entity.MovimientoENTRADA, "2026-01-15", "2"),
		movStock("A-100", "", "م1", entity.MovimientoENTRADA, "2026-02-01", "4"),
	}))

	s, err := uc.SaldoStock(ctx, informes.SaldoStockInput{
		Articulo: "A-100", Bodega: "م1", Desde: "2026-01-15", Hasta: "2026-02-01",
	})
	require.NoError(t, err)
	assert.True(t, s.Neto.Equal(d("6")), "ambos extremos del rango cuentan")
}

// El saldo de caja pliega SOLO dinero real: las obligaciones (VENTA, COMPRA,
// DEVOLUCION) registran deuda, no efectivo en caja.
func TestSaldoCaja_SoloDineroReal(t *testing.T) {
	ctx := context.Background()
	m := memstore.New()
	uc := informes.New(m)

	require.NoError(t, slotrepo.NewMovimientosCaja(m).Guardar(ctx, []entity.MovimientoCaja{
		movCaja("ن", entity.MonedaPrimaria, entity.ClaseVenta, entity.DireccionRecibido, "2026-01-01", "1000"),
		movCaja("ن", entity.MonedaPrimaria, entity.ClaseRecibo, entity.DireccionRecibido, "2026-01-01", "300"),
		movCaja("ن", entity.MonedaPrimaria, entity.ClasePago, entity.DireccionPagado, "2026-01-02", "120"),
		movCaja("ن", entity.MonedaSecundaria, entity.ClaseRecibo, entity.DireccionRecibido, "2026-01-03", "50"),
	}))

	caja, err := uc.SaldoCaja(ctx, "", "", "", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, caja.Primaria.Neto.Equal(d("180")), "la VENTA de 1000 no toca la caja")
	assert.True(t, caja.Secundaria.Neto.Equal(d("50")))
	assert.Nil(t, caja.Unificado)
}

func TestSaldoCaja_Unificado(t *testing.T) {
	ctx := context.Background()
	m := memstore.New()
	uc := informes.New(m)

	require.NoError(t, slotrepo.NewMovimientosCaja(m).Guardar(ctx, []entity.MovimientoCaja{
		movCaja("ن", entity.MonedaPrimaria, entity.ClaseRecibo, entity.DireccionRecibido, "2026-01-01", "1000"),
		movCaja("ن", entity.MonedaSecundaria, entity.ClaseRecibo, entity.DireccionRecibido, "2026-01-02", "50"),
	}))

	caja, err := uc.SaldoCaja(ctx, "", "", entity.MonedaPrimaria, d("500"))
	require.NoError(t, err)
	require.NotNil(t, caja.Unificado)
	assert.True(t, caja.Unificado.Equal(d("26000")), "1000 + 50*500")
	assert.Equal(t, entity.MonedaPrimaria, caja.MonedaBase)

	caja, err = uc.SaldoCaja(ctx, "", "", entity.MonedaSecundaria, d("500"))
	require.NoError(t, err)
	require.NotNil(t, caja.Unificado)
	assert.True(t, caja.Unificado.Equal(d("52")), "50 + 1000/500")

	// Tasa sin sentido: error explícito, nunca una tasa implícita de 1.
	_, err = uc.SaldoCaja(ctx, "", "", entity.MonedaPrimaria, decimal.Zero)
	require.ErrorIs(t, err, domain.ErrTasaInvalida)
}

// El mismo log produce saldos espejo según el rol del titular.
func TestSaldoParte_PolaridadPorRol(t *testing.T) {
	ctx := context.Background()
	m := memstore.New()
	uc := informes.New(m)

	require.NoError(t, slotrepo.NewMovimientosCaja(m).Guardar(ctx, []entity.MovimientoCaja{
		movCaja("شركة النور", entity.MonedaPrimaria, entity.ClaseVenta, entity.DireccionRecibido, "2026-01-01", "1000"),
		movCaja("شركة النور", entity.MonedaPrimaria, entity.ClaseRecibo, entity.DireccionRecibido, "2026-01-05", "400"),
	}))

	cliente, err := uc.SaldoParte(ctx, "شركة النور", "cliente", "", "")
	require.NoError(t, err)
	assert.True(t, cliente.Neto.Equal(d("600")), "debe 1000, pagó 400")

	proveedor, err := uc.SaldoParte(ctx, "شركة النور", "proveedor", "", "")
	require.NoError(t, err)
	assert.True(t, proveedor.Neto.Equal(d("-600")), "espejo exacto del cliente")
}

func TestSaldoParte_ConAperturaYErrores(t *testing.T) {
	ctx := context.Background()
	m := memstore.New()
	uc := informes.New(m)

	require.NoError(t, uc.GuardarAperturasPartes(ctx, map[string]decimal.Decimal{"شركة النور": d("250")}))
	require.NoError(t, slotrepo.NewMovimientosCaja(m).Guardar(ctx, []entity.MovimientoCaja{
		movCaja("شركة النور", entity.MonedaPrimaria, entity.ClaseRecibo, entity.DireccionRecibido, "2026-01-05", "100"),
	}))

	s, err := uc.SaldoParte(ctx, "شركة النور", "cliente", "", "")
	require.NoError(t, err)
	assert.True(t, s.Neto.Equal(d("150")), "250 de apertura - 100 recibidos")

	_, err = uc.SaldoParte(ctx, "", "cliente", "", "")
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
	_, err = uc.SaldoParte(ctx, "شركة النور", "caja", "", "")
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestActividadArticulos_Ordenes(t *testing.T) {
	ctx := context.Background()
	m := memstore.New()
	uc := informes.New(m)

	require.NoError(t, slotrepo.NewMovimientosStock(m).Guardar(ctx, []entity.MovimientoStock{
		movStock("A-100", "سكر", "م1", entity.MovimientoENTRADA, "2026-01-20", "5"),
		movStock("A-100", "سكر", "م1", entity.MovimientoSALIDA, "2026-03-01", "5"),
		movStock("B-200", "شاي", "م1", entity.MovimientoENTRADA, "2026-01-05", "100"),
		movStock("C-300", "أرز", "م1", entity.MovimientoENTRADA, "2026-02-10", "30"),
	}))

	// Estancados: el de última fecha más vieja primero.
	actividad, err := uc.ActividadArticulos(ctx, informes.OrdenEstancados, "", "")
	require.NoError(t, err)
	require.Len(t, actividad, 3)
	assert.Equal(t, "B-200", actividad[0].CodigoArticulo)
	assert.Equal(t, "C-300", actividad[1].CodigoArticulo)
	assert.Equal(t, "A-100", actividad[2].CodigoArticulo)

	// Más usados: magnitud sin signo, la SALIDA cuenta igual que la ENTRADA.
	actividad, err = uc.ActividadArticulos(ctx, informes.OrdenMasUsados, "", "")
	require.NoError(t, err)
	assert.Equal(t, "B-200", actividad[0].CodigoArticulo)
	assert.True(t, actividad[0].Magnitud.Equal(d("100")))
	assert.Equal(t, "C-300", actividad[1].CodigoArticulo)
	assert.Equal(t, "A-100", actividad[2].CodigoArticulo)
	assert.True(t, actividad[2].Magnitud.Equal(d("10")))

	actividad, err = uc.ActividadArticulos(ctx, informes.OrdenMenosUsados, "", "")
	require.NoError(t, err)
	assert.Equal(t, "A-100", actividad[0].CodigoArticulo)

	_, err = uc.ActividadArticulos(ctx, "alfabetico", "", "")
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
