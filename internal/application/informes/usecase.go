// Package informes implementa las vistas de consulta: todo saldo que devuelve
// es derivado, recalculado en el momento plegando los logs de movimientos.
package informes

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/contable-pro/internal/application/dto"
	"github.com/tu-usuario/contable-pro/internal/domain"
	"github.com/tu-usuario/contable-pro/internal/domain/entity"
	"github.com/tu-usuario/contable-pro/internal/domain/ledger"
	"github.com/tu-usuario/contable-pro/internal/domain/store"
	"github.com/tu-usuario/contable-pro/internal/infrastructure/slotrepo"
)

// Órdenes del informe de actividad de artículos.
const (
	OrdenEstancados  = "estancados"
	OrdenMasUsados   = "mas_usados"
	OrdenMenosUsados = "menos_usados"
)

// UseCase casos de uso de informes y saldos.
type UseCase struct {
	stock     *slotrepo.MovimientosStock
	caja      *slotrepo.MovimientosCaja
	aperturas *slotrepo.Aperturas
}

// New construye el caso de uso.
func New(s store.Store) *UseCase {
	return &UseCase{
		stock:     slotrepo.NewMovimientosStock(s),
		caja:      slotrepo.NewMovimientosCaja(s),
		aperturas: slotrepo.NewAperturas(s),
	}
}

// SaldoStockInput filtros del saldo de inventario.
type SaldoStockInput struct {
	Articulo  string
	Articulos []string // semántica de unión
	Bodega    string
	Desde     string
	Hasta     string
}

// SaldoStock calcula el saldo de inventario: apertura + ENTRADA - SALIDA +
// DEVOLUCION. La apertura solo entra en el saldo global de un artículo; un
// filtro por bodega pliega únicamente los movimientos de esa bodega.
func (uc *UseCase) SaldoStock(ctx context.Context, in SaldoStockInput) (*dto.SaldoDTO, error) {
	movimientos, err := uc.stock.Listar(ctx)
	if err != nil {
		return nil, err
	}

	partidas := make([]ledger.Partida, 0, len(movimientos))
	for _, m := range movimientos {
		if in.Bodega != "" && m.Bodega != in.Bodega {
			continue
		}
		partidas = append(partidas, ledger.Partida{
			Clave: m.CodigoArticulo, Fecha: m.Fecha, Tipo: m.Tipo, Monto: m.Cantidad,
		})
	}
	partidas = ledger.Filtrar(partidas, ledger.Filtro{
		Clave: in.Articulo, Claves: in.Articulos, Desde: in.Desde, Hasta: in.Hasta,
	})

	apertura := decimal.Zero
	if in.Articulo != "" && in.Bodega == "" {
		mapa, err := uc.aperturas.Stock(ctx)
		if err != nil {
			return nil, err
		}
		apertura = mapa[in.Articulo]
	}

	s := ledger.Reducir(partidas, apertura, ledger.SignoPorRol(ledger.RolArticulo))
	return saldoDTO(s), nil
}

// SaldoCaja calcula los totales de caja por moneda plegando solo el dinero
// real (RECIBO y PAGO). Con base y tasa presentes añade el saldo unificado;
// la tasa es un escalar del momento, la unificación histórica se hace siempre
// a la tasa de hoy.
func (uc *UseCase) SaldoCaja(ctx context.Context, desde, hasta, base string, tasa decimal.Decimal) (*dto.CajaResponse, error) {
	movimientos, err := uc.caja.Listar(ctx)
	if err != nil {
		return nil, err
	}

	var primarias, secundarias []ledger.Partida
	for _, m := range movimientos {
		if !m.EsDineroReal() {
			continue
		}
		p := ledger.Partida{Clave: m.Moneda, Fecha: m.Fecha, Tipo: m.Clase, Direccion: m.Direccion, Monto: m.Monto}
		if m.Moneda == entity.MonedaPrimaria {
			primarias = append(primarias, p)
		} else {
			secundarias = append(secundarias, p)
		}
	}
	rango := ledger.Filtro{Desde: desde, Hasta: hasta}
	signo := ledger.SignoPorRol(ledger.RolCaja)

	sp := ledger.Reducir(ledger.Filtrar(primarias, rango), decimal.Zero, signo)
	ss := ledger.Reducir(ledger.Filtrar(secundarias, rango), decimal.Zero, signo)

	resp := &dto.CajaResponse{Primaria: *saldoDTO(sp), Secundaria: *saldoDTO(ss)}
	if base != "" {
		unificado, err := ledger.Unificar(sp.Neto, ss.Neto, tasa, base)
		if err != nil {
			return nil, err
		}
		resp.Unificado = &unificado
		resp.MonedaBase = base
	}
	return resp, nil
}

// SaldoParte calcula la posición neta de un cliente o proveedor. El rol
// decide la polaridad: el mismo log sirve para ambos con signos espejo.
func (uc *UseCase) SaldoParte(ctx context.Context, nombre string, rol ledger.Rol, desde, hasta string) (*dto.SaldoDTO, error) {
	if nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if rol != ledger.RolCliente && rol != ledger.RolProveedor {
		return nil, domain.ErrEntradaInvalida
	}

	movimientos, err := uc.caja.Listar(ctx)
	if err != nil {
		return nil, err
	}
	partidas := make([]ledger.Partida, 0, len(movimientos))
	for _, m := range movimientos {
		partidas = append(partidas, ledger.Partida{
			Clave: m.Parte, Fecha: m.Fecha, Tipo: m.Clase, Direccion: m.Direccion, Monto: m.Monto,
		})
	}
	partidas = ledger.Filtrar(partidas, ledger.Filtro{Clave: nombre, Desde: desde, Hasta: hasta})

	mapa, err := uc.aperturas.Partes(ctx)
	if err != nil {
		return nil, err
	}

	s := ledger.Reducir(partidas, mapa[nombre], ledger.SignoPorRol(rol))
	return saldoDTO(s), nil
}

// ActividadArticulos el mismo plegado con otra proyección: última fecha de
// movimiento y magnitud de uso por artículo, en el orden pedido. Los empates
// se ordenan por nombre con colación árabe.
func (uc *UseCase) ActividadArticulos(ctx context.Context, orden, desde, hasta string) ([]dto.ActividadDTO, error) {
	switch orden {
	case OrdenEstancados, OrdenMasUsados, OrdenMenosUsados:
	default:
		return nil, domain.ErrEntradaInvalida
	}

	movimientos, err := uc.stock.Listar(ctx)
	if err != nil {
		return nil, err
	}
	nombres := make(map[string]string)
	partidas := make([]ledger.Partida, 0, len(movimientos))
	for _, m := range movimientos {
		if m.NombreArticulo != "" {
			nombres[m.CodigoArticulo] = m.NombreArticulo
		}
		partidas = append(partidas, ledger.Partida{
			Clave: m.CodigoArticulo, Fecha: m.Fecha, Tipo: m.Tipo, Monto: m.Cantidad,
		})
	}
	partidas = ledger.Filtrar(partidas, ledger.Filtro{Desde: desde, Hasta: hasta})

	actividad := ledger.Actividad(partidas, nombres)
	colador := collate.New(language.Arabic)
	sort.SliceStable(actividad, func(i, j int) bool {
		a, b := actividad[i], actividad[j]
		var menor bool
		var empate bool
		switch orden {
		case OrdenEstancados:
			menor, empate = a.UltimaFecha < b.UltimaFecha, a.UltimaFecha == b.UltimaFecha
		case OrdenMasUsados:
			menor, empate = a.Magnitud.GreaterThan(b.Magnitud), a.Magnitud.Equal(b.Magnitud)
		default: // menos usados
			menor, empate = a.Magnitud.LessThan(b.Magnitud), a.Magnitud.Equal(b.Magnitud)
		}
		if empate {
			return colador.CompareString(a.Nombre, b.Nombre) < 0
		}
		return menor
	})

	out := make([]dto.ActividadDTO, 0, len(actividad))
	for _, a := range actividad {
		out = append(out, dto.ActividadDTO{
			CodigoArticulo: a.Clave,
			NombreArticulo: a.Nombre,
			UltimaFecha:    a.UltimaFecha,
			Magnitud:       a.Magnitud,
			Lineas:         a.Lineas,
		})
	}
	return out, nil
}

// AperturasStock devuelve el mapa de aperturas de inventario.
func (uc *UseCase) AperturasStock(ctx context.Context) (map[string]decimal.Decimal, error) {
	return uc.aperturas.Stock(ctx)
}

// AperturasPartes devuelve el mapa de aperturas de partes.
func (uc *UseCase) AperturasPartes(ctx context.Context) (map[string]decimal.Decimal, error) {
	return uc.aperturas.Partes(ctx)
}

// GuardarAperturasStock reemplaza las aperturas de inventario.
func (uc *UseCase) GuardarAperturasStock(ctx context.Context, aperturas map[string]decimal.Decimal) error {
	if aperturas == nil {
		return domain.ErrEntradaInvalida
	}
	return uc.aperturas.GuardarStock(ctx, aperturas)
}

// GuardarAperturasPartes reemplaza las aperturas de partes.
func (uc *UseCase) GuardarAperturasPartes(ctx context.Context, aperturas map[string]decimal.Decimal) error {
	if aperturas == nil {
		return domain.ErrEntradaInvalida
	}
	return uc.aperturas.GuardarPartes(ctx, aperturas)
}

func saldoDTO(s ledger.Saldo) *dto.SaldoDTO {
	return &dto.SaldoDTO{
		Apertura:    s.Apertura,
		Recibido:    s.Recibido,
		Pagado:      s.Pagado,
		Neto:        s.Neto,
		UltimaFecha: s.UltimaFecha,
		Lineas:      s.Lineas,
	}
}
