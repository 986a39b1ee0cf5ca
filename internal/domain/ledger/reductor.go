// Package ledger contiene el motor de saldos derivados: ningún saldo se
// persiste; todo saldo visible se recalcula plegando el log de movimientos
// sobre un valor de apertura. El plegado es puro y conmutativo: el resultado
// no depende del orden de los movimientos, solo la última fecha mostrada lo
// aprovecha.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/contable-pro/internal/domain/entity"
)

// Partida una línea normalizada del libro: clave de entidad (código de
// artículo, nombre de parte o moneda), fecha ISO, tipo/dirección y monto.
// Los movimientos de stock y de caja se adaptan a esta forma común antes de
// plegarse.
type Partida struct {
	Clave     string
	Fecha     string // YYYY-MM-DD
	Tipo      string // tipo de stock o clase de caja
	Direccion string // solo caja: RECIBIDO, PAGADO
	Monto     decimal.Decimal
}

// SignoFn decide el signo (+1/-1) con que una partida contribuye al saldo.
// Una partida con signo 0 se ignora.
type SignoFn func(p Partida) int

// Rol del titular del saldo. La misma forma de log sirve para clientes y
// proveedores con polaridades espejo, así que el signo se parametriza por rol
// en lugar de inferirse por sitio de llamada.
type Rol string

const (
	RolArticulo  Rol = "articulo"
	RolCaja      Rol = "caja"
	RolCliente   Rol = "cliente"
	RolProveedor Rol = "proveedor"
)

// SignoPorRol devuelve la función de signo explícita de cada rol.
//
//   - articulo:  ENTRADA y DEVOLUCION suman, SALIDA resta.
//   - caja:      RECIBIDO suma, PAGADO resta (solo dinero real).
//   - cliente:   VENTA aumenta lo que debe; RECIBO, COMPRA y DEVOLUCION lo
//     reducen; un PAGO hacia él lo aumenta.
//   - proveedor: espejo del cliente.
func SignoPorRol(rol Rol) SignoFn {
	switch rol {
	case RolArticulo:
		return func(p Partida) int {
			switch p.Tipo {
			case entity.MovimientoENTRADA, entity.MovimientoDEVOLUCION:
				return +1
			case entity.MovimientoSALIDA:
				return -1
			}
			return 0
		}
	case RolCaja:
		return func(p Partida) int {
			switch p.Direccion {
			case entity.DireccionRecibido:
				return +1
			case entity.DireccionPagado:
				return -1
			}
			return 0
		}
	case RolCliente:
		return signoPorClase(map[string]int{
			entity.ClaseVenta:      +1,
			entity.ClaseDevolucion: -1,
			entity.ClaseRecibo:     -1,
			entity.ClasePago:       +1,
			entity.ClaseCompra:     -1,
		})
	case RolProveedor:
		return signoPorClase(map[string]int{
			entity.ClaseCompra:     +1,
			entity.ClaseDevolucion: -1,
			entity.ClasePago:       -1,
			entity.ClaseRecibo:     +1,
			entity.ClaseVenta:      -1,
		})
	}
	return func(Partida) int { return 0 }
}

func signoPorClase(signos map[string]int) SignoFn {
	return func(p Partida) int { return signos[p.Tipo] }
}

// Filtro criterios previos al plegado. Clave exacta; Claves con semántica de
// unión (OR); rango de fechas inclusivo por comparación lexicográfica ISO.
type Filtro struct {
	Clave  string
	Claves []string
	Desde  string
	Hasta  string
}

// Filtrar aplica el filtro y devuelve las partidas que pasan.
func Filtrar(partidas []Partida, f Filtro) []Partida {
	var claves map[string]bool
	if len(f.Claves) > 0 {
		claves = make(map[string]bool, len(f.Claves))
		for _, c := range f.Claves {
			claves[c] = true
		}
	}

	var out []Partida
	for _, p := range partidas {
		if f.Clave != "" && p.Clave != f.Clave {
			continue
		}
		if claves != nil && !claves[p.Clave] {
			continue
		}
		if f.Desde != "" && p.Fecha < f.Desde {
			continue
		}
		if f.Hasta != "" && p.Fecha > f.Hasta {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Saldo resultado del plegado: sumas por lado, neto con apertura y la última
// fecha de movimiento (solo informativa).
type Saldo struct {
	Apertura    decimal.Decimal
	Recibido    decimal.Decimal // suma de contribuciones positivas
	Pagado      decimal.Decimal // suma de contribuciones negativas, en positivo
	Neto        decimal.Decimal
	UltimaFecha string
	Lineas      int
}

// Reducir pliega las partidas de izquierda a derecha. Como la suma es
// conmutativa, el resultado es invariante ante permutaciones de la entrada.
func Reducir(partidas []Partida, apertura decimal.Decimal, signo SignoFn) Saldo {
	s := Saldo{Apertura: apertura}
	for _, p := range partidas {
		switch signo(p) {
		case +1:
			s.Recibido = s.Recibido.Add(p.Monto)
		case -1:
			s.Pagado = s.Pagado.Add(p.Monto)
		default:
			continue
		}
		s.Lineas++
		if p.Fecha > s.UltimaFecha {
			s.UltimaFecha = p.Fecha
		}
	}
	s.Neto = apertura.Add(s.Recibido).Sub(s.Pagado)
	return s
}

// ActividadClave proyección de actividad por clave: misma pasada que el
// reductor con otra salida (última fecha y magnitud movida en vez de saldo
// con signo). Alimenta los informes de estancados / más usados / menos usados.
type ActividadClave struct {
	Clave       string
	Nombre      string
	UltimaFecha string
	Magnitud    decimal.Decimal // suma de |monto| sin signo
	Lineas      int
}

// Actividad agrupa las partidas por clave y acumula su uso. El mapa nombres
// es opcional (clave -> nombre para mostrar).
func Actividad(partidas []Partida, nombres map[string]string) []ActividadClave {
	porClave := make(map[string]*ActividadClave)
	var orden []string
	for _, p := range partidas {
		a, ok := porClave[p.Clave]
		if !ok {
			a = &ActividadClave{Clave: p.Clave, Nombre: nombres[p.Clave]}
			porClave[p.Clave] = a
			orden = append(orden, p.Clave)
		}
		a.Magnitud = a.Magnitud.Add(p.Monto.Abs())
		a.Lineas++
		if p.Fecha > a.UltimaFecha {
			a.UltimaFecha = p.Fecha
		}
	}

	out := make([]ActividadClave, 0, len(orden))
	for _, clave := range orden {
		out = append(out, *porClave[clave])
	}
	return out
}
