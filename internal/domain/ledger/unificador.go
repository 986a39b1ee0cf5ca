package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/contable-pro/internal/domain"
	"github.com/tu-usuario/contable-pro/internal/domain/entity"
)

// Unificar convierte el par de saldos (primario, secundario) a un único saldo
// en la moneda base usando una tasa escalar suministrada por el usuario en
// cada informe. La tasa nunca se persiste en los movimientos: la unificación
// histórica se hace siempre a la tasa de hoy, no a la vigente en la fecha del
// movimiento (aproximación conocida y conservada deliberadamente).
//
// Una tasa cero o negativa devuelve ErrTasaInvalida: el valor por defecto
// tasa=1 del sistema original era una guardia defensiva, no una regla de
// negocio, y aquí se rechaza en vez de replicarse en silencio.
func Unificar(primario, secundario, tasa decimal.Decimal, base string) (decimal.Decimal, error) {
	if !tasa.IsPositive() {
		return decimal.Zero, domain.ErrTasaInvalida
	}
	switch base {
	case entity.MonedaPrimaria:
		return primario.Add(secundario.Mul(tasa)), nil
	case entity.MonedaSecundaria:
		return secundario.Add(primario.Div(tasa)), nil
	default:
		return decimal.Zero, domain.ErrEntradaInvalida
	}
}
