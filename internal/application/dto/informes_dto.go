package dto

import "github.com/shopspring/decimal"

// SaldoDTO un saldo derivado: siempre recalculado, nunca leído de un campo
// cacheado.
type SaldoDTO struct {
	Apertura    decimal.Decimal `json:"apertura"`
	Recibido    decimal.Decimal `json:"recibido"`
	Pagado      decimal.Decimal `json:"pagado"`
	Neto        decimal.Decimal `json:"neto"`
	UltimaFecha string          `json:"ultima_fecha,omitempty"`
	Lineas      int             `json:"lineas"`
}

// CajaResponse saldos de caja por moneda con unificación opcional.
type CajaResponse struct {
	Primaria   SaldoDTO         `json:"primaria"`
	Secundaria SaldoDTO         `json:"secundaria"`
	Unificado  *decimal.Decimal `json:"unificado,omitempty"`
	MonedaBase string           `json:"moneda_base,omitempty"`
}

// ActividadDTO actividad de un artículo para los informes de estancados,
// más usados y menos usados.
type ActividadDTO struct {
	CodigoArticulo string          `json:"codigo_articulo"`
	NombreArticulo string          `json:"nombre_articulo,omitempty"`
	UltimaFecha    string          `json:"ultima_fecha"`
	Magnitud       decimal.Decimal `json:"magnitud"`
	Lineas         int             `json:"lineas"`
}

// AperturasRequest reemplaza el mapa de saldos de apertura (clave -> valor).
type AperturasRequest struct {
	Aperturas map[string]decimal.Decimal `json:"aperturas"`
}

// TafqeetRequest monto a verbalizar; si moneda viene vacía se usa la primaria
// configurada.
type TafqeetRequest struct {
	Monto  decimal.Decimal `json:"monto"`
	Moneda string          `json:"moneda"`
}

// TafqeetResponse el monto en letras árabes.
type TafqeetResponse struct {
	Texto string `json:"texto"`
}

// LoginRequest la puerta de contraseña única.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token de sesión.
type LoginResponse struct {
	Token string `json:"token"`
}
