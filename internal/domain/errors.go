package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado    = errors.New("recurso no encontrado")
	ErrEntradaInvalida = errors.New("entrada inválida")
	ErrDuplicado       = errors.New("recurso duplicado")
	ErrNoAutorizado    = errors.New("no autorizado")

	// ErrTasaInvalida: la tasa de cambio debe ser estrictamente positiva.
	// El fallback silencioso tasa=1 del sistema original NO se replica.
	ErrTasaInvalida = errors.New("tasa de cambio inválida")

	// ErrCompensacionVacia: el paso de eliminación de la compensación no
	// encontró movimientos previos cuando se esperaban. Se expone como
	// advertencia al llamador, nunca se traga.
	ErrCompensacionVacia = errors.New("compensación sin movimientos previos")
)
