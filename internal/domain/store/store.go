// Package store define el puerto del almacén de ranuras: un espacio plano de
// documentos JSON con nombre, sin transacciones entre ranuras, sin esquema y
// sin índices. No existe capacidad de consulta: se lee la ranura completa y
// se filtra en memoria.
package store

import (
	"context"
	"encoding/json"
)

// Nombres de ranura usados por el motor.
const (
	SlotMovimientosStock = "movimientos_stock"
	SlotMovimientosCaja  = "movimientos_caja"
	SlotDocumentos       = "documentos"
	SlotAperturasStock   = "aperturas_stock"
	SlotAperturasPartes  = "aperturas_partes"
)

// Batch un conjunto de escrituras de ranura que deben aplicarse como una sola
// unidad: el sobre de transacción que evita que un guardado a medias deje
// movimientos sin su documento de origen (o al revés).
type Batch map[string]json.RawMessage

// Store el puerto del almacén. Get devuelve nil (sin error) si la ranura no
// existe todavía.
type Store interface {
	Get(ctx context.Context, nombre string) (json.RawMessage, error)
	Set(ctx context.Context, nombre string, doc json.RawMessage) error
	Apply(ctx context.Context, lote Batch) error
}
