package slotrepo

import (
	"context"

	"github.com/tu-usuario/contable-pro/internal/domain/entity"
	"github.com/tu-usuario/contable-pro/internal/domain/store"
)

// MovimientosStock repositorio del log de movimientos de inventario.
type MovimientosStock struct {
	s store.Store
}

// NewMovimientosStock construye el repositorio.
func NewMovimientosStock(s store.Store) *MovimientosStock {
	return &MovimientosStock{s: s}
}

// Listar devuelve el log completo.
func (r *MovimientosStock) Listar(ctx context.Context) ([]entity.MovimientoStock, error) {
	return leerLista[entity.MovimientoStock](ctx, r.s, store.SlotMovimientosStock)
}

// Guardar reemplaza el log completo.
func (r *MovimientosStock) Guardar(ctx context.Context, log []entity.MovimientoStock) error {
	doc, err := Codificar(log)
	if err != nil {
		return err
	}
	return r.s.Set(ctx, store.SlotMovimientosStock, doc)
}

// MovimientosCaja repositorio del log de movimientos de caja y de partes.
type MovimientosCaja struct {
	s store.Store
}

// NewMovimientosCaja construye el repositorio.
func NewMovimientosCaja(s store.Store) *MovimientosCaja {
	return &MovimientosCaja{s: s}
}

// Listar devuelve el log completo.
func (r *MovimientosCaja) Listar(ctx context.Context) ([]entity.MovimientoCaja, error) {
	return leerLista[entity.MovimientoCaja](ctx, r.s, store.SlotMovimientosCaja)
}

// Guardar reemplaza el log completo.
func (r *MovimientosCaja) Guardar(ctx context.Context, log []entity.MovimientoCaja) error {
	doc, err := Codificar(log)
	if err != nil {
		return err
	}
	return r.s.Set(ctx, store.SlotMovimientosCaja, doc)
}
