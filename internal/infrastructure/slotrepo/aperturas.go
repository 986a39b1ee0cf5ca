package slotrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/contable-pro/internal/domain/store"
)

// Aperturas repositorio de saldos de apertura: cantidad inicial por código de
// artículo y saldo inicial por nombre de parte.
type Aperturas struct {
	s store.Store
}

// NewAperturas construye el repositorio.
func NewAperturas(s store.Store) *Aperturas {
	return &Aperturas{s: s}
}

// Stock devuelve el mapa código de artículo -> cantidad de apertura.
func (r *Aperturas) Stock(ctx context.Context) (map[string]decimal.Decimal, error) {
	return leerMapa[decimal.Decimal](ctx, r.s, store.SlotAperturasStock)
}

// Partes devuelve el mapa nombre de parte -> saldo de apertura.
func (r *Aperturas) Partes(ctx context.Context) (map[string]decimal.Decimal, error) {
	return leerMapa[decimal.Decimal](ctx, r.s, store.SlotAperturasPartes)
}

// GuardarStock reemplaza el mapa de aperturas de stock.
func (r *Aperturas) GuardarStock(ctx context.Context, aperturas map[string]decimal.Decimal) error {
	doc, err := Codificar(aperturas)
	if err != nil {
		return err
	}
	return r.s.Set(ctx, store.SlotAperturasStock, doc)
}

// GuardarPartes reemplaza el mapa de aperturas de partes.
func (r *Aperturas) GuardarPartes(ctx context.Context, aperturas map[string]decimal.Decimal) error {
	doc, err := Codificar(aperturas)
	if err != nil {
		return err
	}
	return r.s.Set(ctx, store.SlotAperturasPartes, doc)
}
