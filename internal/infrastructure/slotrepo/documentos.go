package slotrepo

import (
	"context"

	"github.com/tu-usuario/contable-pro/internal/domain/entity"
	"github.com/tu-usuario/contable-pro/internal/domain/store"
)

// Documentos repositorio de documentos de origen (facturas, devoluciones,
// traslados y comprobantes) en una sola ranura.
type Documentos struct {
	s store.Store
}

// NewDocumentos construye el repositorio.
func NewDocumentos(s store.Store) *Documentos {
	return &Documentos{s: s}
}

// Listar devuelve todos los documentos; con tipo no vacío filtra por tipo.
func (r *Documentos) Listar(ctx context.Context, tipo string) ([]entity.Documento, error) {
	docs, err := leerLista[entity.Documento](ctx, r.s, store.SlotDocumentos)
	if err != nil {
		return nil, err
	}
	if tipo == "" {
		return docs, nil
	}
	var out []entity.Documento
	for _, d := range docs {
		if d.Tipo == tipo {
			out = append(out, d)
		}
	}
	return out, nil
}

// BuscarPorID devuelve el documento o nil si no existe.
func (r *Documentos) BuscarPorID(ctx context.Context, id string) (*entity.Documento, error) {
	docs, err := leerLista[entity.Documento](ctx, r.s, store.SlotDocumentos)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i], nil
		}
	}
	return nil, nil
}
