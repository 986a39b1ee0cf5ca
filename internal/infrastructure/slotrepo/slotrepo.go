// Package slotrepo contiene los repositorios tipados construidos sobre el
// almacén de ranuras: cada uno decodifica el documento JSON completo de su
// ranura y filtra en memoria, que es todo lo que el almacén permite.
package slotrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/contable-pro/internal/domain/store"
)

// Codificar serializa un valor al formato de ranura. Lo usan los casos de uso
// para armar el lote atómico que pasa a store.Apply.
func Codificar(v any) (json.RawMessage, error) {
	doc, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codificar ranura: %w", err)
	}
	return doc, nil
}

// leerLista decodifica la ranura como lista; ranura ausente = lista vacía.
func leerLista[T any](ctx context.Context, s store.Store, nombre string) ([]T, error) {
	doc, err := s.Get(ctx, nombre)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var lista []T
	if err := json.Unmarshal(doc, &lista); err != nil {
		return nil, fmt.Errorf("decodificar ranura %s: %w", nombre, err)
	}
	return lista, nil
}

// leerMapa decodifica la ranura como mapa clave -> valor; ausente = vacío.
func leerMapa[V any](ctx context.Context, s store.Store, nombre string) (map[string]V, error) {
	doc, err := s.Get(ctx, nombre)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return map[string]V{}, nil
	}
	var m map[string]V
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("decodificar ranura %s: %w", nombre, err)
	}
	return m, nil
}
