// Package memstore implementa el puerto del almacén de ranuras en memoria.
// Sirve para tests y para el modo development sin base de datos.
package memstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/tu-usuario/contable-pro/internal/domain/store"
)

var _ store.Store = (*Memoria)(nil)

// Memoria almacén de ranuras respaldado por un mapa. El motor asume un solo
// escritor, pero el mutex protege contra lecturas concurrentes de handlers.
type Memoria struct {
	mu    sync.RWMutex
	slots map[string]json.RawMessage
}

// New crea un almacén vacío.
func New() *Memoria {
	return &Memoria{slots: make(map[string]json.RawMessage)}
}

// Get devuelve una copia del documento o nil si la ranura no existe.
func (m *Memoria) Get(_ context.Context, nombre string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.slots[nombre]
	if !ok {
		return nil, nil
	}
	out := make(json.RawMessage, len(doc))
	copy(out, doc)
	return out, nil
}

// Set escribe el documento completo de la ranura.
func (m *Memoria) Set(_ context.Context, nombre string, doc json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.escribir(nombre, doc)
	return nil
}

// Apply escribe todas las ranuras del lote bajo el mismo candado: o se ven
// todas las escrituras o ninguna.
func (m *Memoria) Apply(_ context.Context, lote store.Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for nombre, doc := range lote {
		m.escribir(nombre, doc)
	}
	return nil
}

func (m *Memoria) escribir(nombre string, doc json.RawMessage) {
	propia := make(json.RawMessage, len(doc))
	copy(propia, doc)
	m.slots[nombre] = propia
}
