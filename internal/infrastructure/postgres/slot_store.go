package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/contable-pro/internal/domain/store"
)

var _ store.Store = (*SlotStore)(nil)

// SlotStore implementación del puerto del almacén de ranuras sobre una única
// tabla jsonb. El documento completo de cada ranura se lee y escribe entero:
// el contrato del almacén no ofrece consulta parcial y el motor filtra en
// memoria.
type SlotStore struct {
	pool *pgxpool.Pool
}

// NewSlotStore construye el adaptador de persistencia de ranuras.
func NewSlotStore(pool *pgxpool.Pool) *SlotStore {
	return &SlotStore{pool: pool}
}

// EnsureSchema crea la tabla de ranuras si no existe.
func (s *SlotStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS slots (
			nombre      TEXT PRIMARY KEY,
			doc         JSONB NOT NULL,
			actualizado TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("crear esquema slots: %w", err)
	}
	return nil
}

// Get lee el documento completo de la ranura; nil si no existe.
func (s *SlotStore) Get(ctx context.Context, nombre string) (json.RawMessage, error) {
	var doc json.RawMessage
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM slots WHERE nombre = $1`, nombre,
	).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot %s: %w", nombre, err)
	}
	return doc, nil
}

// Set escribe (upsert) el documento completo de la ranura.
func (s *SlotStore) Set(ctx context.Context, nombre string, doc json.RawMessage) error {
	_, err := s.pool.Exec(ctx, upsertSlot, nombre, doc, time.Now())
	if err != nil {
		return fmt.Errorf("set slot %s: %w", nombre, err)
	}
	return nil
}

// Apply escribe todas las ranuras del lote dentro de una transacción: el
// sobre que garantiza que un guardado de documento y sus movimientos
// compensatorios llega completo o no llega.
func (s *SlotStore) Apply(ctx context.Context, lote store.Batch) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ahora := time.Now()
	for nombre, doc := range lote {
		if _, err := tx.Exec(ctx, upsertSlot, nombre, doc, ahora); err != nil {
			return fmt.Errorf("apply slot %s: %w", nombre, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

const upsertSlot = `
	INSERT INTO slots (nombre, doc, actualizado)
	VALUES ($1, $2, $3)
	ON CONFLICT (nombre) DO UPDATE SET doc = EXCLUDED.doc, actualizado = EXCLUDED.actualizado`
