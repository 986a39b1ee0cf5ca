package memstore_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/contable-pro/internal/domain/store"
	"github.com/tu-usuario/contable-pro/internal/infrastructure/memstore"
)

func TestMemoria_RanuraAusenteDevuelveNil(t *testing.T) {
	m := memstore.New()
	doc, err := m.Get(context.Background(), "no_existe")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoria_SetGet(t *testing.T) {
	m := memstore.New()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "docs", json.RawMessage(`[{"id":"a"}]`)))
	doc, err := m.Get(ctx, "docs")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(doc))
}

// El almacén copia los bytes: mutar lo devuelto no toca la ranura.
func TestMemoria_GetDevuelveCopia(t *testing.T) {
	m := memstore.New()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "x", json.RawMessage(`"abc"`)))

	doc, _ := m.Get(ctx, "x")
	doc[1] = 'z'

	otra, _ := m.Get(ctx, "x")
	assert.Equal(t, `"abc"`, string(otra))
}

func TestMemoria_ApplyEscribeTodoElLote(t *testing.T) {
	m := memstore.New()
	ctx := context.Background()

	err := m.Apply(ctx, store.Batch{
		"a": json.RawMessage(`1`),
		"b": json.RawMessage(`2`),
	})
	require.NoError(t, err)

	a, _ := m.Get(ctx, "a")
	b, _ := m.Get(ctx, "b")
	assert.Equal(t, "1", string(a))
	assert.Equal(t, "2", string(b))
}
