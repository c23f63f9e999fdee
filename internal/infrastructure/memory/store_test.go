package memory_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/infrastructure/localauth"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
)

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	raw, err := s.Get(ctx, "usuarios/u1")
	require.NoError(t, err)
	assert.Nil(t, raw, "documento inexistente devuelve nil")

	require.NoError(t, s.Set(ctx, "usuarios/u1", map[string]any{"nombre": "Ana"}))
	raw, err = s.Get(ctx, "usuarios/u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"nombre":"Ana"}`, string(raw))

	require.NoError(t, s.Delete(ctx, "usuarios/u1"))
	raw, err = s.Get(ctx, "usuarios/u1")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestStore_UpdateFusionaCampos(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Set(ctx, "usuarios/u1", map[string]any{"nombre": "Ana", "rol": "cajero"}))

	require.NoError(t, s.Update(ctx, "usuarios/u1", map[string]any{"rol": "admin"}))

	raw, err := s.Get(ctx, "usuarios/u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"nombre":"Ana","rol":"admin"}`, string(raw))
}

func TestStore_PushGeneraClavesOrdenadas(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	var keys []string
	for i := 0; i < 5; i++ {
		k, err := s.Push(ctx, "ventas", map[string]int{"n": i})
		require.NoError(t, err)
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i], "las claves deben crecer con el tiempo")
	}

	children, err := s.Children(ctx, "ventas")
	require.NoError(t, err)
	assert.Len(t, children, 5)

	var doc map[string]int
	require.NoError(t, json.Unmarshal(children[keys[2]], &doc))
	assert.Equal(t, 2, doc["n"])
}

func TestStore_ChildrenDeColeccionVacia(t *testing.T) {
	children, err := memory.NewStore().Children(context.Background(), "productos")
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestStore_RutaInvalida(t *testing.T) {
	s := memory.NewStore()
	assert.Error(t, s.Set(context.Background(), "usuarios", 1))
	assert.Error(t, s.Set(context.Background(), "a/b/c", 1))
}

func TestAccounts_EmailDuplicadoYBorrado(t *testing.T) {
	ctx := context.Background()
	a := memory.NewAccounts()

	require.NoError(t, a.Create(ctx, &localauth.Account{UID: "u1", Email: "a@b.com"}))
	assert.ErrorIs(t, a.Create(ctx, &localauth.Account{UID: "u2", Email: "a@b.com"}), domain.ErrEmailAlreadyExists)

	acc, err := a.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, "u1", acc.UID)

	require.NoError(t, a.UpdateDisplayName(ctx, "u1", "Ana"))
	acc, _ = a.GetByID(ctx, "u1")
	assert.Equal(t, "Ana", acc.DisplayName)

	require.NoError(t, a.Delete(ctx, "u1"))
	assert.ErrorIs(t, a.Delete(ctx, "u1"), domain.ErrUserNotFound)
	assert.ErrorIs(t, a.UpdateDisplayName(ctx, "u1", "x"), domain.ErrUserNotFound)

	acc, err = a.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Nil(t, acc)
}
