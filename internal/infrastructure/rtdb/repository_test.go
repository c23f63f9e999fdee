package rtdb_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/caja-api/internal/infrastructure/rtdb"
)

func TestUserRepo_GuardarLeerActualizar(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := rtdb.NewUserRepository(store)

	u := &entity.User{
		UID:           "uid-1",
		Email:         "a@b.com",
		Nombre:        "Ana",
		Rol:           entity.RoleCajero,
		FechaRegistro: entity.NewFecha(time.Now()),
		Activo:        true,
	}
	require.NoError(t, repo.Save(ctx, u))

	// El registro queda en usuarios/{uid}
	raw, err := store.Get(ctx, "usuarios/uid-1")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"rol":"cajero"`)

	rol := entity.RoleAdmin
	require.NoError(t, repo.Update(ctx, "uid-1", entity.UserChanges{Rol: &rol}))

	got, err := repo.GetByID(ctx, "uid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.RoleAdmin, got.Rol)
	assert.Equal(t, "Ana", got.Nombre, "los campos no enviados no cambian")
	assert.True(t, got.Activo)
}

func TestUserRepo_Inexistente(t *testing.T) {
	repo := rtdb.NewUserRepository(memory.NewStore())
	got, err := repo.GetByID(context.Background(), "nadie")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepo_ListaVaciaNoEsNil(t *testing.T) {
	list, err := rtdb.NewUserRepository(memory.NewStore()).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSaleRepo_CreateListGet(t *testing.T) {
	ctx := context.Background()
	repo := rtdb.NewSaleRepository(memory.NewStore())

	first := &entity.Sale{
		Productos:  []entity.SaleItem{{Nombre: "Pan", Cantidad: decimal.NewFromInt(2), Precio: decimal.NewFromInt(500)}},
		Total:      decimal.NewFromInt(1000),
		MetodoPago: "efectivo",
		UsuarioID:  "uid-1",
		Fecha:      entity.NewFecha(time.Now()),
	}
	id1, err := repo.Create(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, id1, first.ID)

	id2, err := repo.Create(ctx, &entity.Sale{Total: decimal.Zero, MetodoPago: "tarjeta"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, id1, list[0].ID, "orden de inserción")
	assert.Equal(t, id2, list[1].ID)
	assert.True(t, list[0].Total.Equal(decimal.NewFromInt(1000)))

	got, err := repo.GetByID(ctx, id1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "uid-1", got.UsuarioID)
	require.Len(t, got.Productos, 1)
	assert.Equal(t, "Pan", got.Productos[0].Nombre)

	missing, err := repo.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_ListaVaciaYCreate(t *testing.T) {
	ctx := context.Background()
	repo := rtdb.NewProductRepository(memory.NewStore())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	p := &entity.Product{Nombre: "Leche", Precio: decimal.RequireFromString("3200.5"), Stock: 10}
	id, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, 10, list[0].Stock)
}

// brokenStore falla en todas las operaciones.
type brokenStore struct{ err error }

func (b *brokenStore) Get(context.Context, string) (json.RawMessage, error) { return nil, b.err }
func (b *brokenStore) Children(context.Context, string) (map[string]json.RawMessage, error) {
	return nil, b.err
}
func (b *brokenStore) Set(context.Context, string, any) error { return b.err }
func (b *brokenStore) Update(context.Context, string, map[string]any) error { return b.err }
func (b *brokenStore) Push(context.Context, string, any) (string, error) { return "", b.err }
func (b *brokenStore) Delete(context.Context, string) error { return b.err }

var errBackend = errors.New("permission denied")

func TestRepos_ErroresDelAlmacenSonUpstream(t *testing.T) {
	ctx := context.Background()
	store := &brokenStore{err: errBackend}

	_, err := rtdb.NewProductRepository(store).List(ctx)
	var up *domain.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, "permission denied", up.Error())

	_, err = rtdb.NewSaleRepository(store).Create(ctx, &entity.Sale{})
	assert.ErrorAs(t, err, &up)

	err = rtdb.NewUserRepository(store).Save(ctx, &entity.User{UID: "x"})
	assert.ErrorAs(t, err, &up)
}
