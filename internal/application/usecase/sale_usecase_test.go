package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/usecase"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/caja-api/internal/infrastructure/rtdb"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// fakeReceipts registra los argumentos recibidos.
type fakeReceipts struct {
	sale   *entity.Sale
	cajero *entity.User
}

func (f *fakeReceipts) GenerateSaleReceipt(sale *entity.Sale, cajero *entity.User) ([]byte, error) {
	f.sale, f.cajero = sale, cajero
	return []byte("%PDF-fake"), nil
}

func sampleSale() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		Productos: []dto.SaleItemRequest{
			{Nombre: "Café", Cantidad: dec("2"), Precio: dec("2500")},
			{Nombre: "Pan", Cantidad: dec("1"), Precio: dec("1200.50")},
		},
		Total:      dec("6200.50"),
		MetodoPago: "efectivo",
	}
}

func TestSaleUseCase_CreateFijaUsuarioYFecha(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewSaleUseCase(rtdb.NewSaleRepository(store), rtdb.NewUserRepository(store), nil)

	before := time.Now().Truncate(time.Second)
	out, err := uc.Create(ctx, "uid-cajero", sampleSale())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "uid-cajero", out.UsuarioID)
	assert.False(t, out.Fecha.Before(before))
	assert.True(t, out.Total.Equal(decimal.RequireFromString("6200.5")))
	require.Len(t, out.Productos, 2)
	assert.Equal(t, "Café", out.Productos[0].Nombre)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, out.ID, list[0].ID)
}

func TestSaleUseCase_ListaVacia(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewSaleUseCase(rtdb.NewSaleRepository(store), rtdb.NewUserRepository(store), nil)
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSaleUseCase_Receipt(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	users := rtdb.NewUserRepository(store)
	require.NoError(t, users.Save(ctx, &entity.User{UID: "uid-cajero", Nombre: "Ana", Rol: entity.RoleCajero, Activo: true}))
	gen := &fakeReceipts{}
	uc := usecase.NewSaleUseCase(rtdb.NewSaleRepository(store), users, gen)

	created, err := uc.Create(ctx, "uid-cajero", sampleSale())
	require.NoError(t, err)

	pdf, name, err := uc.Receipt(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Equal(t, "recibo-"+created.ID+".pdf", name)
	require.NotNil(t, gen.cajero)
	assert.Equal(t, "Ana", gen.cajero.Nombre)
	assert.Equal(t, created.ID, gen.sale.ID)

	_, _, err = uc.Receipt(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleUseCase_ReceiptSinGenerador(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewSaleUseCase(rtdb.NewSaleRepository(store), rtdb.NewUserRepository(store), nil)
	_, _, err := uc.Receipt(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotSupported)
}
