package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/usecase"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/caja-api/internal/infrastructure/rtdb"
)

func TestProductUseCase_CreateYList(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(rtdb.NewProductRepository(memory.NewStore()))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	out, err := uc.Create(ctx, dto.CreateProductRequest{
		Nombre:       "Gaseosa",
		Precio:       dec("3500"),
		Stock:        dec("24"),
		CodigoBarras: "7701234567890",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 24, out.Stock)

	list, err = uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, out.ID, list[0].ID)
	assert.Equal(t, "7701234567890", list[0].CodigoBarras)
}

func TestProductUseCase_CamposObligatorios(t *testing.T) {
	uc := usecase.NewProductUseCase(rtdb.NewProductRepository(memory.NewStore()))
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Nombre: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_StockFueraDeRango(t *testing.T) {
	uc := usecase.NewProductUseCase(rtdb.NewProductRepository(memory.NewStore()))
	for _, stock := range []string{"18446744073709551615", "1e20", "2147483648", "-1", "2.5"} {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{Nombre: "X", Precio: dec("1"), Stock: dec(stock)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, stock)
	}

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Nombre: "X", Precio: dec("1"), Stock: dec("2147483647")})
	require.NoError(t, err)
	assert.Equal(t, dto.MaxStock, out.Stock)
}
