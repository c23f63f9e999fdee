package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/infrastructure/pdf"
)

func TestGenerateSaleReceipt_DevuelvePDF(t *testing.T) {
	g := pdf.NewReceiptGenerator("Caja Demo")
	sale := &entity.Sale{
		ID: "0192f0c4-7a1e-7b3c-9d2e-5f6a7b8c9d0e",
		Productos: []entity.SaleItem{
			{Nombre: "Café", Cantidad: decimal.NewFromInt(2), Precio: decimal.NewFromInt(2500)},
			{Nombre: "Queso", Cantidad: decimal.RequireFromString("0.5"), Precio: decimal.NewFromInt(18000)},
		},
		Total:      decimal.NewFromInt(14000),
		MetodoPago: "efectivo",
		UsuarioID:  "uid-1",
		Fecha:      entity.NewFecha(time.Now()),
	}

	out, err := g.GenerateSaleReceipt(sale, &entity.User{UID: "uid-1", Nombre: "Ana"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSaleReceipt_SinCajeroNiProductos(t *testing.T) {
	g := pdf.NewReceiptGenerator("Caja Demo")
	out, err := g.GenerateSaleReceipt(&entity.Sale{MetodoPago: "tarjeta"}, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMoney(t *testing.T) {
	g := pdf.NewReceiptGenerator("x")
	assert.Contains(t, g.Money(decimal.RequireFromString("1234567.5")), "1.234.567")
	assert.Equal(t, "$0", g.Money(decimal.Zero))
	assert.Equal(t, "$500", g.Money(decimal.NewFromInt(500)))
}
