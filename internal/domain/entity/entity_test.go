package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

func TestFecha_SerializaConFormatoDelAlmacen(t *testing.T) {
	f := entity.NewFecha(time.Date(2025, 3, 9, 14, 5, 7, 999, time.Local))

	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-09 14:05:07"`, string(b))

	var back entity.Fecha
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(f.Time))
}

func TestFecha_AceptaRFC3339YNulos(t *testing.T) {
	var f entity.Fecha
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-09T14:05:07Z"`), &f))
	assert.Equal(t, 2025, f.Year())

	require.NoError(t, json.Unmarshal([]byte(`null`), &f))
	assert.True(t, f.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &f))
	assert.True(t, f.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"09/03/2025"`), &f))

	b, err := json.Marshal(entity.Fecha{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleAdmin))
	assert.True(t, entity.ValidRole(entity.RoleCajero))
	assert.True(t, entity.ValidRole(entity.RoleVendedor))
	assert.False(t, entity.ValidRole("bodeguero"))
	assert.False(t, entity.ValidRole(""))
}

func TestUserChanges_SoloCamposPresentes(t *testing.T) {
	rol := entity.RoleAdmin
	c := entity.UserChanges{Rol: &rol}

	assert.False(t, c.Empty())
	assert.Equal(t, map[string]any{"rol": "admin"}, c.Fields())

	u := entity.User{Nombre: "Ana", Telefono: "555", Rol: entity.RoleCajero}
	c.Apply(&u)
	assert.Equal(t, "admin", u.Rol)
	assert.Equal(t, "Ana", u.Nombre)
	assert.Equal(t, "555", u.Telefono)

	assert.True(t, entity.UserChanges{}.Empty())
}

func TestSale_MontosComoNumerosJSON(t *testing.T) {
	s := entity.Sale{
		Productos: []entity.SaleItem{{
			Nombre:   "Café",
			Cantidad: decimal.NewFromInt(2),
			Precio:   decimal.RequireFromString("1500.50"),
		}},
		Total:      decimal.RequireFromString("3001"),
		MetodoPago: "efectivo",
	}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"precio":1500.5`)
	assert.Contains(t, string(b), `"total":3001`)
	assert.NotContains(t, string(b), `"id"`)

	assert.True(t, s.Productos[0].Subtotal().Equal(decimal.RequireFromString("3001")))
}
