package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/usecase"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/infrastructure/localauth"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/caja-api/internal/infrastructure/rtdb"
	"github.com/jhoicas/caja-api/pkg/jwt"
)

func newDirectory(t *testing.T) (*usecase.UserUseCase, *localauth.Provider, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	idp := localauth.New(memory.NewAccounts(), localauth.Config{Secret: "s", Issuer: "test", ExpMinutes: 60})
	return usecase.NewUserUseCase(idp, rtdb.NewUserRepository(store), nil), idp, store
}

func ptr(s string) *string { return &s }

func TestUserUseCase_CreateRolPorDefecto(t *testing.T) {
	uc, _, _ := newDirectory(t)
	out, err := uc.Create(context.Background(), dto.RegisterRequest{Email: "a@b.com", Password: "secret1", Nombre: "Ana"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.UID)
	assert.Equal(t, entity.RoleCajero, out.Rol)
	assert.True(t, out.Activo)
	assert.False(t, out.FechaRegistro.IsZero())
}

func TestUserUseCase_EmailDuplicadoNoEscribeDirectorio(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newDirectory(t)
	_, err := uc.Create(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret1", Nombre: "Ana"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "otro123", Nombre: "Otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].Nombre)
}

func TestUserUseCase_UpdateParcial(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newDirectory(t)
	created, err := uc.Create(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret1", Nombre: "Ana", Telefono: "300"})
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.UID, dto.UpdateUserRequest{Rol: ptr(entity.RoleAdmin)})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Rol)

	got, err := uc.Get(ctx, created.UID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, got.Rol)
	assert.Equal(t, "Ana", got.Nombre)
	assert.Equal(t, "300", got.Telefono)
	assert.Equal(t, created.FechaRegistro.String(), got.FechaRegistro.String())
}

func TestUserUseCase_UpdateNombreCambiaDisplayName(t *testing.T) {
	ctx := context.Background()
	uc, idp, _ := newDirectory(t)
	created, err := uc.Create(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret1", Nombre: "Ana"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.UID, dto.UpdateUserRequest{Nombre: ptr("Ana María")})
	require.NoError(t, err)

	token, _, err := idp.SignIn(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	claims, err := jwt.Parse("s", "test", token)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", claims.Name)

	got, err := uc.Get(ctx, created.UID)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got.Nombre)
}

func TestUserUseCase_UpdateVacioDevuelveActual(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newDirectory(t)
	created, err := uc.Create(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret1", Nombre: "Ana"})
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.UID, dto.UpdateUserRequest{Rol: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, created.UID, out.UID)
	assert.Equal(t, entity.RoleCajero, out.Rol)
	assert.Equal(t, created.FechaRegistro.String(), out.FechaRegistro.String())
}

func TestUserUseCase_UidInexistente(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newDirectory(t)

	_, err := uc.Get(ctx, "nadie")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Update(ctx, "nadie", dto.UpdateUserRequest{Rol: ptr(entity.RoleAdmin)})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Role(ctx, "nadie")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, "nadie"), domain.ErrUserNotFound)
}

func TestUserUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	uc, idp, store := newDirectory(t)
	created, err := uc.Create(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret1", Nombre: "Ana"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.UID))

	raw, err := store.Get(ctx, rtdb.Child(rtdb.PathUsuarios, created.UID))
	require.NoError(t, err)
	assert.Nil(t, raw)

	_, _, err = idp.SignIn(ctx, "a@b.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// failingIdentity crea cuentas pero falla con un error del proveedor en lo demás.
type failingIdentity struct{ *localauth.Provider }

func (f *failingIdentity) UpdateDisplayName(context.Context, string, string) error {
	return domain.Upstream("actualizar cuenta", errors.New("quota exceeded"))
}

func TestUserUseCase_UpdateErrorDelProveedor(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	base := localauth.New(memory.NewAccounts(), localauth.Config{Secret: "s", Issuer: "test", ExpMinutes: 60})
	uc := usecase.NewUserUseCase(&failingIdentity{Provider: base}, rtdb.NewUserRepository(store), nil)

	created, err := uc.Create(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret1", Nombre: "Ana"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.UID, dto.UpdateUserRequest{Nombre: ptr("Otra")})
	var up *domain.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, "quota exceeded", up.Error())
}
