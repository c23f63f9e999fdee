package localauth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/infrastructure/localauth"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/caja-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newProvider() *localauth.Provider {
	return localauth.New(memory.NewAccounts(), localauth.Config{Secret: testSecret, Issuer: "test", ExpMinutes: 60})
}

func TestProvider_CrearYAutenticar(t *testing.T) {
	ctx := context.Background()
	p := newProvider()

	uid, err := p.CreateAccount(ctx, entity.NewAccount{Email: " Ana@B.com ", Password: "secret1", DisplayName: "Ana"})
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	token, cred, err := p.SignIn(ctx, "ana@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, uid, cred.UID)
	assert.Equal(t, "ana@b.com", cred.Email)

	verified, err := p.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uid, verified.UID)
	assert.Equal(t, "ana@b.com", verified.Email)
}

func TestProvider_EmailDuplicado(t *testing.T) {
	ctx := context.Background()
	p := newProvider()

	_, err := p.CreateAccount(ctx, entity.NewAccount{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = p.CreateAccount(ctx, entity.NewAccount{Email: "A@B.COM", Password: "otro123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestProvider_PasswordIncorrecto(t *testing.T) {
	ctx := context.Background()
	p := newProvider()
	_, err := p.CreateAccount(ctx, entity.NewAccount{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = p.SignIn(ctx, "a@b.com", "incorrecto")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = p.SignIn(ctx, "nadie@b.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestProvider_VerifyToken_DistingueExpiradoDeInvalido(t *testing.T) {
	p := newProvider()

	expired, err := jwt.Generate(testSecret, "uid-1", "a@b.com", "", "test", -1)
	require.NoError(t, err)
	_, err = p.VerifyToken(context.Background(), expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	_, err = p.VerifyToken(context.Background(), "token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	foreign, err := jwt.Generate("otro-secret", "uid-1", "a@b.com", "", "test", 60)
	require.NoError(t, err)
	_, err = p.VerifyToken(context.Background(), foreign)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	otherIssuer, err := jwt.Generate(testSecret, "uid-1", "a@b.com", "", "otro-despliegue", 60)
	require.NoError(t, err)
	_, err = p.VerifyToken(context.Background(), otherIssuer)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestProvider_UpdateYDeleteDeCuentaInexistente(t *testing.T) {
	ctx := context.Background()
	p := newProvider()

	assert.ErrorIs(t, p.UpdateDisplayName(ctx, "nadie", "x"), domain.ErrUserNotFound)
	assert.ErrorIs(t, p.DeleteAccount(ctx, "nadie"), domain.ErrUserNotFound)

	uid, err := p.CreateAccount(ctx, entity.NewAccount{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NoError(t, p.UpdateDisplayName(ctx, uid, "Ana María"))
	assert.NoError(t, p.DeleteAccount(ctx, uid))

	_, _, err = p.SignIn(ctx, "a@b.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
