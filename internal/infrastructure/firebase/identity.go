package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ repository.IdentityProvider = (*Identity)(nil)

// Identity implementa repository.IdentityProvider sobre Firebase Authentication.
type Identity struct {
	app *App
}

// NewIdentity construye el adaptador.
func NewIdentity(app *App) *Identity {
	return &Identity{app: app}
}

func (i *Identity) client(ctx context.Context) (*auth.Client, error) {
	c, _, err := i.app.clients(ctx)
	if err != nil {
		return nil, domain.Upstream("firebase auth", err)
	}
	return c, nil
}

// VerifyToken verifica un ID token de Firebase y extrae sub y email.
func (i *Identity) VerifyToken(ctx context.Context, token string) (*entity.Credential, error) {
	c, err := i.client(ctx)
	if err != nil {
		return nil, err
	}
	tok, err := c.VerifyIDToken(ctx, token)
	if err != nil {
		switch {
		case auth.IsIDTokenExpired(err):
			return nil, fmt.Errorf("%w: %v", domain.ErrTokenExpired, err)
		case auth.IsIDTokenInvalid(err), auth.IsIDTokenRevoked(err):
			return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
		default:
			return nil, domain.Upstream("verificar token", err)
		}
	}
	email, _ := tok.Claims["email"].(string)
	return &entity.Credential{UID: tok.UID, Email: email}, nil
}

// CreateAccount crea el usuario en Firebase Auth con emailVerified=false.
func (i *Identity) CreateAccount(ctx context.Context, in entity.NewAccount) (string, error) {
	c, err := i.client(ctx)
	if err != nil {
		return "", err
	}
	params := (&auth.UserToCreate{}).
		Email(in.Email).
		Password(in.Password).
		EmailVerified(false)
	if in.DisplayName != "" {
		params = params.DisplayName(in.DisplayName)
	}
	rec, err := c.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", domain.ErrEmailAlreadyExists
		}
		return "", domain.Upstream("crear usuario en auth", err)
	}
	return rec.UID, nil
}

// UpdateDisplayName actualiza el displayName de la cuenta.
func (i *Identity) UpdateDisplayName(ctx context.Context, uid, name string) error {
	c, err := i.client(ctx)
	if err != nil {
		return err
	}
	if _, err := c.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).DisplayName(name)); err != nil {
		return mapUserErr("actualizar usuario en auth", err)
	}
	return nil
}

// DeleteAccount elimina la cuenta de Firebase Auth.
func (i *Identity) DeleteAccount(ctx context.Context, uid string) error {
	c, err := i.client(ctx)
	if err != nil {
		return err
	}
	if err := c.DeleteUser(ctx, uid); err != nil {
		return mapUserErr("eliminar usuario en auth", err)
	}
	return nil
}

func mapUserErr(op string, err error) error {
	if auth.IsUserNotFound(err) {
		return domain.ErrUserNotFound
	}
	return domain.Upstream(op, err)
}
