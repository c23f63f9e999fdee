package repository

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// IdentityProvider puerto hacia el proveedor de identidad externo (Firebase Auth en producción).
//
// Contrato de errores:
//   - VerifyToken: domain.ErrTokenExpired / domain.ErrTokenInvalid envueltos, o *domain.UpstreamError.
//   - CreateAccount: domain.ErrEmailAlreadyExists o *domain.UpstreamError.
//   - UpdateDisplayName, DeleteAccount: domain.ErrUserNotFound o *domain.UpstreamError.
type IdentityProvider interface {
	VerifyToken(ctx context.Context, token string) (*entity.Credential, error)
	CreateAccount(ctx context.Context, in entity.NewAccount) (uid string, err error)
	UpdateDisplayName(ctx context.Context, uid, name string) error
	DeleteAccount(ctx context.Context, uid string) error
}

// PasswordSignIn lo implementan los proveedores que pueden emitir tokens a partir de email y password.
type PasswordSignIn interface {
	SignIn(ctx context.Context, email, password string) (token string, cred *entity.Credential, err error)
}
