// Package localauth es un proveedor de identidad para desarrollo: cuentas con password bcrypt
// y tokens HS256 firmados con JWT_SECRET. Cumple el mismo puerto que Firebase Auth.
package localauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/pkg/jwt"
)

var (
	_ repository.IdentityProvider = (*Provider)(nil)
	_ repository.PasswordSignIn   = (*Provider)(nil)
)

// Account cuenta del proveedor local.
type Account struct {
	UID          string
	Email        string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
}

// AccountStore persistencia de cuentas (PostgreSQL o memoria).
//
// Create devuelve domain.ErrEmailAlreadyExists si el email ya existe; UpdateDisplayName y Delete
// devuelven domain.ErrUserNotFound si el UID no existe; los Get devuelven nil, nil.
type AccountStore interface {
	Create(ctx context.Context, a *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, uid string) (*Account, error)
	UpdateDisplayName(ctx context.Context, uid, name string) error
	Delete(ctx context.Context, uid string) error
}

// Config firma de tokens.
type Config struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// Provider implementa repository.IdentityProvider y repository.PasswordSignIn.
type Provider struct {
	accounts AccountStore
	cfg      Config
}

// New construye el proveedor local.
func New(accounts AccountStore, cfg Config) *Provider {
	return &Provider{accounts: accounts, cfg: cfg}
}

// NormalizeEmail minúsculas y sin espacios, como hace Firebase Auth.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// VerifyToken valida firma y vencimiento del token.
func (p *Provider) VerifyToken(_ context.Context, token string) (*entity.Credential, error) {
	claims, err := jwt.Parse(p.cfg.Secret, p.cfg.Issuer, token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, fmt.Errorf("%w: %v", domain.ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	return &entity.Credential{UID: claims.Subject, Email: claims.Email}, nil
}

// CreateAccount crea la cuenta con el password hasheado.
func (p *Provider) CreateAccount(ctx context.Context, in entity.NewAccount) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	acc := &Account{
		UID:          uuid.NewString(),
		Email:        NormalizeEmail(in.Email),
		PasswordHash: string(hash),
		DisplayName:  in.DisplayName,
		CreatedAt:    time.Now(),
	}
	if err := p.accounts.Create(ctx, acc); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return "", domain.ErrEmailAlreadyExists
		}
		return "", domain.Upstream("crear cuenta", err)
	}
	return acc.UID, nil
}

// UpdateDisplayName cambia el nombre visible.
func (p *Provider) UpdateDisplayName(ctx context.Context, uid, name string) error {
	return p.wrap("actualizar cuenta", p.accounts.UpdateDisplayName(ctx, uid, name))
}

// DeleteAccount elimina la cuenta.
func (p *Provider) DeleteAccount(ctx context.Context, uid string) error {
	return p.wrap("eliminar cuenta", p.accounts.Delete(ctx, uid))
}

// SignIn verifica email/password y emite un token.
func (p *Provider) SignIn(ctx context.Context, email, password string) (string, *entity.Credential, error) {
	acc, err := p.accounts.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", nil, domain.Upstream("buscar cuenta", err)
	}
	if acc == nil {
		return "", nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	token, err := p.IssueToken(acc)
	if err != nil {
		return "", nil, err
	}
	return token, &entity.Credential{UID: acc.UID, Email: acc.Email}, nil
}

// IssueToken firma un token para la cuenta.
func (p *Provider) IssueToken(acc *Account) (string, error) {
	return jwt.Generate(p.cfg.Secret, acc.UID, acc.Email, acc.DisplayName, p.cfg.Issuer, p.cfg.ExpMinutes)
}

func (p *Provider) wrap(op string, err error) error {
	if err == nil || errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return domain.Upstream(op, err)
}
