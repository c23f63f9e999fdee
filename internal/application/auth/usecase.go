// Package auth verifica credenciales contra el proveedor de identidad.
package auth

import (
	"context"
	"errors"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/pkg/logger"
)

// Motivos internos de una verificación fallida (solo para logs).
const (
	ReasonEmpty    = "empty"
	ReasonExpired  = "expired"
	ReasonInvalid  = "invalid"
	ReasonUpstream = "upstream"
)

// AuthUseCase verificación de tokens, perfil verificado y login con password.
type AuthUseCase struct {
	idp   repository.IdentityProvider
	users repository.UserRepository
	log   *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(idp repository.IdentityProvider, users repository.UserRepository, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{idp: idp, users: users, log: log.Component("auth")}
}

// Verify hace un único intento de verificación. Cualquier fallo se devuelve como
// domain.ErrInvalidCredential; el motivo concreto solo queda en el log.
func (uc *AuthUseCase) Verify(ctx context.Context, token string) (*entity.Credential, error) {
	if token == "" {
		uc.log.Debug().Str("reason", ReasonEmpty).Msg("verificación rechazada")
		return nil, domain.ErrInvalidCredential
	}
	cred, err := uc.idp.VerifyToken(ctx, token)
	if err != nil {
		reason := Classify(err)
		ev := uc.log.Info()
		if reason == ReasonUpstream {
			ev = uc.log.Warn()
		}
		ev.Str("reason", reason).Err(err).Msg("verificación rechazada")
		return nil, domain.ErrInvalidCredential
	}
	if cred == nil || cred.UID == "" {
		uc.log.Info().Str("reason", ReasonInvalid).Msg("token sin sujeto")
		return nil, domain.ErrInvalidCredential
	}
	return cred, nil
}

// Classify devuelve el motivo interno de un error de verificación.
func Classify(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return ReasonExpired
	case errors.Is(err, domain.ErrTokenInvalid):
		return ReasonInvalid
	default:
		return ReasonUpstream
	}
}

// VerifyProfile verifica el token y completa la identidad con el perfil del directorio.
// Sin registro en el directorio (o si no se puede leer), rol vale cajero y nombre/telefono quedan en null.
func (uc *AuthUseCase) VerifyProfile(ctx context.Context, token string) (*dto.VerifiedUser, error) {
	cred, err := uc.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	return uc.profile(ctx, cred)
}

// Login autentica con email y password. Solo lo soportan proveedores con PasswordSignIn.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	signer, ok := uc.idp.(repository.PasswordSignIn)
	if !ok {
		return nil, domain.ErrNotSupported
	}
	token, cred, err := signer.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	user, err := uc.profile(ctx, cred)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Message: "Inicio de sesión exitoso", Token: token, User: *user}, nil
}

func (uc *AuthUseCase) profile(ctx context.Context, cred *entity.Credential) (*dto.VerifiedUser, error) {
	out := &dto.VerifiedUser{UID: cred.UID, Email: cred.Email, Rol: entity.RoleCajero}
	u, err := uc.users.GetByID(ctx, cred.UID)
	if err != nil {
		// el token ya es válido: sin directorio se responde con el perfil por defecto
		uc.log.Warn().Err(err).Str("uid", cred.UID).Msg("perfil no disponible")
		return out, nil
	}
	if u == nil {
		return out, nil
	}
	out.Nombre = &u.Nombre
	if u.Telefono != "" {
		out.Telefono = &u.Telefono
	}
	if u.Rol != "" {
		out.Rol = u.Rol
	}
	return out, nil
}
