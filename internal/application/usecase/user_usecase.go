package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/pkg/logger"
)

// UserUseCase directorio de usuarios: cuenta en el proveedor de identidad más perfil en usuarios/{uid}.
// Las escrituras en ambos almacenes no son atómicas y no se compensan.
type UserUseCase struct {
	idp  repository.IdentityProvider
	repo repository.UserRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(idp repository.IdentityProvider, repo repository.UserRepository, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{idp: idp, repo: repo, log: log.Component("usuarios"), now: time.Now}
}

// Create crea la cuenta y luego el perfil. Si el email ya existe devuelve
// domain.ErrEmailAlreadyExists sin escribir en el directorio.
func (uc *UserUseCase) Create(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	rol := in.Rol
	if rol == "" {
		rol = entity.RoleCajero
	}
	uid, err := uc.idp.CreateAccount(ctx, entity.NewAccount{
		Email:       in.Email,
		Password:    in.Password,
		DisplayName: in.Nombre,
	})
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		UID:           uid,
		Email:         in.Email,
		Nombre:        in.Nombre,
		Telefono:      in.Telefono,
		Rol:           rol,
		FechaRegistro: entity.NewFecha(uc.now()),
		Activo:        true,
	}
	if err := uc.repo.Save(ctx, user); err != nil {
		uc.log.Error().Err(err).Str("uid", uid).Msg("cuenta creada sin perfil en el directorio")
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Get devuelve el perfil o domain.ErrUserNotFound.
func (uc *UserUseCase) Get(ctx context.Context, uid string) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, uid)
	if err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Role devuelve el rol del usuario en el directorio.
func (uc *UserUseCase) Role(ctx context.Context, uid string) (string, error) {
	user, err := uc.find(ctx, uid)
	if err != nil {
		return "", err
	}
	return user.Rol, nil
}

// List devuelve todos los perfiles ordenados por UID; nunca nil.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

// Update aplica solo los campos presentes y devuelve el registro resultante.
// Si cambia el nombre también se actualiza el displayName de la cuenta.
func (uc *UserUseCase) Update(ctx context.Context, uid string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	current, err := uc.find(ctx, uid)
	if err != nil {
		return nil, err
	}
	changes := in.Changes()
	if changes.Empty() {
		out := dto.NewUserResponse(current)
		return &out, nil
	}
	if changes.Nombre != nil {
		if err := uc.idp.UpdateDisplayName(ctx, uid, *changes.Nombre); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(ctx, uid, changes); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// borrado concurrente entre la escritura y la lectura
		changes.Apply(current)
		updated = current
	}
	out := dto.NewUserResponse(updated)
	return &out, nil
}

// Delete elimina primero la cuenta y después el perfil.
// Devuelve domain.ErrUserNotFound solo si no existe ninguno de los dos.
func (uc *UserUseCase) Delete(ctx context.Context, uid string) error {
	accountMissing := false
	if err := uc.idp.DeleteAccount(ctx, uid); err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		accountMissing = true
	}
	user, err := uc.repo.GetByID(ctx, uid)
	if err != nil {
		return err
	}
	if user == nil {
		if accountMissing {
			return domain.ErrUserNotFound
		}
		return nil
	}
	if err := uc.repo.Delete(ctx, uid); err != nil {
		uc.log.Error().Err(err).Str("uid", uid).Msg("cuenta eliminada pero el perfil sigue en el directorio")
		return err
	}
	return nil
}

func (uc *UserUseCase) find(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
