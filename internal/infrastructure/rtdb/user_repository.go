package rtdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo directorio de usuarios sobre usuarios/{uid}.
type UserRepo struct {
	store Store
}

// NewUserRepository construye el adaptador del directorio.
func NewUserRepository(store Store) *UserRepo {
	return &UserRepo{store: store}
}

// Save escribe el registro completo.
func (r *UserRepo) Save(ctx context.Context, user *entity.User) error {
	if err := r.store.Set(ctx, Child(PathUsuarios, user.UID), user); err != nil {
		return domain.Upstream("guardar usuario", err)
	}
	return nil
}

// GetByID obtiene un usuario por UID; nil, nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, uid string) (*entity.User, error) {
	raw, err := r.store.Get(ctx, Child(PathUsuarios, uid))
	if err != nil {
		return nil, domain.Upstream("obtener usuario", err)
	}
	if isNull(raw) {
		return nil, nil
	}
	var u entity.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decodificar usuario %s: %w", uid, err)
	}
	if u.UID == "" {
		u.UID = uid
	}
	return &u, nil
}

// List lista todos los usuarios; nunca devuelve nil.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	children, err := r.store.Children(ctx, PathUsuarios)
	if err != nil {
		return nil, domain.Upstream("listar usuarios", err)
	}
	list := make([]*entity.User, 0, len(children))
	for _, uid := range sortedKeys(children) {
		raw := children[uid]
		if isNull(raw) {
			continue
		}
		var u entity.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, fmt.Errorf("decodificar usuario %s: %w", uid, err)
		}
		if u.UID == "" {
			u.UID = uid
		}
		list = append(list, &u)
	}
	return list, nil
}

// Update fusiona solo los campos presentes.
func (r *UserRepo) Update(ctx context.Context, uid string, changes entity.UserChanges) error {
	if changes.Empty() {
		return nil
	}
	if err := r.store.Update(ctx, Child(PathUsuarios, uid), changes.Fields()); err != nil {
		return domain.Upstream("actualizar usuario", err)
	}
	return nil
}

// Delete elimina el registro del directorio.
func (r *UserRepo) Delete(ctx context.Context, uid string) error {
	if err := r.store.Delete(ctx, Child(PathUsuarios, uid)); err != nil {
		return domain.Upstream("eliminar usuario", err)
	}
	return nil
}
