package repository

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia del directorio de usuarios (usuarios/{uid}).
type UserRepository interface {
	// Save escribe el registro completo bajo su UID.
	Save(ctx context.Context, user *entity.User) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, uid string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Update escribe solo los campos presentes en changes.
	Update(ctx context.Context, uid string, changes entity.UserChanges) error
	Delete(ctx context.Context, uid string) error
}
