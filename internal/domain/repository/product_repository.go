package repository

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (productos/{id}).
type ProductRepository interface {
	// Create inserta con una clave generada por el almacén y la devuelve.
	Create(ctx context.Context, product *entity.Product) (string, error)
	List(ctx context.Context) ([]*entity.Product, error)
}
