package repository

import (
	"context"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (ventas/{id}).
// Las ventas no se editan ni se borran.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) (string, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
}
