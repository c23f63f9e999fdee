package rtdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos sobre productos/{id}.
type ProductRepo struct {
	store Store
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(store Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// Create inserta el producto y asigna product.ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (string, error) {
	key, err := r.store.Push(ctx, PathProductos, product)
	if err != nil {
		return "", domain.Upstream("guardar producto", err)
	}
	product.ID = key
	return key, nil
}

// List devuelve los productos en orden de inserción; slice vacío si no hay.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	children, err := r.store.Children(ctx, PathProductos)
	if err != nil {
		return nil, domain.Upstream("obtener productos", err)
	}
	list := make([]*entity.Product, 0, len(children))
	for _, key := range sortedKeys(children) {
		raw := children[key]
		if isNull(raw) {
			continue
		}
		var p entity.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decodificar producto %s: %w", key, err)
		}
		p.ID = key
		list = append(list, &p)
	}
	return list, nil
}
