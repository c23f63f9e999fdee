package rtdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas sobre ventas/{id}.
type SaleRepo struct {
	store Store
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(store Store) *SaleRepo {
	return &SaleRepo{store: store}
}

// Create inserta la venta con clave generada por el almacén y la asigna a sale.ID.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) (string, error) {
	key, err := r.store.Push(ctx, PathVentas, sale)
	if err != nil {
		return "", domain.Upstream("guardar venta", err)
	}
	sale.ID = key
	return key, nil
}

// GetByID obtiene una venta; nil, nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	raw, err := r.store.Get(ctx, Child(PathVentas, id))
	if err != nil {
		return nil, domain.Upstream("obtener venta", err)
	}
	if isNull(raw) {
		return nil, nil
	}
	var s entity.Sale
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decodificar venta %s: %w", id, err)
	}
	s.ID = id
	return &s, nil
}

// List devuelve las ventas en orden de inserción; slice vacío si no hay.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	children, err := r.store.Children(ctx, PathVentas)
	if err != nil {
		return nil, domain.Upstream("obtener ventas", err)
	}
	list := make([]*entity.Sale, 0, len(children))
	for _, key := range sortedKeys(children) {
		raw := children[key]
		if isNull(raw) {
			continue
		}
		var s entity.Sale
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decodificar venta %s: %w", key, err)
		}
		s.ID = key
		list = append(list, &s)
	}
	return list, nil
}
