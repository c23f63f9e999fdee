package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

// ProductUseCase alta y listado de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create inserta el producto con una clave generada por el almacén.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Precio == nil || in.Stock == nil {
		return nil, domain.ErrInvalidInput
	}
	if !validStock(*in.Stock) {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		Precio:       *in.Precio,
		Stock:        int(in.Stock.IntPart()),
		Categoria:    in.Categoria,
		CodigoBarras: in.CodigoBarras,
	}
	id, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	out := dto.NewProductResponse(product)
	return &out, nil
}

// List devuelve los productos en orden de inserción; nunca nil.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}

// validStock entero en [0, MaxStock]; IntPart no detecta desbordes.
func validStock(d decimal.Decimal) bool {
	return d.IsInteger() && !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(dto.MaxStock))
}
