package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// MaxStock tope de existencias aceptado en el alta de productos.
const MaxStock = 2147483647

// CreateProductRequest entrada para POST /productos. Stock debe ser entero.
type CreateProductRequest struct {
	Nombre       string           `json:"nombre" validate:"required,max=255"`
	Descripcion  string           `json:"descripcion"`
	Precio       *decimal.Decimal `json:"precio" validate:"required,gte=0"`
	Stock        *decimal.Decimal `json:"stock" validate:"required,entero,gte=0,lte=2147483647"`
	Categoria    string           `json:"categoria" validate:"omitempty,max=255"`
	CodigoBarras string           `json:"codigo_barras" validate:"omitempty,max=255"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion,omitempty"`
	Precio       decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	Categoria    string          `json:"categoria,omitempty"`
	CodigoBarras string          `json:"codigo_barras,omitempty"`
}

// CreateProductResponse salida de POST /productos.
type CreateProductResponse struct {
	Message    string          `json:"message"`
	ProductoID string          `json:"producto_id"`
	Data       ProductResponse `json:"data"`
}

// ProductsEnvelope salida de GET /productos.
type ProductsEnvelope struct {
	Message   string            `json:"message"`
	Productos []ProductResponse `json:"productos"`
}

// NewProductResponse mapea la entidad a la respuesta.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Precio:       p.Precio,
		Stock:        p.Stock,
		Categoria:    p.Categoria,
		CodigoBarras: p.CodigoBarras,
	}
}
