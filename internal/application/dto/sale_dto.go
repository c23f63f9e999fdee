package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// SaleItemRequest línea de venta. Los montos son punteros para distinguir ausente de cero.
type SaleItemRequest struct {
	Nombre   string           `json:"nombre" validate:"required,max=255"`
	Cantidad *decimal.Decimal `json:"cantidad" validate:"required,gte=1"`
	Precio   *decimal.Decimal `json:"precio" validate:"required,gte=0"`
}

// CreateSaleRequest entrada para POST /ventas. usuario_id y fecha los fija el servidor.
type CreateSaleRequest struct {
	Productos  []SaleItemRequest `json:"productos" validate:"required,min=1,dive"`
	Total      *decimal.Decimal  `json:"total" validate:"required,gte=0"`
	MetodoPago string            `json:"metodo_pago" validate:"required,max=50"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID         string            `json:"id"`
	Productos  []entity.SaleItem `json:"productos"`
	Total      decimal.Decimal   `json:"total"`
	MetodoPago string            `json:"metodo_pago"`
	UsuarioID  string            `json:"usuario_id"`
	Fecha      entity.Fecha      `json:"fecha"`
}

// CreateSaleResponse salida de POST /ventas.
type CreateSaleResponse struct {
	Message string       `json:"message"`
	VentaID string       `json:"venta_id"`
	Data    SaleResponse `json:"data"`
}

// SalesEnvelope salida de GET /ventas.
type SalesEnvelope struct {
	Message string         `json:"message"`
	Ventas  []SaleResponse `json:"ventas"`
}

// NewSaleResponse mapea la entidad a la respuesta.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	items := s.Productos
	if items == nil {
		items = []entity.SaleItem{}
	}
	return SaleResponse{
		ID:         s.ID,
		Productos:  items,
		Total:      s.Total,
		MetodoPago: s.MetodoPago,
		UsuarioID:  s.UsuarioID,
		Fecha:      s.Fecha,
	}
}
