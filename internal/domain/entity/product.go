package entity

import "github.com/shopspring/decimal"

// Product registro de productos/{id}. Solo se inserta; no hay edición ni borrado.
type Product struct {
	ID           string          `json:"-"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion,omitempty"`
	Precio       decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	Categoria    string          `json:"categoria,omitempty"`
	CodigoBarras string          `json:"codigo_barras,omitempty"`
}
