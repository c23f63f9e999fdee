package entity

import "github.com/shopspring/decimal"

func init() {
	// Montos como números JSON, igual que los registros existentes en el almacén.
	decimal.MarshalJSONWithoutQuotes = true
}

// SaleItem línea de una venta.
type SaleItem struct {
	Nombre   string          `json:"nombre"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
}

// Subtotal cantidad * precio.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Cantidad.Mul(i.Precio)
}

// Sale registro de ventas/{id}. Inmutable una vez insertado.
type Sale struct {
	ID         string          `json:"-"`
	Productos  []SaleItem      `json:"productos"`
	Total      decimal.Decimal `json:"total"`
	MetodoPago string          `json:"metodo_pago"`
	UsuarioID  string          `json:"usuario_id"`
	Fecha      Fecha           `json:"fecha"`
}
