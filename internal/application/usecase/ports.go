package usecase

import "github.com/jhoicas/caja-api/internal/domain/entity"

// ReceiptGenerator genera el recibo imprimible de una venta.
// cajero puede ser nil si el usuario ya no está en el directorio.
type ReceiptGenerator interface {
	GenerateSaleReceipt(sale *entity.Sale, cajero *entity.User) ([]byte, error)
}
