package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
	"github.com/jhoicas/caja-api/internal/domain/repository"
)

// SaleUseCase registro y consulta de ventas.
type SaleUseCase struct {
	repo     repository.SaleRepository
	users    repository.UserRepository
	receipts ReceiptGenerator
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso. receipts puede ser nil si no se generan recibos.
func NewSaleUseCase(repo repository.SaleRepository, users repository.UserRepository, receipts ReceiptGenerator) *SaleUseCase {
	return &SaleUseCase{repo: repo, users: users, receipts: receipts, now: time.Now}
}

// Create inserta la venta con la fecha del servidor y el UID de quien la registra.
func (uc *SaleUseCase) Create(ctx context.Context, usuarioID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	items := make([]entity.SaleItem, 0, len(in.Productos))
	for _, p := range in.Productos {
		if p.Cantidad == nil || p.Precio == nil {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.SaleItem{Nombre: p.Nombre, Cantidad: *p.Cantidad, Precio: *p.Precio})
	}
	if in.Total == nil {
		return nil, domain.ErrInvalidInput
	}
	sale := &entity.Sale{
		Productos:  items,
		Total:      *in.Total,
		MetodoPago: in.MetodoPago,
		UsuarioID:  usuarioID,
		Fecha:      entity.NewFecha(uc.now()),
	}
	id, err := uc.repo.Create(ctx, sale)
	if err != nil {
		return nil, err
	}
	sale.ID = id
	out := dto.NewSaleResponse(sale)
	return &out, nil
}

// List devuelve las ventas en orden de inserción; nunca nil.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.NewSaleResponse(s))
	}
	return out, nil
}

// Receipt genera el PDF de la venta. Devuelve domain.ErrNotFound si no existe.
func (uc *SaleUseCase) Receipt(ctx context.Context, id string) ([]byte, string, error) {
	if uc.receipts == nil {
		return nil, "", domain.ErrNotSupported
	}
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	var cajero *entity.User
	if sale.UsuarioID != "" {
		// el recibo sale aunque el cajero ya no exista o falle la lectura
		cajero, _ = uc.users.GetByID(ctx, sale.UsuarioID)
	}
	pdf, err := uc.receipts.GenerateSaleReceipt(sale, cajero)
	if err != nil {
		return nil, "", fmt.Errorf("generar recibo: %w", err)
	}
	return pdf, fmt.Sprintf("recibo-%s.pdf", sale.ID), nil
}
