package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/usecase"
)

// SaleHandler ventas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  usuario_id y fecha los asigna el servidor.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateSaleRequest  true  "productos, total, metodo_pago"
// @Success      201   {object}  dto.CreateSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := parseBody(c, &in); err != nil {
		return writeBindError(c, err)
	}
	sale, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, "Error al registrar la venta", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateSaleResponse{
		Message: "Venta registrada exitosamente",
		VentaID: sale.ID,
		Data:    *sale,
	})
}

// List godoc
// @Summary      Listar ventas
// @Description  Arreglo ordenado por clave; cada elemento lleva su id (no un mapa id → registro).
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SalesEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, "Error al obtener ventas", err)
	}
	return c.JSON(dto.SalesEnvelope{Message: "Ventas obtenidas exitosamente", Ventas: list})
}

// Receipt godoc
// @Summary      Recibo PDF de una venta
// @Tags         ventas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/recibo [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.Receipt(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, "Error al generar el recibo", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdf)
}
