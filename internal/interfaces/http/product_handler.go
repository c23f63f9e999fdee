package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/usecase"
)

// ProductHandler productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateProductRequest  true  "nombre, precio, stock, ..."
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseBody(c, &in); err != nil {
		return writeBindError(c, err)
	}
	product, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, "Error al registrar el producto", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{
		Message:    "Producto registrado exitosamente",
		ProductoID: product.ID,
		Data:       *product,
	})
}

// List godoc
// @Summary      Listar productos
// @Description  Arreglo ordenado por clave; cada elemento lleva su id (no un mapa id → registro).
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProductsEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, "Error al obtener productos", err)
	}
	return c.JSON(dto.ProductsEnvelope{Message: "Productos obtenidos exitosamente", Productos: list})
}
