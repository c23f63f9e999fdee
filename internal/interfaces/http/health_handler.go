package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/dto"
)

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Message:   "API funcionando correctamente",
		Timestamp: time.Now().UTC(),
	})
}
