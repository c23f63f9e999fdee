package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/pkg/logger"
)

// respondError traduce errores de dominio a HTTP. action es el mensaje visible cuando la
// operación falla en el proveedor o el almacén; el detalle del proveedor va en "error".
func respondError(c *fiber.Ctx, action string, err error) error {
	return respondErrorStatus(c, action, err, fiber.StatusInternalServerError)
}

// respondUserWriteError para alta y actualización de usuarios: los fallos del proveedor o del
// almacén responden 400 en lugar de 500.
func respondUserWriteError(c *fiber.Ctx, action string, err error) error {
	return respondErrorStatus(c, action, err, fiber.StatusBadRequest)
}

// respondErrorStatus usa failStatus para errores del proveedor y errores sin clasificar.
func respondErrorStatus(c *fiber.Ctx, action string, err error, failStatus int) error {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidCredential):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Token inválido o expirado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "No tiene permisos para esta operación"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: action, Error: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "Usuario no encontrado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: action, Error: err.Error()})
	case errors.Is(err, domain.ErrNotSupported):
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_SUPPORTED", Message: err.Error()})
	case errors.As(err, &upstream):
		return c.Status(failStatus).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: action, Error: upstream.Error()})
	default:
		return c.Status(failStatus).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: action, Error: err.Error()})
	}
}

// ErrorHandler para fiber.Config: errores no manejados por los handlers (404 de ruta, 405, pánicos recuperados).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Error interno del servidor"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no manejado")
		}
		return c.Status(code).JSON(dto.ErrorResponse{Code: errorCode(code), Message: message})
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL"
	}
	return "BAD_REQUEST"
}
