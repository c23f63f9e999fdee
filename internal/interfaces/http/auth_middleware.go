package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/domain/entity"
)

// Locals keys de la identidad verificada en Fiber.
const (
	LocalUserID = "firebase_uid"
	LocalEmail  = "email"
	LocalRole   = "rol"
)

// TokenVerifier lo cumple auth.AuthUseCase.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Credential, error)
}

// RoleLookup lo cumple usecase.UserUseCase.
type RoleLookup interface {
	Role(ctx context.Context, uid string) (string, error)
}

// AuthMiddleware exige "Authorization: Bearer <token>", lo verifica contra el proveedor de
// identidad y deja uid y email en c.Locals. Sin cabecera no se llama al proveedor.
func AuthMiddleware(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Token no proporcionado"})
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		cred, err := v.Verify(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Token inválido o expirado"})
		}
		c.Locals(LocalUserID, cred.UID)
		c.Locals(LocalEmail, cred.Email)
		return c.Next()
	}
}

// RequireRole permite el paso solo si el rol del usuario en el directorio está en allowed.
// Debe ir después de AuthMiddleware.
func RequireRole(roles RoleLookup, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid := GetUserID(c)
		if uid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Usuario no autenticado"})
		}
		rol, err := roles.Role(c.UserContext(), uid)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "El usuario no tiene perfil en el directorio"})
			}
			return respondError(c, "Error al verificar permisos", err)
		}
		for _, a := range allowed {
			if rol == a {
				c.Locals(LocalRole, rol)
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "No tiene permisos para esta operación"})
	}
}

// GetUserID devuelve el UID verificado (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetEmail devuelve el email verificado (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// GetRole devuelve el rol cargado por RequireRole.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
