package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-api/internal/application/auth"
	"github.com/jhoicas/caja-api/internal/application/dto"
	"github.com/jhoicas/caja-api/internal/application/usecase"
)

// AuthHandler registro, verificación de tokens y gestión de usuarios.
type AuthHandler struct {
	auth  *auth.AuthUseCase
	users *usecase.UserUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(authUC *auth.AuthUseCase, users *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{auth: authUC, users: users}
}

// Register godoc
// @Summary      Registrar usuario
// @Description  Crea la cuenta en el proveedor de identidad y el perfil en usuarios/{uid}. rol por defecto: cajero.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "email, password, nombre, telefono, rol"
// @Success      201   {object}  dto.UserEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := parseBody(c, &in); err != nil {
		return writeBindError(c, err)
	}
	user, err := h.users.Create(c.UserContext(), in)
	if err != nil {
		return respondUserWriteError(c, "Error al registrar usuario", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UserEnvelope{Message: "Usuario registrado exitosamente", User: *user})
}

// Verify godoc
// @Summary      Verificar token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.VerifyRequest  true  "token"
// @Success      200   {object}  dto.VerifyResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/verify [post]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyRequest
	if err := parseBody(c, &in); err != nil {
		return writeBindError(c, err)
	}
	user, err := h.auth.VerifyProfile(c.UserContext(), in.Token)
	if err != nil {
		return respondError(c, "Error al verificar token", err)
	}
	return c.JSON(dto.VerifyResponse{Message: "Token válido", User: *user})
}

// Login godoc
// @Summary      Iniciar sesión (proveedor local)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      501   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return writeBindError(c, err)
	}
	out, err := h.auth.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, "Error al iniciar sesión", err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserEnvelope
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	uid := GetUserID(c)
	if uid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Usuario no autenticado"})
	}
	user, err := h.users.Get(c.UserContext(), uid)
	if err != nil {
		return respondError(c, "Error al obtener usuario", err)
	}
	return c.JSON(dto.UserEnvelope{Message: "Usuario obtenido exitosamente", User: *user})
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Description  Arreglo ordenado por clave; cada elemento lleva su uid (no un mapa uid → registro).
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UsersEnvelope
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/auth/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return respondError(c, "Error al obtener usuarios", err)
	}
	return c.JSON(dto.UsersEnvelope{Message: "Usuarios obtenidos exitosamente", Users: users})
}

// UpdateUser godoc
// @Summary      Actualizar usuario
// @Description  Actualización parcial: solo se escriben nombre, telefono y rol si vienen en el cuerpo.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uid   path      string                 true  "UID"
// @Param        body  body      dto.UpdateUserRequest  true  "nombre, telefono, rol"
// @Success      200   {object}  dto.UserEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/auth/users/{uid} [put]
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := parseBody(c, &in); err != nil {
		return writeBindError(c, err)
	}
	user, err := h.users.Update(c.UserContext(), c.Params("uid"), in)
	if err != nil {
		return respondUserWriteError(c, "Error al actualizar usuario", err)
	}
	return c.JSON(dto.UserEnvelope{Message: "Usuario actualizado exitosamente", User: *user})
}

// DeleteUser godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        uid  path      string  true  "UID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/auth/users/{uid} [delete]
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("uid")); err != nil {
		return respondError(c, "Error al eliminar usuario", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Usuario eliminado exitosamente"})
}
