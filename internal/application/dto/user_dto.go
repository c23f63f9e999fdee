package dto

import "github.com/jhoicas/caja-api/internal/domain/entity"

// RegisterRequest entrada para POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
	Nombre   string `json:"nombre" validate:"required,max=255"`
	Telefono string `json:"telefono" validate:"omitempty,max=50"`
	Rol      string `json:"rol" validate:"omitempty,oneof=admin cajero vendedor"`
}

// UpdateUserRequest actualización parcial: los campos ausentes no se tocan.
type UpdateUserRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,max=255"`
	Telefono *string `json:"telefono" validate:"omitempty,max=50"`
	Rol      *string `json:"rol" validate:"omitempty,oneof=admin cajero vendedor"`
}

// Changes convierte la petición en cambios de dominio. Un rol vacío se trata como ausente.
func (r UpdateUserRequest) Changes() entity.UserChanges {
	ch := entity.UserChanges{Nombre: r.Nombre, Telefono: r.Telefono, Rol: r.Rol}
	if ch.Rol != nil && *ch.Rol == "" {
		ch.Rol = nil
	}
	return ch
}

// VerifyRequest entrada para POST /auth/verify.
type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// LoginRequest entrada para POST /auth/login (solo proveedor local).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un registro del directorio.
type UserResponse struct {
	UID           string       `json:"uid"`
	Email         string       `json:"email"`
	Nombre        string       `json:"nombre"`
	Telefono      string       `json:"telefono"`
	Rol           string       `json:"rol"`
	FechaRegistro entity.Fecha `json:"fecha_registro"`
	Activo        bool         `json:"activo"`
}

// VerifiedUser identidad verificada más el perfil del directorio; nombre y telefono son null sin registro.
type VerifiedUser struct {
	UID      string  `json:"uid"`
	Email    string  `json:"email"`
	Nombre   *string `json:"nombre"`
	Rol      string  `json:"rol"`
	Telefono *string `json:"telefono"`
}

// UserEnvelope {message, user}.
type UserEnvelope struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// UsersEnvelope {message, users}.
type UsersEnvelope struct {
	Message string         `json:"message"`
	Users   []UserResponse `json:"users"`
}

// VerifyResponse salida de POST /auth/verify.
type VerifyResponse struct {
	Message string       `json:"message"`
	User    VerifiedUser `json:"user"`
}

// LoginResponse salida con el token emitido.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    VerifiedUser `json:"user"`
}

// NewUserResponse mapea la entidad a la respuesta.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		UID:           u.UID,
		Email:         u.Email,
		Nombre:        u.Nombre,
		Telefono:      u.Telefono,
		Rol:           u.Rol,
		FechaRegistro: u.FechaRegistro,
		Activo:        u.Activo,
	}
}
