package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("El correo electrónico ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNotSupported       = errors.New("operación no soportada por el proveedor")

	// ErrInvalidCredential es el único resultado visible de una verificación fallida.
	ErrInvalidCredential = errors.New("Token inválido o expirado")

	// Diagnóstico interno de la verificación; nunca llegan al cliente.
	ErrTokenExpired = errors.New("token expirado")
	ErrTokenInvalid = errors.New("token malformado o con firma inválida")
)

// UpstreamError envuelve un fallo del proveedor de identidad o del almacén de datos.
// El mensaje del proveedor se expone tal cual en la respuesta.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Upstream construye un *UpstreamError; devuelve nil si err es nil.
func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{Op: op, Err: err}
}
