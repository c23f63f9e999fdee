package dto

import "time"

// ErrorResponse cuerpo de error HTTP. Error lleva el mensaje del proveedor cuando falla un servicio externo.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Error   string       `json:"error,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError detalle de un campo que no pasó la validación.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// MessageResponse respuesta que solo lleva un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse salida de GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
