package http

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-api/internal/application/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// gte/lte/entero sobre montos decimales
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("entero", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		switch f.Kind() {
		case reflect.Float32, reflect.Float64:
			return f.Float() == math.Trunc(f.Float())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return true
		}
		return false
	})
	return v
}

// bodyError el cuerpo no es JSON válido para el DTO.
type bodyError struct{ err error }

func (e *bodyError) Error() string { return e.err.Error() }

// parseBody decodifica el JSON en out y lo valida. Un cuerpo vacío equivale a {}.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(out); err != nil {
			return &bodyError{err: err}
		}
	}
	return validate.Struct(out)
}

// writeBindError 400 para cuerpos ilegibles y 422 con el detalle por campo para fallos de validación.
func writeBindError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "Los datos enviados no son válidos",
			Fields:  fieldErrors(verrs),
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "INVALID_BODY",
		Message: "Cuerpo de la petición inválido",
		Error:   err.Error(),
	})
}

func fieldErrors(verrs validator.ValidationErrors) []dto.FieldError {
	out := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		out = append(out, dto.FieldError{Field: field, Rule: fe.Tag(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un correo electrónico válido"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("debe tener al menos %s elemento(s)", fe.Param())
		}
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("no puede superar %s caracteres", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "entero":
		return "debe ser un número entero"
	default:
		return "no es válido"
	}
}
