package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Guias-api/internal/domain"
)

var validate = newValidator()

// newValidator reporta los campos con el nombre de su etiqueta json o query.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// validationErrors convierte los errores del validador en un ValidationError con mensajes legibles.
func validationErrors(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	verr := &domain.ValidationError{}
	for _, fe := range ves {
		verr.Add(fe.Field(), tagMessage(fe))
	}
	return verr
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo requerido"
	case "len":
		return "debe tener " + fe.Param() + " caracteres"
	case "min":
		return "mínimo " + fe.Param()
	case "max":
		return "máximo " + fe.Param()
	case "numeric":
		return "solo dígitos"
	case "oneof":
		return "valor permitido: " + fe.Param()
	case "datetime":
		return "fecha inválida, formato AAAA-MM-DD"
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}

var (
	errInvalidBody  = errors.New("cuerpo inválido")
	errInvalidQuery = errors.New("parámetros de consulta inválidos")
)

// bindBody parsea y valida el cuerpo JSON.
func bindBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	if err := validate.Struct(out); err != nil {
		return validationErrors(err)
	}
	return nil
}

// bindQuery parsea y valida parámetros de consulta.
func bindQuery(c *fiber.Ctx, out interface{}) error {
	if err := c.QueryParser(out); err != nil {
		return errInvalidQuery
	}
	if err := validate.Struct(out); err != nil {
		return validationErrors(err)
	}
	return nil
}
