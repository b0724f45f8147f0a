package http

import (
	"github.com/gofiber/fiber/v2"

	appguia "github.com/jhoicas/Guias-api/internal/application/guia"
)

// MotiveHandler catálogo de motivos de traslado y su política de visibilidad.
type MotiveHandler struct{}

func NewMotiveHandler() *MotiveHandler { return &MotiveHandler{} }

// List GET /api/motivos
func (h *MotiveHandler) List(c *fiber.Ctx) error {
	return c.JSON(appguia.ListMotives())
}

// Get GET /api/motivos/:code
// Un código desconocido responde la política por defecto (todo oculto, sin búsqueda).
func (h *MotiveHandler) Get(c *fiber.Ctx) error {
	return c.JSON(appguia.GetMotive(c.Params("code")))
}
