package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Guias-api/internal/application/dto"
	appguia "github.com/jhoicas/Guias-api/internal/application/guia"
	"github.com/jhoicas/Guias-api/internal/domain"
)

// GuiaHandler maneja el borrador de guía de remisión (protegido).
type GuiaHandler struct {
	uc     *appguia.DraftUseCase
	export *appguia.ExportUseCase
}

// NewGuiaHandler construye el handler.
func NewGuiaHandler(uc *appguia.DraftUseCase, export *appguia.ExportUseCase) *GuiaHandler {
	return &GuiaHandler{uc: uc, export: export}
}

// Open abre una sesión de borrador cargando los catálogos de la empresa.
// POST /api/guias/borradores
func (h *GuiaHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenDraftRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &in); err != nil {
			return writeError(c, err)
		}
	}
	sc := sessionContext(c)
	if in.WarehouseID != "" {
		sc.WarehouseID = in.WarehouseID
	}
	out, err := h.uc.Open(c.UserContext(), sc)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get GET /api/guias/borradores/:id
func (h *GuiaHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(sessionContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Discard DELETE /api/guias/borradores/:id
func (h *GuiaHandler) Discard(c *fiber.Ctx) error {
	if err := h.uc.Discard(sessionContext(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateHeader aplica los campos presentes de la cabecera.
// PATCH /api/guias/borradores/:id/cabecera
func (h *GuiaHandler) UpdateHeader(c *fiber.Ctx) error {
	var in dto.UpdateHeaderRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateHeader(sessionContext(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddLine POST /api/guias/borradores/:id/lineas
func (h *GuiaHandler) AddLine(c *fiber.Ctx) error {
	var in dto.LineRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AddLine(sessionContext(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateLine PUT /api/guias/borradores/:id/lineas/:item
func (h *GuiaHandler) UpdateLine(c *fiber.Ctx) error {
	item, err := c.ParamsInt("item")
	if err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	var in dto.LineRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateLine(sessionContext(c), c.Params("id"), item, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine DELETE /api/guias/borradores/:id/lineas/:item
func (h *GuiaHandler) RemoveLine(c *fiber.Ctx) error {
	item, err := c.ParamsInt("item")
	if err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.RemoveLine(sessionContext(c), c.Params("id"), item)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Catalog búsqueda incremental sobre un catálogo en caché.
// GET /api/guias/borradores/:id/catalogos/:kind?q=
func (h *GuiaHandler) Catalog(c *fiber.Ctx) error {
	out, err := h.uc.Catalog(sessionContext(c), c.Params("id"), c.Params("kind"), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Units GET /api/guias/borradores/:id/productos/:productId/unidades
func (h *GuiaHandler) Units(c *fiber.Ctx) error {
	out, err := h.uc.Units(sessionContext(c), c.Params("id"), c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SearchReferences GET /api/guias/borradores/:id/documentos-referencia
func (h *GuiaHandler) SearchReferences(c *fiber.Ctx) error {
	var in dto.ReferenceSearchRequest
	if err := bindQuery(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SearchReferences(c.UserContext(), sessionContext(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ImportReference POST /api/guias/borradores/:id/documentos-referencia/:docId/importar
func (h *GuiaHandler) ImportReference(c *fiber.Ctx) error {
	out, err := h.uc.ImportReference(c.UserContext(), sessionContext(c), c.Params("id"), c.Params("docId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Submit valida y registra la guía; si la serie lo exige también la envía a SUNAT.
// POST /api/guias/borradores/:id/emitir
func (h *GuiaHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.UserContext(), sessionContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PDF GET /api/guias/borradores/:id/pdf
func (h *GuiaHandler) PDF(c *fiber.Ctx) error {
	b, name, err := h.export.PDF(c.UserContext(), sessionContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
	return c.Send(b)
}

// Lines GET /api/guias/borradores/:id/lineas.xlsx
func (h *GuiaHandler) Lines(c *fiber.Ctx) error {
	b, name, err := h.export.Lines(c.UserContext(), sessionContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(b)
}
