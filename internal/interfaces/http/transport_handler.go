package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Guias-api/internal/application/dto"
	appguia "github.com/jhoicas/Guias-api/internal/application/guia"
)

// TransportHandler alta rápida de transportistas, conductores y vehículos desde el borrador.
type TransportHandler struct {
	uc *appguia.DraftUseCase
}

func NewTransportHandler(uc *appguia.DraftUseCase) *TransportHandler {
	return &TransportHandler{uc: uc}
}

// CreateCarrier POST /api/guias/borradores/:id/transportistas
func (h *TransportHandler) CreateCarrier(c *fiber.Ctx) error {
	var in dto.CreateCarrierRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateCarrier(c.UserContext(), sessionContext(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateDriver POST /api/guias/borradores/:id/conductores
func (h *TransportHandler) CreateDriver(c *fiber.Ctx) error {
	var in dto.CreateDriverRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateDriver(c.UserContext(), sessionContext(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateVehicle POST /api/guias/borradores/:id/vehiculos
func (h *TransportHandler) CreateVehicle(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateVehicle(c.UserContext(), sessionContext(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
