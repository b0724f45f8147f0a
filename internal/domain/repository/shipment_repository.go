package repository

import (
	"context"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
)

// ShipmentRepository puerto de registro de guías en el backend.
// Create registra la guía; CreateAndValidate además la envía a SUNAT.
// Ambos comparten el mismo payload.
type ShipmentRepository interface {
	Create(ctx context.Context, header entity.ShipmentHeader, lines []entity.ShipmentLine) (*entity.ShipmentResult, error)
	CreateAndValidate(ctx context.Context, header entity.ShipmentHeader, lines []entity.ShipmentLine) (*entity.ShipmentResult, error)
}
