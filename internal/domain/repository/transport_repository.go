package repository

import (
	"context"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
)

// TransportRepository puerto para transportistas, conductores y vehículos.
// Los Create devuelven el registro con el ID asignado por el backend.
type TransportRepository interface {
	ListCarriers(ctx context.Context, companyID string) ([]entity.Carrier, error)
	ListDrivers(ctx context.Context, companyID string) ([]entity.Driver, error)
	ListVehicles(ctx context.Context, companyID string) ([]entity.Vehicle, error)
	CreateCarrier(ctx context.Context, companyID string, c entity.Carrier) (*entity.Carrier, error)
	CreateDriver(ctx context.Context, companyID string, d entity.Driver) (*entity.Driver, error)
	CreateVehicle(ctx context.Context, companyID string, v entity.Vehicle) (*entity.Vehicle, error)
}
