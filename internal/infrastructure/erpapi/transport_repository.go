package erpapi

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
	"github.com/jhoicas/Guias-api/internal/domain/repository"
)

// TransportRepository implementa repository.TransportRepository.
type TransportRepository struct {
	c *Client
}

// NewTransportRepository crea el repositorio de transportistas, conductores y vehículos.
func NewTransportRepository(c *Client) *TransportRepository {
	return &TransportRepository{c: c}
}

var _ repository.TransportRepository = (*TransportRepository)(nil)

func (r *TransportRepository) ListCarriers(ctx context.Context, companyID string) ([]entity.Carrier, error) {
	return listAll(ctx, r.c, "/transportistas/dropdown", companyFilter(companyID), toCarrier)
}

func (r *TransportRepository) ListDrivers(ctx context.Context, companyID string) ([]entity.Driver, error) {
	return listAll(ctx, r.c, "/conductores/dropdown", companyFilter(companyID), toDriver)
}

func (r *TransportRepository) ListVehicles(ctx context.Context, companyID string) ([]entity.Vehicle, error) {
	return listAll(ctx, r.c, "/vehiculos/dropdown", companyFilter(companyID), toVehicle)
}

// CreateCarrier registra el transportista. Los endpoints de creación pueden devolver
// solo el id; se decodifica sobre lo enviado para conservar el resto de campos.
func (r *TransportRepository) CreateCarrier(ctx context.Context, companyID string, in entity.Carrier) (*entity.Carrier, error) {
	body := wireCarrier{EmpresaID: companyID, RUC: in.RUC, RazonSocial: in.Name, RegistroMTC: in.MTCRegistration}
	out := body
	if _, err := r.c.do(ctx, call{Method: fiber.MethodPost, Path: "/transportistas", Body: body}, &out); err != nil {
		return nil, err
	}
	created := toCarrier(out)
	return &created, nil
}

func (r *TransportRepository) CreateDriver(ctx context.Context, companyID string, in entity.Driver) (*entity.Driver, error) {
	body := wireDriver{
		EmpresaID: companyID, TipoDocumento: in.DocumentType, NumeroDocumento: in.DocumentNumber,
		Nombres: in.FirstNames, Apellidos: in.LastNames, Licencia: in.License,
	}
	out := body
	if _, err := r.c.do(ctx, call{Method: fiber.MethodPost, Path: "/conductores", Body: body}, &out); err != nil {
		return nil, err
	}
	created := toDriver(out)
	return &created, nil
}

func (r *TransportRepository) CreateVehicle(ctx context.Context, companyID string, in entity.Vehicle) (*entity.Vehicle, error) {
	body := wireVehicle{EmpresaID: companyID, Placa: in.Plate, Marca: in.Brand, CertificadoMTC: in.MTCCertificate}
	out := body
	if _, err := r.c.do(ctx, call{Method: fiber.MethodPost, Path: "/vehiculos", Body: body}, &out); err != nil {
		return nil, err
	}
	created := toVehicle(out)
	return &created, nil
}
