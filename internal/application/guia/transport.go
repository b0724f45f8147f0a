package guia

import (
	"context"
	"strings"

	"github.com/jhoicas/Guias-api/internal/application/dto"
	"github.com/jhoicas/Guias-api/internal/domain"
	"github.com/jhoicas/Guias-api/internal/domain/entity"
	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
	"github.com/jhoicas/Guias-api/pkg/sunat"
)

// CreateCarrier registra un transportista, lo agrega al catálogo de la sesión y lo
// selecciona en el borrador con modalidad de transporte público.
func (uc *DraftUseCase) CreateCarrier(ctx context.Context, sc rules.SessionContext, id string, req dto.CreateCarrierRequest) (*dto.TransportCreatedResponse, error) {
	var resp *dto.TransportCreatedResponse
	err := uc.withSession(sc, id, func(s *session) error {
		ruc, err := sunat.NormalizeRUC(req.RUC)
		if err != nil {
			verr := &domain.ValidationError{}
			verr.Add("ruc", err.Error())
			return verr
		}
		created, err := uc.transportRepo.CreateCarrier(ctx, sc.CompanyID, entity.Carrier{
			RUC:             ruc,
			Name:            strings.TrimSpace(req.Name),
			MTCRegistration: strings.TrimSpace(req.MTCRegistration),
		})
		if err != nil {
			return err
		}
		s.catalogs.AddCarrier(*created)
		h := &s.draft.Header
		h.TransportMode = sunat.TransportModePublico
		h.CarrierID = created.ID
		h.DriverID, h.VehicleID = "", ""
		uc.log.Info().Str("draft_id", id).Str("carrier_id", created.ID).Msg("transportista creado")
		resp = &dto.TransportCreatedResponse{ID: created.ID, Label: created.Name, Draft: *toDraftResponse(s.draft, s.catalogs, uc.store.expiry(s))}
		return nil
	})
	return resp, err
}

// CreateDriver registra un conductor y lo selecciona con modalidad de transporte privado.
func (uc *DraftUseCase) CreateDriver(ctx context.Context, sc rules.SessionContext, id string, req dto.CreateDriverRequest) (*dto.TransportCreatedResponse, error) {
	var resp *dto.TransportCreatedResponse
	err := uc.withSession(sc, id, func(s *session) error {
		if req.DocumentType == sunat.IdentityDocDNI && len(strings.TrimSpace(req.DocumentNumber)) != 8 {
			verr := &domain.ValidationError{}
			verr.Add("numeroDocumento", "el DNI debe tener 8 dígitos")
			return verr
		}
		created, err := uc.transportRepo.CreateDriver(ctx, sc.CompanyID, entity.Driver{
			DocumentType:   req.DocumentType,
			DocumentNumber: strings.TrimSpace(req.DocumentNumber),
			FirstNames:     strings.TrimSpace(req.FirstNames),
			LastNames:      strings.TrimSpace(req.LastNames),
			License:        strings.ToUpper(strings.TrimSpace(req.License)),
		})
		if err != nil {
			return err
		}
		s.catalogs.AddDriver(*created)
		h := &s.draft.Header
		h.TransportMode = sunat.TransportModePrivado
		h.DriverID = created.ID
		h.CarrierID = ""
		uc.log.Info().Str("draft_id", id).Str("driver_id", created.ID).Msg("conductor creado")
		resp = &dto.TransportCreatedResponse{ID: created.ID, Label: created.FullName(), Draft: *toDraftResponse(s.draft, s.catalogs, uc.store.expiry(s))}
		return nil
	})
	return resp, err
}

// CreateVehicle registra un vehículo y lo selecciona con modalidad de transporte privado.
func (uc *DraftUseCase) CreateVehicle(ctx context.Context, sc rules.SessionContext, id string, req dto.CreateVehicleRequest) (*dto.TransportCreatedResponse, error) {
	var resp *dto.TransportCreatedResponse
	err := uc.withSession(sc, id, func(s *session) error {
		plate := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(req.Plate), "-", ""))
		created, err := uc.transportRepo.CreateVehicle(ctx, sc.CompanyID, entity.Vehicle{
			Plate:          plate,
			Brand:          strings.TrimSpace(req.Brand),
			MTCCertificate: strings.TrimSpace(req.MTCCertificate),
		})
		if err != nil {
			return err
		}
		s.catalogs.AddVehicle(*created)
		h := &s.draft.Header
		h.TransportMode = sunat.TransportModePrivado
		h.VehicleID = created.ID
		h.CarrierID = ""
		uc.log.Info().Str("draft_id", id).Str("vehicle_id", created.ID).Msg("vehículo creado")
		resp = &dto.TransportCreatedResponse{ID: created.ID, Label: created.Plate, Draft: *toDraftResponse(s.draft, s.catalogs, uc.store.expiry(s))}
		return nil
	})
	return resp, err
}
