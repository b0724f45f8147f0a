package guia

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Guias-api/internal/application/dto"
	"github.com/jhoicas/Guias-api/internal/domain"
	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
	"github.com/jhoicas/Guias-api/pkg/sunat"
)

// UpdateHeader aplica los campos presentes en req sobre una copia del borrador.
// Si algún campo es inválido devuelve *domain.ValidationError y el borrador no cambia.
// El orden importa: el motivo se aplica antes que las partes porque puede ocultarlas.
func (uc *DraftUseCase) UpdateHeader(sc rules.SessionContext, id string, req dto.UpdateHeaderRequest) (*dto.DraftResponse, error) {
	var resp *dto.DraftResponse
	err := uc.withSession(sc, id, func(s *session) error {
		d := s.draft.Clone()
		if err := uc.applyHeader(d, s.catalogs, req); err != nil {
			return err
		}
		s.draft = d
		resp = toDraftResponse(d, s.catalogs, uc.store.expiry(s))
		return nil
	})
	return resp, err
}

func (uc *DraftUseCase) applyHeader(d *rules.Draft, cat *Catalogs, req dto.UpdateHeaderRequest) error {
	verr := &domain.ValidationError{}
	loc := uc.now().Location()

	if v := req.DocumentTypeID; v != nil {
		if *v != "" && !cat.HasDocumentType(*v) {
			verr.Add("tipoDocumentoId", "el tipo de documento no existe")
		} else {
			d.SetDocumentType(*v, cat)
		}
	}
	if v := req.Serie; v != nil {
		if *v != "" && !cat.HasSerie(d.Header.DocumentTypeID, *v) {
			verr.Add("serie", "la serie no corresponde al tipo de documento")
		} else {
			d.SetSerie(*v, cat)
		}
	}
	if req.ManualCorrelativo != nil || req.Correlativo != nil {
		manual := d.Header.ManualCorrelativo
		if req.ManualCorrelativo != nil {
			manual = *req.ManualCorrelativo
		}
		value := d.Header.Correlativo
		if req.Correlativo != nil {
			value = *req.Correlativo
		}
		if req.Correlativo != nil && !manual {
			verr.Add("correlativo", "active la digitación manual para editar el correlativo")
		} else {
			d.SetManualCorrelativo(manual, value, cat)
		}
	}

	var emission, transfer time.Time
	if v := req.EmissionDate; v != nil {
		t, err := time.ParseInLocation(dateLayout, *v, loc)
		if err != nil {
			verr.Add("fechaEmision", "fecha inválida")
		}
		emission = t
	}
	if v := req.TransferDate; v != nil {
		t, err := time.ParseInLocation(dateLayout, *v, loc)
		if err != nil {
			verr.Add("fechaTraslado", "fecha inválida")
		}
		transfer = t
	}
	d.SetDates(emission, transfer)

	if v := req.MotiveCode; v != nil {
		if _, ok := sunat.FindMotive(*v); *v != "" && !ok {
			verr.Add("motivoTrasladoId", "el motivo de traslado no existe")
		} else {
			d.SetMotive(*v, cat)
		}
	}
	if v := req.MotiveText; v != nil {
		if err := d.SetMotiveText(*v); err != nil {
			verr.Add("motivoTrasladoTexto", "el motivo seleccionado no admite descripción manual")
		}
	}

	p := d.Policy()
	if v := req.OriginWarehouseID; v != nil {
		if _, ok := cat.Warehouse(*v); *v != "" && !ok {
			verr.Add("almacenOrigenId", "el almacén no existe")
		} else {
			d.SelectWarehouse(*v, cat)
		}
	}
	if v := req.DestinationWarehouseID; v != nil {
		_, ok := cat.Warehouse(*v)
		switch {
		case *v != "" && !p.ShowDestinationWarehouse:
			verr.Add("almacenDestinoId", "el motivo seleccionado no usa almacén destino")
		case *v != "" && !ok:
			verr.Add("almacenDestinoId", "el almacén no existe")
		default:
			d.SelectDestinationWarehouse(*v, cat)
		}
	}
	if v := req.ClientID; v != nil {
		_, ok := cat.Client(*v)
		switch {
		case *v != "" && !p.ShowClient:
			verr.Add("clienteId", "el motivo seleccionado no usa cliente")
		case *v != "" && !ok:
			verr.Add("clienteId", "el cliente no existe")
		default:
			d.SelectClient(*v, cat)
		}
	}
	if v := req.SupplierID; v != nil {
		_, ok := cat.Supplier(*v)
		switch {
		case *v != "" && !p.ShowSupplier:
			verr.Add("proveedorId", "el motivo seleccionado no usa proveedor")
		case *v != "" && !ok:
			verr.Add("proveedorId", "el proveedor no existe")
		default:
			d.SelectSupplier(*v, cat)
		}
	}

	if v := req.ReferenceDocumentTypeID; v != nil {
		if _, ok := cat.ReferenceType(*v); *v != "" && !ok {
			verr.Add("documentoReferenciaTipoId", "el tipo de documento de referencia no existe")
		} else {
			d.Header.ReferenceDocumentTypeID = *v
		}
	}
	if v := req.ReferenceDocumentNumber; v != nil {
		d.Header.ReferenceDocumentNumber = *v
	}
	if v := req.CurrencyID; v != nil {
		if _, ok := cat.Currency(*v); *v != "" && !ok {
			verr.Add("monedaId", "la moneda no existe")
		} else {
			d.Header.CurrencyID = *v
		}
	}
	if v := req.ExchangeRate; v != nil {
		if !v.GreaterThan(decimal.Zero) {
			verr.Add("tipoCambio", "el tipo de cambio debe ser mayor a cero")
		} else {
			d.Header.ExchangeRate = *v
		}
	}

	if v := req.TransportMode; v != nil && *v != d.Header.TransportMode {
		d.Header.TransportMode = *v
		switch *v {
		case sunat.TransportModePublico:
			d.Header.DriverID, d.Header.VehicleID = "", ""
		case sunat.TransportModePrivado:
			d.Header.CarrierID = ""
		}
	}
	if v := req.CarrierID; v != nil {
		if _, ok := cat.Carrier(*v); *v != "" && !ok {
			verr.Add("transportistaId", "el transportista no existe")
		} else {
			d.Header.CarrierID = *v
		}
	}
	if v := req.DriverID; v != nil {
		if _, ok := cat.Driver(*v); *v != "" && !ok {
			verr.Add("conductorId", "el conductor no existe")
		} else {
			d.Header.DriverID = *v
		}
	}
	if v := req.VehicleID; v != nil {
		if _, ok := cat.Vehicle(*v); *v != "" && !ok {
			verr.Add("vehiculoId", "el vehículo no existe")
		} else {
			d.Header.VehicleID = *v
		}
	}
	if v := req.Observation; v != nil {
		d.Header.Observation = *v
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
