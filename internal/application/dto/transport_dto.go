package dto

// CreateCarrierRequest body para crear un transportista desde el formulario de la guía.
type CreateCarrierRequest struct {
	RUC             string `json:"ruc" validate:"required,len=11,numeric"`
	Name            string `json:"razonSocial" validate:"required,min=1,max=200"`
	MTCRegistration string `json:"registroMtc" validate:"omitempty,max=20"`
}

// CreateDriverRequest body para crear un conductor.
type CreateDriverRequest struct {
	DocumentType   string `json:"tipoDocumento" validate:"required,oneof=1 4 7"`
	DocumentNumber string `json:"numeroDocumento" validate:"required,min=8,max=15"`
	FirstNames     string `json:"nombres" validate:"required,max=100"`
	LastNames      string `json:"apellidos" validate:"omitempty,max=100"`
	License        string `json:"licencia" validate:"required,min=9,max=10"`
}

// CreateVehicleRequest body para crear un vehículo.
type CreateVehicleRequest struct {
	Plate          string `json:"placa" validate:"required,min=6,max=8"`
	Brand          string `json:"marca" validate:"omitempty,max=50"`
	MTCCertificate string `json:"certificadoMtc" validate:"omitempty,max=30"`
}

// TransportCreatedResponse registro creado y seleccionado en el borrador.
type TransportCreatedResponse struct {
	ID    string        `json:"id"`
	Label string        `json:"label"`
	Draft DraftResponse `json:"borrador"`
}
