package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
)

// OpenDraftRequest body opcional para POST /api/guias/borradores.
// WarehouseID reemplaza el almacén de trabajo del token o de la configuración.
type OpenDraftRequest struct {
	WarehouseID string `json:"almacenId" validate:"omitempty,max=64"`
}

// UpdateHeaderRequest body para PATCH /api/guias/borradores/:id/cabecera.
// Solo se aplican los campos presentes; las fechas van en formato 2006-01-02.
type UpdateHeaderRequest struct {
	DocumentTypeID    *string `json:"tipoDocumentoId" validate:"omitempty,max=64"`
	Serie             *string `json:"serie" validate:"omitempty,max=10"`
	ManualCorrelativo *bool   `json:"correlativoManual"`
	Correlativo       *string `json:"correlativo" validate:"omitempty,max=20"`

	EmissionDate *string `json:"fechaEmision" validate:"omitempty,datetime=2006-01-02"`
	TransferDate *string `json:"fechaTraslado" validate:"omitempty,datetime=2006-01-02"`

	MotiveCode *string `json:"motivoTrasladoId" validate:"omitempty,max=20"`
	MotiveText *string `json:"motivoTrasladoTexto" validate:"omitempty,max=250"`

	OriginWarehouseID      *string `json:"almacenOrigenId" validate:"omitempty,max=64"`
	DestinationWarehouseID *string `json:"almacenDestinoId" validate:"omitempty,max=64"`
	ClientID               *string `json:"clienteId" validate:"omitempty,max=64"`
	SupplierID             *string `json:"proveedorId" validate:"omitempty,max=64"`

	ReferenceDocumentTypeID *string `json:"documentoReferenciaTipoId" validate:"omitempty,max=64"`
	ReferenceDocumentNumber *string `json:"documentoReferenciaNumero" validate:"omitempty,max=100"`

	CurrencyID   *string          `json:"monedaId" validate:"omitempty,max=64"`
	ExchangeRate *decimal.Decimal `json:"tipoCambio"`

	TransportMode *string `json:"modalidadTraslado" validate:"omitempty,oneof=01 02"`
	CarrierID     *string `json:"transportistaId" validate:"omitempty,max=64"`
	DriverID      *string `json:"conductorId" validate:"omitempty,max=64"`
	VehicleID     *string `json:"vehiculoId" validate:"omitempty,max=64"`

	Observation *string `json:"observacion" validate:"omitempty,max=500"`
}

// LineRequest body para agregar o actualizar una línea.
// UnitKey vacío usa la unidad base del producto.
type LineRequest struct {
	ProductID string          `json:"productoId" validate:"required,max=64"`
	UnitKey   string          `json:"unidadMedida" validate:"omitempty,max=80"`
	Quantity  decimal.Decimal `json:"cantidad"`
}

// HeaderResponse cabecera del borrador.
type HeaderResponse struct {
	CompanyID         string `json:"empresaId"`
	UserID            string `json:"usuarioId"`
	DocumentTypeID    string `json:"tipoDocumentoId"`
	SeriesID          string `json:"serieId"`
	Serie             string `json:"serie"`
	Correlativo       string `json:"correlativo"`
	ManualCorrelativo bool   `json:"correlativoManual"`

	EmissionDate string `json:"fechaEmision"`
	TransferDate string `json:"fechaTraslado"`

	MotiveCode string `json:"motivoTrasladoId"`
	MotiveText string `json:"motivoTrasladoTexto"`

	OriginWarehouseID      string `json:"almacenOrigenId"`
	DestinationWarehouseID string `json:"almacenDestinoId"`
	ClientID               string `json:"clienteId"`
	SupplierID             string `json:"proveedorId"`
	OriginAddress          string `json:"puntoPartida"`
	DestinationAddress     string `json:"puntoLlegada"`

	ReferenceDocumentTypeID string `json:"documentoReferenciaTipoId"`
	ReferenceDocumentNumber string `json:"documentoReferenciaNumero"`

	CurrencyID   string          `json:"monedaId"`
	ExchangeRate decimal.Decimal `json:"tipoCambio"`

	TransportMode string `json:"modalidadTraslado"`
	CarrierID     string `json:"transportistaId"`
	DriverID      string `json:"conductorId"`
	VehicleID     string `json:"vehiculoId"`

	Observation string `json:"observacion"`
}

// LineResponse línea del borrador.
type LineResponse struct {
	Item             int             `json:"item"`
	ProductID        string          `json:"productoId"`
	ProductCode      string          `json:"productoCodigo"`
	ProductName      string          `json:"productoNombre"`
	UnitKey          string          `json:"unidadMedida"`
	UnitLabel        string          `json:"unidadMedidaNombre"`
	PresentationID   *string         `json:"presentacionId"`
	Quantity         decimal.Decimal `json:"cantidad"`
	SaldoCantidad    decimal.Decimal `json:"saldoCantidad"`
	SaldoTemporal    decimal.Decimal `json:"saldoTemporal"`
	UnitCost         decimal.Decimal `json:"costoUnitario"`
	Amount           decimal.Decimal `json:"importe"`
	SourceDocumentID string          `json:"documentoOrigenId,omitempty"`
	SourceTable      string          `json:"tablaOrigen,omitempty"`
}

// DraftResponse estado completo del borrador para el formulario.
type DraftResponse struct {
	ID            string         `json:"id"`
	Header        HeaderResponse `json:"cabecera"`
	Lines         []LineResponse `json:"items"`
	Policy        PolicyResponse `json:"politica"`
	SearchEnabled bool           `json:"busquedaReferenciaHabilitada"`
	RequiresSunat bool           `json:"requiereSunat"`
	Warnings      []string       `json:"advertencias"`
	ExpiresAt     time.Time      `json:"expiraEn"`
}

// UnitOptionsResponse opciones de unidad de un producto.
type UnitOptionsResponse struct {
	ProductID string                       `json:"productoId"`
	Items     []entity.UnitOfMeasureOption `json:"items"`
}

// CatalogOptionsResponse resultado de búsqueda sobre un catálogo en caché.
type CatalogOptionsResponse struct {
	Kind  string          `json:"catalogo"`
	Items []entity.Option `json:"items"`
}

// ReferenceSearchRequest query de GET /api/guias/borradores/:id/documentos-referencia.
// Desde/Hasta vacíos equivalen a los últimos 30 días.
type ReferenceSearchRequest struct {
	PageRequest
	ClientID       string `query:"clienteId" validate:"omitempty,max=64"`
	SupplierID     string `query:"proveedorId" validate:"omitempty,max=64"`
	DocumentTypeID string `query:"tipoDocumentoId" validate:"omitempty,max=64"`
	CurrencyID     string `query:"monedaId" validate:"omitempty,max=64"`
	Term           string `query:"q" validate:"omitempty,max=50"`
	From           string `query:"desde" validate:"omitempty,datetime=2006-01-02"`
	To             string `query:"hasta" validate:"omitempty,datetime=2006-01-02"`
}

// ReferenceSearchResponse página de documentos de referencia.
// Message es informativo cuando no hay resultados.
type ReferenceSearchResponse struct {
	Family  string                            `json:"familia"`
	Items   []entity.ReferenceDocumentSummary `json:"items"`
	Page    PageResponse                      `json:"page"`
	Message string                            `json:"message,omitempty"`
}

// SubmitResponse resultado de la emisión.
type SubmitResponse struct {
	ID          string `json:"id"`
	Serie       string `json:"serie"`
	Correlativo string `json:"correlativo"`
	Mode        string `json:"modo"` // REGISTRO | REGISTRO_SUNAT
	SunatStatus string `json:"estadoSunat,omitempty"`
	Message     string `json:"message,omitempty"`
}
