package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modalidades de traslado (SUNAT catálogo 18).
const (
	TransportModePublic  = "01"
	TransportModePrivate = "02"
)

// ShipmentHeader cabecera de una guía de remisión en construcción.
type ShipmentHeader struct {
	CompanyID string
	UserID    string

	DocumentTypeID    string
	SeriesID          string
	Serie             string
	Correlativo       string
	ManualCorrelativo bool // el usuario digita el correlativo; no se recalcula

	EmissionDate time.Time
	TransferDate time.Time

	MotiveCode string
	MotiveText string // texto libre que reemplaza la descripción del catálogo

	OriginWarehouseID      string
	DestinationWarehouseID string
	ClientID               string
	SupplierID             string

	OriginAddress      string // punto de partida
	DestinationAddress string // punto de llegada

	ReferenceDocumentTypeID string
	ReferenceDocumentNumber string // texto libre "SERIE-NUMERO"

	CurrencyID   string
	ExchangeRate decimal.Decimal

	TransportMode string
	CarrierID     string
	DriverID      string
	VehicleID     string

	Observation string
}

// ShipmentLine línea de detalle de la guía. Item es 1-based y contiguo.
// Los campos de origen solo se llenan al importar desde un documento de referencia.
type ShipmentLine struct {
	Item           int
	ProductID      string
	ProductCode    string
	ProductName    string
	UnitKey        string
	UnitLabel      string
	PresentationID *string
	Quantity       decimal.Decimal

	SaldoCantidad decimal.Decimal
	SaldoTemporal decimal.Decimal
	UnitCost      decimal.Decimal
	Amount        decimal.Decimal

	SourceDocumentID string
	SourceLineID     string
	SourceTable      string
}

// ShipmentResult respuesta del backend tras registrar la guía.
type ShipmentResult struct {
	ID          string
	Serie       string
	Correlativo string
	SunatStatus string // vacío si no se envió a SUNAT
	Message     string
}
