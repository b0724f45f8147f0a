package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentFamily familia de documentos de referencia importables.
type DocumentFamily string

const (
	FamilyNone     DocumentFamily = "NONE"
	FamilyPurchase DocumentFamily = "PURCHASE"
	FamilySale     DocumentFamily = "SALE"
)

// Tablas de origen usadas por el backend para conciliar líneas importadas.
const (
	SourceTablePurchase = "DOCUMENTO_COMPRA"
	SourceTableSale     = "DOCUMENTO_VENTA"
)

// SourceTable devuelve el nombre de tabla de origen de la familia.
func (f DocumentFamily) SourceTable() string {
	switch f {
	case FamilyPurchase:
		return SourceTablePurchase
	case FamilySale:
		return SourceTableSale
	default:
		return ""
	}
}

// ReferenceDocumentSummary fila de resultado de búsqueda (solo lectura).
type ReferenceDocumentSummary struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	DocumentNumber   string    `json:"documentNumber"`
	CounterpartyName string    `json:"counterpartyName"`
	CurrencyCode     string    `json:"currencyCode"`
}

// ReferenceDocument documento de compra o venta completo con sus líneas.
type ReferenceDocument struct {
	ID               string
	Family           DocumentFamily
	DocumentTypeID   string
	Serie            string
	Number           string
	Date             time.Time
	CounterpartyID   string
	CounterpartyName string
	CurrencyID       string
	CurrencyCode     string
	ExchangeRate     decimal.Decimal
	Lines            []ReferenceDocumentLine
}

// ReferenceDocumentLine línea del documento de referencia.
// SaldoCantidad y SaldoTemporal son nil cuando el backend no los envía.
type ReferenceDocumentLine struct {
	ID             string
	ProductID      string
	ProductCode    string
	ProductName    string
	UnitCode       string
	UnitName       string
	PresentationID *string
	Quantity       decimal.Decimal
	SaldoCantidad  *decimal.Decimal
	SaldoTemporal  *decimal.Decimal
	UnitCost       decimal.Decimal
	Amount         decimal.Decimal
}

// Page página de resultados (1-based).
type Page[T any] struct {
	Items        []T
	Page         int
	TotalPages   int
	TotalRecords int
}
