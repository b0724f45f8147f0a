package guia

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
)

// ImportedHeader campos de cabecera que aporta un documento de referencia.
type ImportedHeader struct {
	ClientID                string
	SupplierID              string
	CurrencyID              string
	ExchangeRate            decimal.Decimal
	ReferenceDocumentTypeID string
	ReferenceDocumentNumber string
}

// ReferenceNumber formato libre "SERIE-NUMERO" del documento de referencia.
func ReferenceNumber(doc *entity.ReferenceDocument) string {
	serie := strings.TrimSpace(doc.Serie)
	number := strings.TrimSpace(doc.Number)
	switch {
	case serie == "":
		return number
	case number == "":
		return serie
	default:
		return serie + "-" + number
	}
}

// MapReferenceLines convierte cada línea del documento en una línea de guía.
// Saldos ausentes toman la cantidad original; cada línea lleva el ID del documento
// y la tabla de origen para la conciliación en el backend.
func MapReferenceLines(doc *entity.ReferenceDocument) []entity.ShipmentLine {
	table := doc.Family.SourceTable()
	lines := make([]entity.ShipmentLine, 0, len(doc.Lines))
	for i, src := range doc.Lines {
		unitKey := src.UnitCode
		if src.PresentationID != nil && *src.PresentationID != "" {
			unitKey = src.UnitCode + ":" + *src.PresentationID
		}
		label := src.UnitName
		if label == "" {
			label = src.UnitCode
		}
		saldo := src.Quantity
		if src.SaldoCantidad != nil {
			saldo = *src.SaldoCantidad
		}
		temporal := src.Quantity
		if src.SaldoTemporal != nil {
			temporal = *src.SaldoTemporal
		}
		amount := src.Amount
		if amount.IsZero() {
			amount = src.Quantity.Mul(src.UnitCost)
		}
		lines = append(lines, entity.ShipmentLine{
			Item:             i + 1,
			ProductID:        src.ProductID,
			ProductCode:      src.ProductCode,
			ProductName:      src.ProductName,
			UnitKey:          unitKey,
			UnitLabel:        label,
			PresentationID:   src.PresentationID,
			Quantity:         src.Quantity,
			SaldoCantidad:    saldo,
			SaldoTemporal:    temporal,
			UnitCost:         src.UnitCost,
			Amount:           amount,
			SourceDocumentID: doc.ID,
			SourceLineID:     src.ID,
			SourceTable:      table,
		})
	}
	return lines
}

// MapReferenceHeader extrae los campos de cabecera según la familia del documento:
// en compras la contraparte es el proveedor, en ventas el cliente.
func MapReferenceHeader(doc *entity.ReferenceDocument) ImportedHeader {
	h := ImportedHeader{
		CurrencyID:              doc.CurrencyID,
		ExchangeRate:            doc.ExchangeRate,
		ReferenceDocumentTypeID: doc.DocumentTypeID,
		ReferenceDocumentNumber: ReferenceNumber(doc),
	}
	switch doc.Family {
	case entity.FamilyPurchase:
		h.SupplierID = doc.CounterpartyID
	case entity.FamilySale:
		h.ClientID = doc.CounterpartyID
	}
	return h
}

// ApplyReference aplica cabecera y líneas importadas al borrador y recalcula direcciones.
func (d *Draft) ApplyReference(doc *entity.ReferenceDocument, lk Lookup) {
	h := MapReferenceHeader(doc)
	p := d.Policy()
	if h.SupplierID != "" && p.ShowSupplier {
		d.Header.SupplierID = h.SupplierID
	}
	if h.ClientID != "" && p.ShowClient {
		d.Header.ClientID = h.ClientID
	}
	if h.CurrencyID != "" {
		d.Header.CurrencyID = h.CurrencyID
	}
	if !h.ExchangeRate.IsZero() {
		d.Header.ExchangeRate = h.ExchangeRate
	}
	d.Header.ReferenceDocumentTypeID = h.ReferenceDocumentTypeID
	d.Header.ReferenceDocumentNumber = h.ReferenceDocumentNumber
	d.ReplaceLines(MapReferenceLines(doc))
	d.RecomputeAddresses(lk)
}
