package guia

import (
	"time"

	"github.com/jhoicas/Guias-api/internal/application/dto"
	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func toDraftResponse(d *rules.Draft, cat *Catalogs, expiresAt time.Time) *dto.DraftResponse {
	h := d.Header
	resp := &dto.DraftResponse{
		ID: d.ID,
		Header: dto.HeaderResponse{
			CompanyID:               h.CompanyID,
			UserID:                  h.UserID,
			DocumentTypeID:          h.DocumentTypeID,
			SeriesID:                h.SeriesID,
			Serie:                   h.Serie,
			Correlativo:             h.Correlativo,
			ManualCorrelativo:       h.ManualCorrelativo,
			EmissionDate:            formatDate(h.EmissionDate),
			TransferDate:            formatDate(h.TransferDate),
			MotiveCode:              h.MotiveCode,
			MotiveText:              h.MotiveText,
			OriginWarehouseID:       h.OriginWarehouseID,
			DestinationWarehouseID:  h.DestinationWarehouseID,
			ClientID:                h.ClientID,
			SupplierID:              h.SupplierID,
			OriginAddress:           h.OriginAddress,
			DestinationAddress:      h.DestinationAddress,
			ReferenceDocumentTypeID: h.ReferenceDocumentTypeID,
			ReferenceDocumentNumber: h.ReferenceDocumentNumber,
			CurrencyID:              h.CurrencyID,
			ExchangeRate:            h.ExchangeRate,
			TransportMode:           h.TransportMode,
			CarrierID:               h.CarrierID,
			DriverID:                h.DriverID,
			VehicleID:               h.VehicleID,
			Observation:             h.Observation,
		},
		Lines:         make([]dto.LineResponse, 0, len(d.Lines)),
		Policy:        policyResponse(d.Policy()),
		SearchEnabled: rules.IsSearchEnabled(h.MotiveCode),
		RequiresSunat: d.RequiresSunat(cat),
		Warnings:      d.Warnings(),
		ExpiresAt:     expiresAt,
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	for _, l := range d.Lines {
		resp.Lines = append(resp.Lines, dto.LineResponse{
			Item:             l.Item,
			ProductID:        l.ProductID,
			ProductCode:      l.ProductCode,
			ProductName:      l.ProductName,
			UnitKey:          l.UnitKey,
			UnitLabel:        l.UnitLabel,
			PresentationID:   l.PresentationID,
			Quantity:         l.Quantity,
			SaldoCantidad:    l.SaldoCantidad,
			SaldoTemporal:    l.SaldoTemporal,
			UnitCost:         l.UnitCost,
			Amount:           l.Amount,
			SourceDocumentID: l.SourceDocumentID,
			SourceTable:      l.SourceTable,
		})
	}
	return resp
}
