package erpapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// wireDate acepta fechas "2006-01-02", RFC3339 o sin zona.
type wireDate struct{ time.Time }

func (d *wireDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("fecha inválida: %q", s)
}

type wireWarehouse struct {
	ID        string `json:"id"`
	Codigo    string `json:"codigo"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Ubigeo    string `json:"ubigeo"`
}

func toWarehouse(w wireWarehouse) entity.Warehouse {
	return entity.Warehouse{ID: w.ID, Code: w.Codigo, Name: w.Nombre, Address: w.Direccion, Ubigeo: w.Ubigeo}
}

type wireParty struct {
	ID              string `json:"id"`
	TipoDocumento   string `json:"tipoDocumento"`
	NumeroDocumento string `json:"numeroDocumento"`
	RazonSocial     string `json:"razonSocial"`
	Direccion       string `json:"direccion"`
}

func partyConverter(kind entity.PartyKind) func(wireParty) entity.Party {
	return func(p wireParty) entity.Party {
		return entity.Party{
			ID: p.ID, Kind: kind, DocumentType: p.TipoDocumento,
			DocumentNumber: p.NumeroDocumento, Name: p.RazonSocial, Address: p.Direccion,
		}
	}
}

type wirePresentation struct {
	ID                 string          `json:"id"`
	UnidadMedidaCodigo string          `json:"unidadMedidaCodigo"`
	UnidadMedidaNombre string          `json:"unidadMedidaNombre"`
	Factor             decimal.Decimal `json:"factor"`
}

type wireProduct struct {
	ID                 string             `json:"id"`
	Codigo             string             `json:"codigo"`
	Nombre             string             `json:"nombre"`
	UnidadMedidaCodigo string             `json:"unidadMedidaCodigo"`
	UnidadMedidaNombre string             `json:"unidadMedidaNombre"`
	Presentaciones     []wirePresentation `json:"presentaciones"`
}

func toProduct(p wireProduct) entity.Product {
	out := entity.Product{
		ID: p.ID, Code: p.Codigo, Name: p.Nombre,
		UnitCode: p.UnidadMedidaCodigo, UnitName: p.UnidadMedidaNombre,
		Presentations: make([]entity.Presentation, 0, len(p.Presentaciones)),
	}
	for _, pr := range p.Presentaciones {
		out.Presentations = append(out.Presentations, entity.Presentation{
			ID: pr.ID, UnitCode: pr.UnidadMedidaCodigo, UnitName: pr.UnidadMedidaNombre, Factor: pr.Factor,
		})
	}
	return out
}

type wireSeries struct {
	ID                  string `json:"id"`
	TipoDocumentoID     string `json:"tipoDocumentoId"`
	TipoDocumentoCodigo string `json:"tipoDocumentoCodigo"`
	TipoDocumentoNombre string `json:"tipoDocumentoNombre"`
	Serie               string `json:"serie"`
	UltimoCorrelativo   string `json:"ultimoCorrelativo"`
	RequiereSunat       bool   `json:"requiereSunat"`
}

func toSeries(s wireSeries) entity.Series {
	return entity.Series{
		ID: s.ID, DocumentTypeID: s.TipoDocumentoID, DocumentTypeCode: s.TipoDocumentoCodigo,
		DocumentTypeName: s.TipoDocumentoNombre, Serie: s.Serie,
		LastCorrelativo: s.UltimoCorrelativo, RequiresSunat: s.RequiereSunat,
	}
}

type wireOption struct {
	ID          string `json:"id"`
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
}

func toOption(o wireOption) entity.Option {
	return entity.Option{ID: o.ID, Code: o.Codigo, Label: o.Descripcion}
}

type wireCurrency struct {
	ID      string `json:"id"`
	Codigo  string `json:"codigo"`
	Nombre  string `json:"nombre"`
	Simbolo string `json:"simbolo"`
}

func toCurrency(c wireCurrency) entity.Currency {
	return entity.Currency{ID: c.ID, Code: c.Codigo, Name: c.Nombre, Symbol: c.Simbolo}
}

type wireCarrier struct {
	ID          string `json:"id,omitempty"`
	EmpresaID   string `json:"empresaId,omitempty"`
	RUC         string `json:"ruc"`
	RazonSocial string `json:"razonSocial"`
	RegistroMTC string `json:"registroMtc"`
}

func toCarrier(c wireCarrier) entity.Carrier {
	return entity.Carrier{ID: c.ID, RUC: c.RUC, Name: c.RazonSocial, MTCRegistration: c.RegistroMTC}
}

type wireDriver struct {
	ID              string `json:"id,omitempty"`
	EmpresaID       string `json:"empresaId,omitempty"`
	TipoDocumento   string `json:"tipoDocumento"`
	NumeroDocumento string `json:"numeroDocumento"`
	Nombres         string `json:"nombres"`
	Apellidos       string `json:"apellidos"`
	Licencia        string `json:"licencia"`
}

func toDriver(d wireDriver) entity.Driver {
	return entity.Driver{
		ID: d.ID, DocumentType: d.TipoDocumento, DocumentNumber: d.NumeroDocumento,
		FirstNames: d.Nombres, LastNames: d.Apellidos, License: d.Licencia,
	}
}

type wireVehicle struct {
	ID             string `json:"id,omitempty"`
	EmpresaID      string `json:"empresaId,omitempty"`
	Placa          string `json:"placa"`
	Marca          string `json:"marca"`
	CertificadoMTC string `json:"certificadoMtc"`
}

func toVehicle(v wireVehicle) entity.Vehicle {
	return entity.Vehicle{ID: v.ID, Plate: v.Placa, Brand: v.Marca, MTCCertificate: v.CertificadoMTC}
}

// wireReferenceSummary fila de /documentos-compra y /documentos-venta.
type wireReferenceSummary struct {
	ID           string   `json:"id"`
	Fecha        wireDate `json:"fecha"`
	Serie        string   `json:"serie"`
	Numero       string   `json:"numero"`
	RazonSocial  string   `json:"razonSocial"`
	MonedaCodigo string   `json:"monedaCodigo"`
}

func toReferenceSummary(r wireReferenceSummary) entity.ReferenceDocumentSummary {
	number := r.Numero
	if r.Serie != "" {
		number = r.Serie + "-" + r.Numero
	}
	return entity.ReferenceDocumentSummary{
		ID: r.ID, Date: r.Fecha.Time, DocumentNumber: number,
		CounterpartyName: r.RazonSocial, CurrencyCode: r.MonedaCodigo,
	}
}

type wireReferenceLine struct {
	ID                 string           `json:"id"`
	ProductoID         string           `json:"productoId"`
	ProductoCodigo     string           `json:"productoCodigo"`
	ProductoNombre     string           `json:"productoNombre"`
	UnidadMedidaCodigo string           `json:"unidadMedidaCodigo"`
	UnidadMedidaNombre string           `json:"unidadMedidaNombre"`
	PresentacionID     *string          `json:"presentacionId"`
	Cantidad           decimal.Decimal  `json:"cantidad"`
	SaldoCantidad      *decimal.Decimal `json:"saldoCantidad"`
	SaldoTemporal      *decimal.Decimal `json:"saldoTemporal"`
	CostoUnitario      decimal.Decimal  `json:"costoUnitario"`
	Importe            decimal.Decimal  `json:"importe"`
}

type wireReferenceDocument struct {
	ID              string              `json:"id"`
	TipoDocumentoID string              `json:"tipoDocumentoId"`
	Serie           string              `json:"serie"`
	Numero          string              `json:"numero"`
	Fecha           wireDate            `json:"fecha"`
	ClienteID       string              `json:"clienteId"`
	ProveedorID     string              `json:"proveedorId"`
	RazonSocial     string              `json:"razonSocial"`
	MonedaID        string              `json:"monedaId"`
	MonedaCodigo    string              `json:"monedaCodigo"`
	TipoCambio      decimal.Decimal     `json:"tipoCambio"`
	Detalles        []wireReferenceLine `json:"detalles"`
}

func toReferenceDocument(family entity.DocumentFamily, d wireReferenceDocument) *entity.ReferenceDocument {
	counterparty := d.ClienteID
	if family == entity.FamilyPurchase {
		counterparty = d.ProveedorID
	}
	doc := &entity.ReferenceDocument{
		ID: d.ID, Family: family, DocumentTypeID: d.TipoDocumentoID,
		Serie: d.Serie, Number: d.Numero, Date: d.Fecha.Time,
		CounterpartyID: counterparty, CounterpartyName: d.RazonSocial,
		CurrencyID: d.MonedaID, CurrencyCode: d.MonedaCodigo, ExchangeRate: d.TipoCambio,
		Lines: make([]entity.ReferenceDocumentLine, 0, len(d.Detalles)),
	}
	for _, l := range d.Detalles {
		doc.Lines = append(doc.Lines, entity.ReferenceDocumentLine{
			ID: l.ID, ProductID: l.ProductoID, ProductCode: l.ProductoCodigo, ProductName: l.ProductoNombre,
			UnitCode: l.UnidadMedidaCodigo, UnitName: l.UnidadMedidaNombre, PresentationID: l.PresentacionID,
			Quantity: l.Cantidad, SaldoCantidad: l.SaldoCantidad, SaldoTemporal: l.SaldoTemporal,
			UnitCost: l.CostoUnitario, Amount: l.Importe,
		})
	}
	return doc
}

// shipmentPayload cuerpo compartido por /guias-remision y /guias-remision/validar-sunat.
type shipmentPayload struct {
	EmpresaID                 string             `json:"empresaId"`
	UsuarioID                 string             `json:"usuarioId"`
	TipoDocumentoID           string             `json:"tipoDocumentoId"`
	SerieID                   string             `json:"serieId"`
	Serie                     string             `json:"serie"`
	Correlativo               string             `json:"correlativo"`
	FechaEmision              string             `json:"fechaEmision"`
	FechaTraslado             string             `json:"fechaTraslado"`
	MotivoTrasladoID          string             `json:"motivoTrasladoId"`
	MotivoTrasladoCodigoSunat string             `json:"motivoTrasladoCodigoSunat,omitempty"`
	MotivoTrasladoTexto       string             `json:"motivoTrasladoTexto,omitempty"`
	AlmacenOrigenID           string             `json:"almacenOrigenId,omitempty"`
	AlmacenDestinoID          string             `json:"almacenDestinoId,omitempty"`
	ClienteID                 string             `json:"clienteId,omitempty"`
	ProveedorID               string             `json:"proveedorId,omitempty"`
	PuntoPartida              string             `json:"puntoPartida"`
	PuntoLlegada              string             `json:"puntoLlegada"`
	DocumentoReferenciaTipoID string             `json:"documentoReferenciaTipoId,omitempty"`
	DocumentoReferenciaNumero string             `json:"documentoReferenciaNumero,omitempty"`
	MonedaID                  string             `json:"monedaId,omitempty"`
	TipoCambio                decimal.Decimal    `json:"tipoCambio"`
	ModalidadTraslado         string             `json:"modalidadTraslado,omitempty"`
	TransportistaID           string             `json:"transportistaId,omitempty"`
	ConductorID               string             `json:"conductorId,omitempty"`
	VehiculoID                string             `json:"vehiculoId,omitempty"`
	Observacion               string             `json:"observacion,omitempty"`
	Items                     []shipmentLineWire `json:"items"`
}

type shipmentLineWire struct {
	Item                     int             `json:"item"`
	ProductoID               string          `json:"productoId"`
	UnidadMedida             string          `json:"unidadMedida"`
	PresentacionID           *string         `json:"presentacionId"`
	Cantidad                 decimal.Decimal `json:"cantidad"`
	SaldoCantidad            decimal.Decimal `json:"saldoCantidad"`
	SaldoTemporal            decimal.Decimal `json:"saldoTemporal"`
	CostoUnitario            decimal.Decimal `json:"costoUnitario"`
	Importe                  decimal.Decimal `json:"importe"`
	DocumentoOrigenID        string          `json:"documentoOrigenId,omitempty"`
	DocumentoOrigenDetalleID string          `json:"documentoOrigenDetalleId,omitempty"`
	TablaOrigen              string          `json:"tablaOrigen,omitempty"`
}

type shipmentResultWire struct {
	ID          string `json:"id"`
	Serie       string `json:"serie"`
	Correlativo string `json:"correlativo"`
	EstadoSunat string `json:"estadoSunat"`
}
