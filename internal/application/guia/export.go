package guia

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
	"github.com/jhoicas/Guias-api/pkg/sunat"
)

// DraftDocument vista de solo lectura del borrador con los nombres ya resueltos,
// usada por la vista previa PDF y la exportación a Excel.
type DraftDocument struct {
	DraftID              string
	DocumentTypeName     string
	Serie                string
	Correlativo          string
	EmissionDate         time.Time
	TransferDate         time.Time
	MotiveCode           string
	MotiveDescription    string
	OriginWarehouse      string
	DestinationWarehouse string
	OriginAddress        string
	DestinationAddress   string
	CounterpartyRole     string // Cliente | Proveedor
	CounterpartyName     string
	CounterpartyDoc      string
	Reference            string
	CurrencyCode         string
	TransportMode        string
	Carrier              string
	Driver               string
	Vehicle              string
	Observation          string
	Lines                []entity.ShipmentLine
	GeneratedAt          time.Time
}

// PDFRenderer genera la representación imprimible del borrador.
type PDFRenderer interface {
	RenderDraft(ctx context.Context, doc *DraftDocument) ([]byte, error)
}

// LinesExporter exporta el detalle del borrador a una hoja de cálculo.
type LinesExporter interface {
	ExportLines(ctx context.Context, doc *DraftDocument) ([]byte, error)
}

// ExportUseCase vista previa y exportación de borradores.
type ExportUseCase struct {
	drafts *DraftUseCase
	pdf    PDFRenderer
	xlsx   LinesExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(drafts *DraftUseCase, pdf PDFRenderer, xlsx LinesExporter) *ExportUseCase {
	return &ExportUseCase{drafts: drafts, pdf: pdf, xlsx: xlsx}
}

// PDF devuelve el PDF y un nombre de archivo sugerido.
func (uc *ExportUseCase) PDF(ctx context.Context, sc rules.SessionContext, id string) ([]byte, string, error) {
	doc, err := uc.drafts.Document(sc, id)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.RenderDraft(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}
	return b, fileName(doc, "pdf"), nil
}

// Lines devuelve el detalle en formato xlsx y un nombre de archivo sugerido.
func (uc *ExportUseCase) Lines(ctx context.Context, sc rules.SessionContext, id string) ([]byte, string, error) {
	doc, err := uc.drafts.Document(sc, id)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.xlsx.ExportLines(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("exportar líneas: %w", err)
	}
	return b, fileName(doc, "xlsx"), nil
}

func fileName(doc *DraftDocument, ext string) string {
	if doc.Serie != "" && doc.Correlativo != "" {
		return fmt.Sprintf("guia-%s-%s.%s", doc.Serie, doc.Correlativo, ext)
	}
	return fmt.Sprintf("guia-borrador-%s.%s", doc.DraftID, ext)
}

// Document arma la vista del borrador con nombres de catálogo.
func (uc *DraftUseCase) Document(sc rules.SessionContext, id string) (*DraftDocument, error) {
	var doc *DraftDocument
	err := uc.withSession(sc, id, func(s *session) error {
		doc = buildDocument(s.draft, s.catalogs, uc.now())
		return nil
	})
	return doc, err
}

func buildDocument(d *rules.Draft, cat *Catalogs, now time.Time) *DraftDocument {
	h := d.Header
	doc := &DraftDocument{
		DraftID:            d.ID,
		Serie:              h.Serie,
		Correlativo:        h.Correlativo,
		EmissionDate:       h.EmissionDate,
		TransferDate:       h.TransferDate,
		MotiveCode:         h.MotiveCode,
		OriginAddress:      h.OriginAddress,
		DestinationAddress: h.DestinationAddress,
		Reference:          h.ReferenceDocumentNumber,
		TransportMode:      transportModeLabel(h.TransportMode),
		Observation:        h.Observation,
		Lines:              append([]entity.ShipmentLine(nil), d.Lines...),
		GeneratedAt:        now,
	}
	if s, ok := d.SelectedSeries(cat); ok {
		doc.DocumentTypeName = s.DocumentTypeName
	}
	doc.MotiveDescription = h.MotiveText
	if doc.MotiveDescription == "" {
		if m, ok := sunat.FindMotive(h.MotiveCode); ok {
			doc.MotiveDescription = m.Description
		}
	}
	if w, ok := cat.Warehouse(h.OriginWarehouseID); ok {
		doc.OriginWarehouse = w.Name
	}
	if w, ok := cat.Warehouse(h.DestinationWarehouseID); ok {
		doc.DestinationWarehouse = w.Name
	}
	if p, ok := cat.Client(h.ClientID); ok && h.ClientID != "" {
		doc.CounterpartyRole, doc.CounterpartyName, doc.CounterpartyDoc = "Cliente", p.Name, p.DocumentNumber
	} else if p, ok := cat.Supplier(h.SupplierID); ok && h.SupplierID != "" {
		doc.CounterpartyRole, doc.CounterpartyName, doc.CounterpartyDoc = "Proveedor", p.Name, p.DocumentNumber
	}
	if t, ok := cat.ReferenceType(h.ReferenceDocumentTypeID); ok && doc.Reference != "" {
		doc.Reference = t.Label + " " + doc.Reference
	}
	if c, ok := cat.Currency(h.CurrencyID); ok {
		doc.CurrencyCode = c.Code
	}
	if c, ok := cat.Carrier(h.CarrierID); ok {
		doc.Carrier = strings.TrimSpace(c.RUC + " " + c.Name)
	}
	if dr, ok := cat.Driver(h.DriverID); ok {
		doc.Driver = strings.TrimSpace(dr.FullName() + " (" + dr.License + ")")
	}
	if v, ok := cat.Vehicle(h.VehicleID); ok {
		doc.Vehicle = v.Plate
	}
	return doc
}

func transportModeLabel(code string) string {
	switch code {
	case sunat.TransportModePublico:
		return "Transporte público"
	case sunat.TransportModePrivado:
		return "Transporte privado"
	default:
		return ""
	}
}
