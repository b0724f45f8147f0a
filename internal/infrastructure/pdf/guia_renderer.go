// Package pdf implementa la vista previa imprimible de la guía de remisión.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de documento   │  Serie-Correlativo + Fechas   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TRASLADO: Motivo / Partida / Llegada / Destinatario         │
//	│  TRANSPORTE: Modalidad / Transportista / Conductor / Placa   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Código | Descripción | Unidad | Cantidad      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Observación + QR + Leyenda de vista previa          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appguia "github.com/jhoicas/Guias-api/internal/application/guia"
)

const displayDate = "02/01/2006"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoRenderer implementa guia.PDFRenderer usando Maroto v2.
type MarotoRenderer struct {
	companyName string
}

// NewMarotoRenderer construye el renderer. companyName aparece como autor del PDF.
func NewMarotoRenderer(companyName string) *MarotoRenderer {
	return &MarotoRenderer{companyName: companyName}
}

// RenderDraft genera el PDF del borrador y devuelve sus bytes.
func (r *MarotoRenderer) RenderDraft(ctx context.Context, doc *appguia.DraftDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Guía de remisión "+documentNumber(doc), true).
		WithAuthor(nonEmpty(r.companyName, "Guias API"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(transferRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(transportRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tipo de documento (izq) y número + fechas (der).
func headerRow(doc *appguia.DraftDocument) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(strings.ToUpper(nonEmpty(doc.DocumentTypeName, "Guía de remisión")), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Referencia: "+nonEmpty(doc.Reference, "—"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(documentNumber(doc), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Emisión: "+formatDate(doc.EmissionDate), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Inicio de traslado: "+formatDate(doc.TransferDate), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// transferRows: motivo, partida, llegada y destinatario.
func transferRows(doc *appguia.DraftDocument) []core.Row {
	motive := strings.TrimSpace(doc.MotiveCode + " " + doc.MotiveDescription)
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("DATOS DEL TRASLADO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)),
		labeledRow("Motivo", nonEmpty(motive, "—")),
		labeledRow("Punto de partida", nonEmpty(joinNonEmpty(" - ", doc.OriginWarehouse, doc.OriginAddress), "—")),
		labeledRow("Punto de llegada", nonEmpty(joinNonEmpty(" - ", doc.DestinationWarehouse, doc.DestinationAddress), "—")),
	}
	if doc.CounterpartyName != "" {
		rows = append(rows, labeledRow(doc.CounterpartyRole, joinNonEmpty(" - ", doc.CounterpartyDoc, doc.CounterpartyName)))
	}
	return rows
}

// transportRow: modalidad y datos del transporte.
func transportRow(doc *appguia.DraftDocument) core.Row {
	detail := doc.Carrier
	if detail == "" {
		detail = joinNonEmpty("   |   ", prefixed("Conductor: ", doc.Driver), prefixed("Placa: ", doc.Vehicle))
	} else {
		detail = "Transportista: " + detail
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TRANSPORTE: "+nonEmpty(doc.TransportMode, "sin modalidad"), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(detail, "—"), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 1, align.Center),
		h("Código", 2, align.Left),
		h("Descripción", 5, align.Left),
		h("Unidad", 2, align.Center),
		h("Cantidad", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea del borrador.
func tableDetailRows(doc *appguia.DraftDocument) []core.Row {
	if len(doc.Lines) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin ítems", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(l.Item), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.ProductCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(l.UnitLabel, l.UnitKey), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.Quantity.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// footerRows: observación, QR con los datos del borrador y leyenda.
func footerRows(doc *appguia.DraftDocument) []core.Row {
	var rows []core.Row
	if doc.Observation != "" {
		rows = append(rows, labeledRow("Observación", doc.Observation))
	}
	rows = append(rows, row.New(40).Add(
		col.New(3).Add(code.NewQr(qrPayload(doc), props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("VISTA PREVIA", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 4, Left: 3, Color: colorPrimary,
			}),
			text.New("Este documento no tiene validez tributaria hasta ser registrado"+
				" y, en su caso, aceptado por SUNAT.", props.Text{
				Size: 8, Top: 12, Left: 3, Color: colorGray,
			}),
			text.New("Generado: "+doc.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Top: 22, Left: 3, Color: colorGray,
			}),
		),
	))
	return rows
}

func labeledRow(label, value string) core.Row {
	return row.New(5).Add(
		col.New(3).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 0.5})),
		col.New(9).Add(text.New(value, props.Text{Size: 8, Top: 0.5})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// documentNumber "SERIE-CORRELATIVO"; sin numeración usa el ID del borrador.
func documentNumber(doc *appguia.DraftDocument) string {
	if doc.Serie == "" {
		return "Borrador " + doc.DraftID
	}
	return joinNonEmpty("-", doc.Serie, doc.Correlativo)
}

// qrPayload campos separados por "|" al estilo de la representación impresa SUNAT.
func qrPayload(doc *appguia.DraftDocument) string {
	return strings.Join([]string{
		doc.Serie, doc.Correlativo, formatDate(doc.EmissionDate), doc.MotiveCode, doc.CounterpartyDoc,
	}, "|")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format(displayDate)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func prefixed(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
