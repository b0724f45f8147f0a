// Package xlsx exporta el detalle de la guía a una hoja de cálculo.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	appguia "github.com/jhoicas/Guias-api/internal/application/guia"
)

const (
	linesSheet  = "Items"
	headerSheet = "Guia"
)

var linesHeader = []interface{}{
	"Ítem", "Código", "Producto", "Unidad", "Cantidad",
	"Saldo", "Costo unitario", "Importe", "Documento origen",
}

// ExcelizeExporter implementa guia.LinesExporter.
type ExcelizeExporter struct{}

func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// ExportLines arma un libro con dos hojas: Items con una fila por línea y Guia con
// los datos de cabecera ya resueltos.
func (e *ExcelizeExporter) ExportLines(ctx context.Context, doc *appguia.DraftDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), linesSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	if err := f.SetSheetRow(linesSheet, "A1", &linesHeader); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	if err := f.SetRowStyle(linesSheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	for i, l := range doc.Lines {
		row := []interface{}{
			l.Item,
			l.ProductCode,
			l.ProductName,
			nonEmpty(l.UnitLabel, l.UnitKey),
			l.Quantity.InexactFloat64(),
			l.SaldoCantidad.InexactFloat64(),
			l.UnitCost.InexactFloat64(),
			l.Amount.InexactFloat64(),
			l.SourceDocumentID,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(linesSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", l.Item, err)
		}
	}
	if err := f.SetColWidth(linesSheet, "C", "C", 40); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
	}

	if err := writeHeaderSheet(f, doc, bold); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeaderSheet(f *excelize.File, doc *appguia.DraftDocument, bold int) error {
	if _, err := f.NewSheet(headerSheet); err != nil {
		return fmt.Errorf("xlsx: hoja %s: %w", headerSheet, err)
	}
	pairs := [][2]string{
		{"Documento", doc.DocumentTypeName},
		{"Serie", doc.Serie},
		{"Correlativo", doc.Correlativo},
		{"Fecha de emisión", formatDate(doc)},
		{"Motivo", strings.TrimSpace(doc.MotiveCode + " " + doc.MotiveDescription)},
		{"Punto de partida", doc.OriginAddress},
		{"Punto de llegada", doc.DestinationAddress},
		{nonEmpty(doc.CounterpartyRole, "Destinatario"), doc.CounterpartyName},
		{"Referencia", doc.Reference},
		{"Moneda", doc.CurrencyCode},
		{"Modalidad", doc.TransportMode},
		{"Observación", doc.Observation},
	}
	for i, p := range pairs {
		row := []interface{}{p[0], p[1]}
		if err := f.SetSheetRow(headerSheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return fmt.Errorf("xlsx: cabecera %s: %w", p[0], err)
		}
	}
	if err := f.SetColStyle(headerSheet, "A", bold); err != nil {
		return fmt.Errorf("xlsx: estilo: %w", err)
	}
	return f.SetColWidth(headerSheet, "A", "B", 28)
}

func formatDate(doc *appguia.DraftDocument) string {
	if doc.EmissionDate.IsZero() {
		return ""
	}
	return doc.EmissionDate.Format("02/01/2006")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
