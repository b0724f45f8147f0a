package guia

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Guias-api/internal/domain"
	"github.com/jhoicas/Guias-api/internal/domain/entity"
)

// SessionContext contexto fijo de la sesión (empresa, usuario y almacén de trabajo).
// Se recibe del token o de la configuración; nunca es una constante embebida.
type SessionContext struct {
	CompanyID   string
	UserID      string
	WarehouseID string
}

// Lookup acceso de solo lectura a los catálogos en caché de la sesión.
type Lookup interface {
	WarehouseAddress(id string) string
	ClientAddress(id string) string
	SupplierAddress(id string) string
	Series() []entity.Series
}

// Draft agregado en memoria de una guía de remisión en construcción.
// No es seguro para uso concurrente; el llamador serializa el acceso.
type Draft struct {
	ID     string
	Header entity.ShipmentHeader
	Lines  []entity.ShipmentLine
}

// NewDraft crea un borrador vacío con los valores por defecto de la sesión.
func NewDraft(id string, sc SessionContext, now time.Time) *Draft {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return &Draft{
		ID: id,
		Header: entity.ShipmentHeader{
			CompanyID:         sc.CompanyID,
			UserID:            sc.UserID,
			OriginWarehouseID: sc.WarehouseID,
			EmissionDate:      today,
			TransferDate:      today,
			ExchangeRate:      decimal.NewFromInt(1),
		},
		Lines: []entity.ShipmentLine{},
	}
}

// Policy política vigente según el motivo seleccionado.
func (d *Draft) Policy() RoutingPolicy {
	return ResolvePolicy(d.Header.MotiveCode)
}

// SetMotive cambia el motivo de traslado. Limpia las partes que la nueva política oculta
// y el texto libre si ya no está permitido, luego recalcula direcciones.
func (d *Draft) SetMotive(code string, lk Lookup) {
	d.Header.MotiveCode = code
	p := d.Policy()
	if !p.ShowClient {
		d.Header.ClientID = ""
	}
	if !p.ShowSupplier {
		d.Header.SupplierID = ""
	}
	if !p.ShowDestinationWarehouse {
		d.Header.DestinationWarehouseID = ""
	}
	if !p.AllowManualReasonText {
		d.Header.MotiveText = ""
	}
	d.RecomputeAddresses(lk)
}

// SetMotiveText asigna el texto libre del motivo; solo si la política lo permite.
func (d *Draft) SetMotiveText(text string) error {
	if text != "" && !d.Policy().AllowManualReasonText {
		return fmt.Errorf("%w: el motivo %q no admite descripción manual", domain.ErrInvalidInput, d.Header.MotiveCode)
	}
	d.Header.MotiveText = text
	return nil
}

// SelectWarehouse cambia el almacén de origen.
func (d *Draft) SelectWarehouse(id string, lk Lookup) {
	d.Header.OriginWarehouseID = id
	d.RecomputeAddresses(lk)
}

// SelectDestinationWarehouse cambia el almacén destino.
func (d *Draft) SelectDestinationWarehouse(id string, lk Lookup) {
	d.Header.DestinationWarehouseID = id
	d.RecomputeAddresses(lk)
}

// SelectClient cambia el cliente.
func (d *Draft) SelectClient(id string, lk Lookup) {
	d.Header.ClientID = id
	d.RecomputeAddresses(lk)
}

// SelectSupplier cambia el proveedor.
func (d *Draft) SelectSupplier(id string, lk Lookup) {
	d.Header.SupplierID = id
	d.RecomputeAddresses(lk)
}

// RecomputeAddresses recalcula partida y llegada. Solo escribe los campos cuyo valor
// cambió y devuelve true si hubo algún cambio.
func (d *Draft) RecomputeAddresses(lk Lookup) bool {
	sel := AddressSelections{
		OriginWarehouseID:      d.Header.OriginWarehouseID,
		DestinationWarehouseID: d.Header.DestinationWarehouseID,
		ClientID:               d.Header.ClientID,
		SupplierID:             d.Header.SupplierID,
	}
	if lk != nil {
		sel.WarehouseAddress = lk.WarehouseAddress
		sel.ClientAddress = lk.ClientAddress
		sel.SupplierAddress = lk.SupplierAddress
	}
	addr := ResolveAddresses(d.Policy(), sel)
	changed := false
	if addr.Origin != d.Header.OriginAddress {
		d.Header.OriginAddress = addr.Origin
		changed = true
	}
	if addr.Destination != d.Header.DestinationAddress {
		d.Header.DestinationAddress = addr.Destination
		changed = true
	}
	return changed
}

// SetDocumentType cambia el tipo de documento y recalcula el correlativo.
// Si la serie actual no pertenece al nuevo tipo se limpian serie y correlativo,
// también en modo manual.
func (d *Draft) SetDocumentType(documentTypeID string, lk Lookup) {
	d.Header.DocumentTypeID = documentTypeID
	if d.Header.Serie != "" {
		if _, ok := d.SelectedSeries(lk); !ok {
			d.Header.Serie = ""
			d.Header.SeriesID = ""
			d.Header.Correlativo = ""
		}
	}
	d.RecomputeCorrelativo(lk)
}

// SetSerie cambia la serie y recalcula el correlativo.
func (d *Draft) SetSerie(serie string, lk Lookup) {
	d.Header.Serie = serie
	d.Header.SeriesID = ""
	if s, ok := d.SelectedSeries(lk); ok {
		d.Header.SeriesID = s.ID
	}
	d.RecomputeCorrelativo(lk)
}

// SetManualCorrelativo activa o desactiva la digitación manual del correlativo.
// Al desactivarla se vuelve a calcular desde el catálogo.
func (d *Draft) SetManualCorrelativo(manual bool, value string, lk Lookup) {
	d.Header.ManualCorrelativo = manual
	if manual {
		d.Header.Correlativo = value
		return
	}
	d.RecomputeCorrelativo(lk)
}

// RecomputeCorrelativo calcula el siguiente correlativo para tipo + serie,
// salvo que el modo manual esté activo. Devuelve true si el valor cambió.
func (d *Draft) RecomputeCorrelativo(lk Lookup) bool {
	if d.Header.ManualCorrelativo {
		return false
	}
	next := ""
	if d.Header.Serie != "" {
		var series []entity.Series
		if lk != nil {
			series = lk.Series()
		}
		last, found := LastCorrelativo(series, d.Header.DocumentTypeID, d.Header.Serie)
		next = NextCorrelativo(last, found)
	}
	if next == d.Header.Correlativo {
		return false
	}
	d.Header.Correlativo = next
	return true
}

// SelectedSeries serie del catálogo que corresponde a tipo + serie del borrador.
func (d *Draft) SelectedSeries(lk Lookup) (entity.Series, bool) {
	if lk == nil {
		return entity.Series{}, false
	}
	for _, s := range lk.Series() {
		if s.DocumentTypeID == d.Header.DocumentTypeID && s.Serie == d.Header.Serie {
			return s, true
		}
	}
	return entity.Series{}, false
}

// RequiresSunat indica si la serie seleccionada debe enviarse a SUNAT al emitir.
func (d *Draft) RequiresSunat(lk Lookup) bool {
	s, ok := d.SelectedSeries(lk)
	return ok && s.RequiresSunat
}

// SetDates asigna fechas de emisión y traslado (valores cero se ignoran).
func (d *Draft) SetDates(emission, transfer time.Time) {
	if !emission.IsZero() {
		d.Header.EmissionDate = emission
	}
	if !transfer.IsZero() {
		d.Header.TransferDate = transfer
	}
}

// Warnings avisos no bloqueantes del borrador.
func (d *Draft) Warnings() []string {
	var w []string
	if !d.Header.TransferDate.IsZero() && d.Header.TransferDate.Before(d.Header.EmissionDate) {
		w = append(w, "la fecha de traslado es anterior a la fecha de emisión")
	}
	return w
}

// AddLine agrega una línea al final y devuelve su número de ítem.
func (d *Draft) AddLine(line entity.ShipmentLine) int {
	d.Lines = append(d.Lines, line)
	d.renumber()
	return len(d.Lines)
}

// UpdateLine reemplaza la línea con el ítem indicado conservando su posición.
func (d *Draft) UpdateLine(item int, line entity.ShipmentLine) error {
	if item < 1 || item > len(d.Lines) {
		return fmt.Errorf("%w: ítem %d", domain.ErrNotFound, item)
	}
	d.Lines[item-1] = line
	d.renumber()
	return nil
}

// RemoveLine elimina la línea con el ítem indicado y renumera las siguientes.
func (d *Draft) RemoveLine(item int) error {
	if item < 1 || item > len(d.Lines) {
		return fmt.Errorf("%w: ítem %d", domain.ErrNotFound, item)
	}
	d.Lines = append(d.Lines[:item-1], d.Lines[item:]...)
	d.renumber()
	return nil
}

// ReplaceLines reemplaza todas las líneas (importación desde documento de referencia).
func (d *Draft) ReplaceLines(lines []entity.ShipmentLine) {
	d.Lines = append(make([]entity.ShipmentLine, 0, len(lines)), lines...)
	d.renumber()
}

// renumber mantiene Item == posición + 1.
func (d *Draft) renumber() {
	for i := range d.Lines {
		d.Lines[i].Item = i + 1
	}
}

// Clone copia profunda del borrador. Permite aplicar cambios y descartarlos si fallan.
func (d *Draft) Clone() *Draft {
	c := &Draft{ID: d.ID, Header: d.Header}
	c.Lines = append(make([]entity.ShipmentLine, 0, len(d.Lines)), d.Lines...)
	return c
}
