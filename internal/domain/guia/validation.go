package guia

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Guias-api/internal/domain"
)

// Validate verifica el borrador antes del envío. Devuelve *domain.ValidationError con
// todas las violaciones, o nil si el borrador puede enviarse.
func Validate(d *Draft) error {
	verr := &domain.ValidationError{}
	h := d.Header
	if h.Serie == "" {
		verr.Add("serie", "la serie es obligatoria")
	}
	if h.Correlativo == "" {
		verr.Add("correlativo", "el correlativo es obligatorio")
	}
	if h.MotiveCode == "" {
		verr.Add("motivoTrasladoId", "seleccione un motivo de traslado")
	}
	p := d.Policy()
	if p.ShowClient && h.ClientID == "" {
		verr.Add("clienteId", "seleccione un cliente")
	}
	if p.ShowSupplier && h.SupplierID == "" {
		verr.Add("proveedorId", "seleccione un proveedor")
	}
	if len(d.Lines) == 0 {
		verr.Add("items", "agregue al menos un producto")
	}
	for _, l := range d.Lines {
		if l.ProductID == "" {
			verr.Add(fmt.Sprintf("items[%d].productoId", l.Item), fmt.Sprintf("ítem %d: seleccione un producto", l.Item))
		}
		if !l.Quantity.GreaterThan(decimal.Zero) {
			verr.Add(fmt.Sprintf("items[%d].cantidad", l.Item), fmt.Sprintf("ítem %d: la cantidad debe ser mayor a cero", l.Item))
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
