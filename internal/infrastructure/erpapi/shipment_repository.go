package erpapi

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
	"github.com/jhoicas/Guias-api/internal/domain/repository"
	"github.com/jhoicas/Guias-api/pkg/sunat"
)

// ShipmentRepository implementa repository.ShipmentRepository.
type ShipmentRepository struct {
	c *Client
}

// NewShipmentRepository crea el repositorio de guías.
func NewShipmentRepository(c *Client) *ShipmentRepository {
	return &ShipmentRepository{c: c}
}

var _ repository.ShipmentRepository = (*ShipmentRepository)(nil)

// Create registra la guía sin enviarla a SUNAT.
func (r *ShipmentRepository) Create(ctx context.Context, h entity.ShipmentHeader, lines []entity.ShipmentLine) (*entity.ShipmentResult, error) {
	return r.post(ctx, "/guias-remision", h, lines)
}

// CreateAndValidate registra la guía y la envía a SUNAT en la misma operación.
func (r *ShipmentRepository) CreateAndValidate(ctx context.Context, h entity.ShipmentHeader, lines []entity.ShipmentLine) (*entity.ShipmentResult, error) {
	return r.post(ctx, "/guias-remision/validar-sunat", h, lines)
}

func (r *ShipmentRepository) post(ctx context.Context, path string, h entity.ShipmentHeader, lines []entity.ShipmentLine) (*entity.ShipmentResult, error) {
	var out shipmentResultWire
	_, err := r.c.do(ctx, call{Method: fiber.MethodPost, Path: path, Body: buildShipmentPayload(h, lines)}, &out)
	if err != nil {
		return nil, err
	}
	res := &entity.ShipmentResult{
		ID:          out.ID,
		Serie:       out.Serie,
		Correlativo: out.Correlativo,
		SunatStatus: out.EstadoSunat,
	}
	if res.Serie == "" {
		res.Serie = h.Serie
	}
	if res.Correlativo == "" {
		res.Correlativo = h.Correlativo
	}
	return res, nil
}

func buildShipmentPayload(h entity.ShipmentHeader, lines []entity.ShipmentLine) shipmentPayload {
	p := shipmentPayload{
		EmpresaID:                 h.CompanyID,
		UsuarioID:                 h.UserID,
		TipoDocumentoID:           h.DocumentTypeID,
		SerieID:                   h.SeriesID,
		Serie:                     h.Serie,
		Correlativo:               h.Correlativo,
		FechaEmision:              formatDate(h.EmissionDate),
		FechaTraslado:             formatDate(h.TransferDate),
		MotivoTrasladoID:          h.MotiveCode,
		MotivoTrasladoTexto:       h.MotiveText,
		AlmacenOrigenID:           h.OriginWarehouseID,
		AlmacenDestinoID:          h.DestinationWarehouseID,
		ClienteID:                 h.ClientID,
		ProveedorID:               h.SupplierID,
		PuntoPartida:              h.OriginAddress,
		PuntoLlegada:              h.DestinationAddress,
		DocumentoReferenciaTipoID: h.ReferenceDocumentTypeID,
		DocumentoReferenciaNumero: h.ReferenceDocumentNumber,
		MonedaID:                  h.CurrencyID,
		TipoCambio:                h.ExchangeRate,
		ModalidadTraslado:         h.TransportMode,
		TransportistaID:           h.CarrierID,
		ConductorID:               h.DriverID,
		VehiculoID:                h.VehicleID,
		Observacion:               h.Observation,
		Items:                     make([]shipmentLineWire, 0, len(lines)),
	}
	if m, ok := sunat.FindMotive(h.MotiveCode); ok {
		p.MotivoTrasladoCodigoSunat = m.SunatCode
	}
	for _, l := range lines {
		p.Items = append(p.Items, shipmentLineWire{
			Item:                     l.Item,
			ProductoID:               l.ProductID,
			UnidadMedida:             unitCode(l.UnitKey),
			PresentacionID:           l.PresentationID,
			Cantidad:                 l.Quantity,
			SaldoCantidad:            l.SaldoCantidad,
			SaldoTemporal:            l.SaldoTemporal,
			CostoUnitario:            l.UnitCost,
			Importe:                  l.Amount,
			DocumentoOrigenID:        l.SourceDocumentID,
			DocumentoOrigenDetalleID: l.SourceLineID,
			TablaOrigen:              l.SourceTable,
		})
	}
	return p
}

// unitCode la clave de unidad tiene forma "CODIGO" o "CODIGO:presentacionId".
func unitCode(key string) string {
	code, _, _ := strings.Cut(key, ":")
	return code
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
