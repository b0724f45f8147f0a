// Package guia contiene las reglas de negocio puras de la guía de remisión:
// tabla de motivos de traslado, resolución de direcciones, correlativos,
// unidades de medida, el borrador en memoria y su validación.
// No realiza llamadas de red.
package guia

import (
	"github.com/jhoicas/Guias-api/internal/domain/entity"
	"github.com/jhoicas/Guias-api/pkg/sunat"
)

// Role parte que actúa como origen o destino del traslado.
type Role string

const (
	RoleUnset     Role = ""
	RoleWarehouse Role = "WAREHOUSE"
	RoleClient    Role = "CLIENT"
	RoleSupplier  Role = "SUPPLIER"
)

// RoutingPolicy reglas derivadas de un motivo de traslado.
type RoutingPolicy struct {
	ShowSupplier             bool                  `json:"showSupplier"`
	ShowClient               bool                  `json:"showClient"`
	ShowDestinationWarehouse bool                  `json:"showDestinationWarehouse"`
	OriginRole               Role                  `json:"originRole"`
	DestinationRole          Role                  `json:"destinationRole"`
	AllowManualReasonText    bool                  `json:"allowManualReasonText"`
	ReferenceDocumentFamily  entity.DocumentFamily `json:"referenceDocumentFamily"`
}

// DefaultPolicy política para motivos desconocidos o vacíos: sin manejo especial.
var DefaultPolicy = RoutingPolicy{ReferenceDocumentFamily: entity.FamilyNone}

var (
	saleToClient = RoutingPolicy{
		ShowClient: true, OriginRole: RoleWarehouse, DestinationRole: RoleClient,
		ReferenceDocumentFamily: entity.FamilySale,
	}
	purchaseFromSupplier = RoutingPolicy{
		ShowSupplier: true, OriginRole: RoleSupplier, DestinationRole: RoleWarehouse,
		ReferenceDocumentFamily: entity.FamilyPurchase,
	}
	betweenWarehouses = RoutingPolicy{
		ShowDestinationWarehouse: true, OriginRole: RoleWarehouse, DestinationRole: RoleWarehouse,
		ReferenceDocumentFamily: entity.FamilyNone,
	}
	deliverToClient = RoutingPolicy{
		ShowClient: true, OriginRole: RoleWarehouse, DestinationRole: RoleClient,
		ReferenceDocumentFamily: entity.FamilyNone,
	}
)

// policies tabla inmutable código de motivo → política. Solo se lee.
var policies = map[string]RoutingPolicy{
	sunat.MotiveVenta:  saleToClient,
	sunat.MotiveCompra: purchaseFromSupplier,
	sunat.MotiveDevolucionProveedor: {
		ShowSupplier: true, OriginRole: RoleWarehouse, DestinationRole: RoleSupplier,
		ReferenceDocumentFamily: entity.FamilyPurchase,
	},
	sunat.MotiveVentaSujetaConfirmacion: saleToClient,
	sunat.MotiveTrasladoEstablecimiento: betweenWarehouses,
	sunat.MotiveDevolucionCliente: {
		ShowClient: true, OriginRole: RoleClient, DestinationRole: RoleWarehouse,
		ReferenceDocumentFamily: entity.FamilySale,
	},
	sunat.MotiveConsignacion:     deliverToClient,
	sunat.MotiveEmisorItinerante: betweenWarehouses,
	sunat.MotiveOtros: func() RoutingPolicy {
		p := deliverToClient
		p.AllowManualReasonText = true
		return p
	}(),
	sunat.MotiveImportacion: purchaseFromSupplier,
	sunat.MotiveExportacion: saleToClient,
}

// searchEnabled motivos que permiten importar líneas desde un documento previo.
var searchEnabled = map[string]bool{
	sunat.MotiveVenta:                   true,
	sunat.MotiveCompra:                  true,
	sunat.MotiveDevolucionProveedor:     true,
	sunat.MotiveVentaSujetaConfirmacion: true,
	sunat.MotiveDevolucionCliente:       true,
}

// ResolvePolicy devuelve la política del motivo. Códigos desconocidos o vacíos
// resuelven a DefaultPolicy (no es un error).
func ResolvePolicy(motiveCode string) RoutingPolicy {
	if p, ok := policies[motiveCode]; ok {
		return p
	}
	return DefaultPolicy
}

// IsSearchEnabled indica si el motivo permite buscar documentos de referencia.
func IsSearchEnabled(motiveCode string) bool {
	return searchEnabled[motiveCode]
}

// KnownMotiveCodes códigos con política definida, en el orden del catálogo SUNAT.
func KnownMotiveCodes() []string {
	codes := make([]string, 0, len(sunat.Motives))
	for _, m := range sunat.Motives {
		if _, ok := policies[m.Code]; ok {
			codes = append(codes, m.Code)
		}
	}
	return codes
}
