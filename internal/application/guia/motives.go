// Package guia orquesta el flujo de creación de guías de remisión: sesiones de borrador,
// catálogos en caché, importación de documentos de referencia y emisión.
package guia

import (
	"github.com/jhoicas/Guias-api/internal/application/dto"
	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
	"github.com/jhoicas/Guias-api/pkg/sunat"
)

// ListMotives catálogo de motivos de traslado con su política.
func ListMotives() []dto.MotiveResponse {
	out := make([]dto.MotiveResponse, 0, len(sunat.Motives))
	for _, m := range sunat.Motives {
		out = append(out, motiveResponse(m.Code, m.SunatCode, m.Description))
	}
	return out
}

// GetMotive política de un motivo. Un código desconocido no es error: resuelve a la
// política por defecto sin descripción.
func GetMotive(code string) dto.MotiveResponse {
	if m, ok := sunat.FindMotive(code); ok {
		return motiveResponse(m.Code, m.SunatCode, m.Description)
	}
	return motiveResponse(code, "", "")
}

func motiveResponse(code, sunatCode, description string) dto.MotiveResponse {
	return dto.MotiveResponse{
		Code:          code,
		SunatCode:     sunatCode,
		Description:   description,
		Policy:        policyResponse(rules.ResolvePolicy(code)),
		SearchEnabled: rules.IsSearchEnabled(code),
	}
}

func policyResponse(p rules.RoutingPolicy) dto.PolicyResponse {
	return dto.PolicyResponse{
		ShowSupplier:             p.ShowSupplier,
		ShowClient:               p.ShowClient,
		ShowDestinationWarehouse: p.ShowDestinationWarehouse,
		OriginRole:               string(p.OriginRole),
		DestinationRole:          string(p.DestinationRole),
		AllowManualReasonText:    p.AllowManualReasonText,
		ReferenceDocumentFamily:  string(p.ReferenceDocumentFamily),
	}
}
