package guia

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
	"github.com/jhoicas/Guias-api/pkg/sunat"
)

// BuildUnitOptions arma las opciones de unidad de un producto.
// Cada presentación es una opción; si ninguna coincide con la unidad base del producto,
// se inserta al inicio una opción base sin presentación. Exactamente una opción es base.
func BuildUnitOptions(p entity.Product) []entity.UnitOfMeasureOption {
	baseCode := p.UnitCode
	if baseCode == "" {
		baseCode = sunat.UnitUnit
	}
	opts := make([]entity.UnitOfMeasureOption, 0, len(p.Presentations)+1)
	hasBase := false
	for _, pr := range p.Presentations {
		id := pr.ID
		isBase := !hasBase && strings.EqualFold(pr.UnitCode, baseCode)
		if isBase {
			hasBase = true
		}
		opts = append(opts, entity.UnitOfMeasureOption{
			Key:            pr.UnitCode + ":" + pr.ID,
			Label:          presentationLabel(pr),
			PresentationID: &id,
			Base:           isBase,
		})
	}
	if !hasBase {
		label := p.UnitName
		if label == "" {
			label = baseCode
		}
		base := entity.UnitOfMeasureOption{Key: baseCode, Label: label, Base: true}
		opts = append([]entity.UnitOfMeasureOption{base}, opts...)
	}
	return opts
}

// FindUnitOption busca una opción por clave.
func FindUnitOption(opts []entity.UnitOfMeasureOption, key string) (entity.UnitOfMeasureOption, bool) {
	for _, o := range opts {
		if o.Key == key {
			return o, true
		}
	}
	return entity.UnitOfMeasureOption{}, false
}

// BaseUnitOption devuelve la opción base.
func BaseUnitOption(opts []entity.UnitOfMeasureOption) entity.UnitOfMeasureOption {
	for _, o := range opts {
		if o.Base {
			return o
		}
	}
	return entity.UnitOfMeasureOption{}
}

func presentationLabel(pr entity.Presentation) string {
	name := pr.UnitName
	if name == "" {
		name = pr.UnitCode
	}
	if pr.Factor.IsZero() || pr.Factor.Equal(decimal.NewFromInt(1)) {
		return name
	}
	return name + " x " + pr.Factor.String()
}
