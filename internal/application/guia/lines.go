package guia

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Guias-api/internal/application/dto"
	"github.com/jhoicas/Guias-api/internal/domain"
	"github.com/jhoicas/Guias-api/internal/domain/entity"
	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
)

// AddLine agrega un producto al final del detalle.
func (uc *DraftUseCase) AddLine(sc rules.SessionContext, id string, req dto.LineRequest) (*dto.DraftResponse, error) {
	var resp *dto.DraftResponse
	err := uc.withSession(sc, id, func(s *session) error {
		line, err := buildLine(s.catalogs, req)
		if err != nil {
			return err
		}
		s.draft.AddLine(line)
		resp = toDraftResponse(s.draft, s.catalogs, uc.store.expiry(s))
		return nil
	})
	return resp, err
}

// UpdateLine reemplaza la línea item. Si el producto no cambia se conservan costo,
// saldos y procedencia de una línea importada.
func (uc *DraftUseCase) UpdateLine(sc rules.SessionContext, id string, item int, req dto.LineRequest) (*dto.DraftResponse, error) {
	var resp *dto.DraftResponse
	err := uc.withSession(sc, id, func(s *session) error {
		if item < 1 || item > len(s.draft.Lines) {
			return fmt.Errorf("%w: ítem %d", domain.ErrNotFound, item)
		}
		line, err := buildLine(s.catalogs, req)
		if err != nil {
			return err
		}
		prev := s.draft.Lines[item-1]
		if prev.ProductID == line.ProductID && prev.SourceDocumentID != "" {
			line.SaldoCantidad = prev.SaldoCantidad
			line.SaldoTemporal = prev.SaldoTemporal
			line.UnitCost = prev.UnitCost
			line.Amount = line.Quantity.Mul(prev.UnitCost)
			line.SourceDocumentID = prev.SourceDocumentID
			line.SourceLineID = prev.SourceLineID
			line.SourceTable = prev.SourceTable
		}
		if err := s.draft.UpdateLine(item, line); err != nil {
			return err
		}
		resp = toDraftResponse(s.draft, s.catalogs, uc.store.expiry(s))
		return nil
	})
	return resp, err
}

// RemoveLine quita la línea item y renumera las siguientes.
func (uc *DraftUseCase) RemoveLine(sc rules.SessionContext, id string, item int) (*dto.DraftResponse, error) {
	var resp *dto.DraftResponse
	err := uc.withSession(sc, id, func(s *session) error {
		if err := s.draft.RemoveLine(item); err != nil {
			return err
		}
		resp = toDraftResponse(s.draft, s.catalogs, uc.store.expiry(s))
		return nil
	})
	return resp, err
}

func buildLine(cat *Catalogs, req dto.LineRequest) (entity.ShipmentLine, error) {
	verr := &domain.ValidationError{}
	p, ok := cat.Product(req.ProductID)
	if !ok {
		verr.Add("productoId", "el producto no existe")
	}
	if !req.Quantity.GreaterThan(decimal.Zero) {
		verr.Add("cantidad", "la cantidad debe ser mayor a cero")
	}
	var unit entity.UnitOfMeasureOption
	if ok {
		opts := rules.BuildUnitOptions(p)
		if req.UnitKey == "" {
			unit = rules.BaseUnitOption(opts)
		} else if unit, ok = rules.FindUnitOption(opts, req.UnitKey); !ok {
			verr.Add("unidadMedida", "la unidad no corresponde al producto")
		}
	}
	if verr.HasErrors() {
		return entity.ShipmentLine{}, verr
	}
	return entity.ShipmentLine{
		ProductID:      p.ID,
		ProductCode:    p.Code,
		ProductName:    p.Name,
		UnitKey:        unit.Key,
		UnitLabel:      unit.Label,
		PresentationID: unit.PresentationID,
		Quantity:       req.Quantity,
		SaldoCantidad:  req.Quantity,
		SaldoTemporal:  req.Quantity,
	}, nil
}
