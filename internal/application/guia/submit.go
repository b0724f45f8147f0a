package guia

import (
	"context"

	"github.com/jhoicas/Guias-api/internal/application/dto"
	"github.com/jhoicas/Guias-api/internal/domain"
	"github.com/jhoicas/Guias-api/internal/domain/entity"
	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
)

// Modos de emisión.
const (
	ModeRegister      = "REGISTRO"
	ModeRegisterSunat = "REGISTRO_SUNAT"
)

// Submit valida el borrador y lo registra en el backend. Si la serie requiere SUNAT se usa
// el endpoint que además valida con SUNAT. Un borrador inválido no genera ninguna llamada.
// Tras el éxito la sesión se cierra; ante un error del backend el borrador se conserva.
func (uc *DraftUseCase) Submit(ctx context.Context, sc rules.SessionContext, id string) (*dto.SubmitResponse, error) {
	var resp *dto.SubmitResponse
	err := uc.withSession(sc, id, func(s *session) error {
		d := s.draft
		if err := rules.Validate(d); err != nil {
			return err
		}
		if _, ok := d.SelectedSeries(s.catalogs); !ok {
			verr := &domain.ValidationError{}
			verr.Add("serie", "la serie no corresponde al tipo de documento")
			return verr
		}
		mode := ModeRegister
		create := uc.shipmentRepo.Create
		if d.RequiresSunat(s.catalogs) {
			mode = ModeRegisterSunat
			create = uc.shipmentRepo.CreateAndValidate
		}
		lines := append([]entity.ShipmentLine(nil), d.Lines...)
		res, err := create(ctx, d.Header, lines)
		if err != nil {
			uc.log.Warn().Err(err).Str("draft_id", id).Str("mode", mode).Msg("emisión de guía falló")
			return err
		}
		uc.close(id, s)
		uc.rec.ShipmentSubmitted(mode)
		uc.log.Info().Str("draft_id", id).Str("shipment_id", res.ID).Str("serie", res.Serie).
			Str("correlativo", res.Correlativo).Str("mode", mode).Msg("guía emitida")
		resp = &dto.SubmitResponse{
			ID:          res.ID,
			Serie:       res.Serie,
			Correlativo: res.Correlativo,
			Mode:        mode,
			SunatStatus: res.SunatStatus,
			Message:     res.Message,
		}
		return nil
	})
	return resp, err
}
