package guia

import (
	"context"
	"time"

	"github.com/jhoicas/Guias-api/internal/application/dto"
	"github.com/jhoicas/Guias-api/internal/domain"
	"github.com/jhoicas/Guias-api/internal/domain/entity"
	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
	"github.com/jhoicas/Guias-api/internal/domain/repository"
)

const (
	referencePageSize = 20
	defaultSearchDays = 30
	emptySearchMsg    = "No se encontraron documentos con los filtros indicados"
)

// SearchReferences busca documentos de la familia del motivo actual.
// Cliente o proveedor no indicados en la consulta se toman del borrador.
func (uc *DraftUseCase) SearchReferences(ctx context.Context, sc rules.SessionContext, id string, req dto.ReferenceSearchRequest) (*dto.ReferenceSearchResponse, error) {
	req.DefaultPage()
	var (
		family entity.DocumentFamily
		filter repository.ReferenceDocumentFilter
	)
	err := uc.withSession(sc, id, func(s *session) error {
		fam, err := searchFamily(s.draft)
		if err != nil {
			return err
		}
		family = fam
		filter = repository.ReferenceDocumentFilter{
			CompanyID:      sc.CompanyID,
			ClientID:       firstNonEmpty(req.ClientID, s.draft.Header.ClientID),
			SupplierID:     firstNonEmpty(req.SupplierID, s.draft.Header.SupplierID),
			DocumentTypeID: req.DocumentTypeID,
			CurrencyID:     req.CurrencyID,
			Term:           req.Term,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	from, to, err := uc.searchRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	filter.From, filter.To = from, to

	page, err := uc.refRepo.Search(ctx, family, filter, req.Page, referencePageSize)
	if err != nil {
		uc.log.Warn().Err(err).Str("draft_id", id).Str("family", string(family)).Msg("búsqueda de documentos falló")
		return nil, err
	}
	resp := &dto.ReferenceSearchResponse{
		Family: string(family),
		Items:  page.Items,
		Page: dto.PageResponse{
			Page:         page.Page,
			PageSize:     referencePageSize,
			TotalPages:   page.TotalPages,
			TotalRecords: page.TotalRecords,
		},
	}
	if resp.Items == nil {
		resp.Items = []entity.ReferenceDocumentSummary{}
	}
	if len(resp.Items) == 0 {
		resp.Message = emptySearchMsg
	}
	return resp, nil
}

// searchRange por defecto los últimos 30 días hasta hoy.
func (uc *DraftUseCase) searchRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	now := uc.now()
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	from, to := today.AddDate(0, 0, -defaultSearchDays), today

	verr := &domain.ValidationError{}
	if fromRaw != "" {
		t, err := time.ParseInLocation(dateLayout, fromRaw, loc)
		if err != nil {
			verr.Add("desde", "fecha inválida")
		}
		from = t
	}
	if toRaw != "" {
		t, err := time.ParseInLocation(dateLayout, toRaw, loc)
		if err != nil {
			verr.Add("hasta", "fecha inválida")
		}
		to = t
	}
	if !verr.HasErrors() && from.After(to) {
		verr.Add("desde", "la fecha inicial es posterior a la final")
	}
	if verr.HasErrors() {
		return time.Time{}, time.Time{}, verr
	}
	return from, to, nil
}

// ImportReference trae el documento y reemplaza cabecera relacionada y líneas del borrador.
// Ante cualquier error el borrador queda como estaba.
func (uc *DraftUseCase) ImportReference(ctx context.Context, sc rules.SessionContext, id, docID string) (*dto.DraftResponse, error) {
	var resp *dto.DraftResponse
	err := uc.withSession(sc, id, func(s *session) error {
		family, err := searchFamily(s.draft)
		if err != nil {
			return err
		}
		doc, err := uc.refRepo.GetByID(ctx, family, docID)
		if err != nil {
			uc.log.Warn().Err(err).Str("draft_id", id).Str("document_id", docID).Msg("importación de documento falló")
			return err
		}
		doc.Family = family
		d := s.draft.Clone()
		d.ApplyReference(doc, s.catalogs)
		s.draft = d
		uc.log.Info().Str("draft_id", id).Str("document_id", docID).Int("lines", len(d.Lines)).Msg("documento de referencia importado")
		resp = toDraftResponse(d, s.catalogs, uc.store.expiry(s))
		return nil
	})
	return resp, err
}

func searchFamily(d *rules.Draft) (entity.DocumentFamily, error) {
	fam := d.Policy().ReferenceDocumentFamily
	if !rules.IsSearchEnabled(d.Header.MotiveCode) || fam == entity.FamilyNone {
		return "", domain.ErrSearchDisabled
	}
	return fam, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
