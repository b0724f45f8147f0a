package guia

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Guias-api/internal/application/dto"
	"github.com/jhoicas/Guias-api/internal/domain"
	"github.com/jhoicas/Guias-api/internal/domain/entity"
	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
	"github.com/jhoicas/Guias-api/internal/domain/repository"
)

// Recorder métricas del flujo de guías.
type Recorder interface {
	DraftOpened()
	DraftClosed()
	ShipmentSubmitted(mode string)
}

type nopRecorder struct{}

func (nopRecorder) DraftOpened()             {}
func (nopRecorder) DraftClosed()             {}
func (nopRecorder) ShipmentSubmitted(string) {}

// DraftUseCase casos de uso del formulario de guía de remisión sobre sesiones en memoria.
type DraftUseCase struct {
	catalogRepo   repository.CatalogRepository
	transportRepo repository.TransportRepository
	refRepo       repository.ReferenceDocumentRepository
	shipmentRepo  repository.ShipmentRepository
	store         *Store
	rec           Recorder
	log           zerolog.Logger
	now           func() time.Time
	newID         func() string
}

// NewDraftUseCase construye el caso de uso. rec puede ser nil.
func NewDraftUseCase(
	catalogRepo repository.CatalogRepository,
	transportRepo repository.TransportRepository,
	refRepo repository.ReferenceDocumentRepository,
	shipmentRepo repository.ShipmentRepository,
	store *Store,
	rec Recorder,
	log zerolog.Logger,
) *DraftUseCase {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &DraftUseCase{
		catalogRepo:   catalogRepo,
		transportRepo: transportRepo,
		refRepo:       refRepo,
		shipmentRepo:  shipmentRepo,
		store:         store,
		rec:           rec,
		log:           log.With().Str("component", "guias").Logger(),
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// Open abre una sesión de borrador: carga los catálogos y crea el borrador con los
// valores por defecto (fecha de hoy, almacén de la sesión, primera serie y moneda local).
func (uc *DraftUseCase) Open(ctx context.Context, sc rules.SessionContext) (*dto.DraftResponse, error) {
	if sc.CompanyID == "" || sc.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	cat, err := LoadCatalogs(ctx, uc.catalogRepo, uc.transportRepo, sc.CompanyID)
	if err != nil {
		uc.log.Error().Err(err).Str("company_id", sc.CompanyID).Msg("no se pudieron cargar los catálogos")
		return nil, err
	}

	if sc.WarehouseID != "" {
		if _, ok := cat.Warehouse(sc.WarehouseID); !ok {
			uc.log.Warn().Str("warehouse_id", sc.WarehouseID).Msg("almacén de la sesión no está en el catálogo")
			verr := &domain.ValidationError{}
			verr.Add("almacenId", "el almacén no existe")
			return nil, verr
		}
	}
	d := rules.NewDraft(uc.newID(), sc, uc.now())
	if len(cat.series) > 0 {
		first := cat.series[0]
		d.SetDocumentType(first.DocumentTypeID, cat)
		d.SetSerie(first.Serie, cat)
	}
	if cur, ok := defaultCurrency(cat.currencies); ok {
		d.Header.CurrencyID = cur.ID
	}
	d.RecomputeAddresses(cat)

	sess := &session{draft: d, catalogs: cat, owner: sc}
	uc.store.put(d.ID, sess)
	uc.rec.DraftOpened()
	uc.log.Info().Str("draft_id", d.ID).Str("company_id", sc.CompanyID).Str("user_id", sc.UserID).Msg("borrador abierto")
	return toDraftResponse(d, cat, uc.store.expiry(sess)), nil
}

func defaultCurrency(list []entity.Currency) (entity.Currency, bool) {
	for _, c := range list {
		if c.Code == "PEN" {
			return c, true
		}
	}
	if len(list) > 0 {
		return list[0], true
	}
	return entity.Currency{}, false
}

// withSession bloquea la sesión y verifica que pertenezca al usuario.
func (uc *DraftUseCase) withSession(sc rules.SessionContext, id string, fn func(*session) error) error {
	sess, ok := uc.store.get(id)
	if !ok {
		return domain.ErrDraftNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.draft == nil {
		return domain.ErrDraftNotFound
	}
	if sess.owner.CompanyID != sc.CompanyID || sess.owner.UserID != sc.UserID {
		return domain.ErrForbidden
	}
	return fn(sess)
}

// close marca la sesión como cerrada y la quita del almacén. Requiere sess.mu.
func (uc *DraftUseCase) close(id string, sess *session) {
	sess.draft = nil
	if uc.store.remove(id) {
		uc.rec.DraftClosed()
	}
}

// Get estado actual del borrador.
func (uc *DraftUseCase) Get(sc rules.SessionContext, id string) (*dto.DraftResponse, error) {
	var resp *dto.DraftResponse
	err := uc.withSession(sc, id, func(s *session) error {
		resp = toDraftResponse(s.draft, s.catalogs, uc.store.expiry(s))
		return nil
	})
	return resp, err
}

// Discard descarta el borrador sin enviarlo.
func (uc *DraftUseCase) Discard(sc rules.SessionContext, id string) error {
	return uc.withSession(sc, id, func(s *session) error {
		uc.close(id, s)
		uc.log.Info().Str("draft_id", id).Msg("borrador descartado")
		return nil
	})
}

// Units opciones de unidad de medida de un producto del catálogo.
func (uc *DraftUseCase) Units(sc rules.SessionContext, id, productID string) (*dto.UnitOptionsResponse, error) {
	var resp *dto.UnitOptionsResponse
	err := uc.withSession(sc, id, func(s *session) error {
		p, ok := s.catalogs.Product(productID)
		if !ok {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
		}
		resp = &dto.UnitOptionsResponse{ProductID: p.ID, Items: rules.BuildUnitOptions(p)}
		return nil
	})
	return resp, err
}

// Catalog typeahead sobre un catálogo en caché.
func (uc *DraftUseCase) Catalog(sc rules.SessionContext, id, kind, term string) (*dto.CatalogOptionsResponse, error) {
	var resp *dto.CatalogOptionsResponse
	err := uc.withSession(sc, id, func(s *session) error {
		items, err := s.catalogs.Filter(kind, term)
		if err != nil {
			return err
		}
		resp = &dto.CatalogOptionsResponse{Kind: kind, Items: items}
		return nil
	})
	return resp, err
}
