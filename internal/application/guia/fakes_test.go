package guia

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
	"github.com/jhoicas/Guias-api/internal/domain/repository"
)

var testNow = time.Date(2026, 10, 16, 15, 30, 0, 0, time.UTC)

var testSession = rules.SessionContext{CompanyID: "EMP-1", UserID: "USR-1", WarehouseID: "ALM-01"}

type fakeCatalogRepo struct {
	warehouseErr error
}

func (f *fakeCatalogRepo) ListWarehouses(ctx context.Context, companyID string) ([]entity.Warehouse, error) {
	if f.warehouseErr != nil {
		return nil, f.warehouseErr
	}
	return []entity.Warehouse{
		{ID: "ALM-01", Code: "A1", Name: "Central", Address: "AV. INDUSTRIAL 450, ATE"},
		{ID: "ALM-02", Code: "A2", Name: "Callao", Address: "JR. HUALLAGA 88, CALLAO"},
	}, nil
}

func (f *fakeCatalogRepo) ListParties(ctx context.Context, companyID string, kind entity.PartyKind) ([]entity.Party, error) {
	if kind == entity.PartySupplier {
		return []entity.Party{
			{ID: "PRV-01", Kind: kind, DocumentType: "6", DocumentNumber: "20131312955", Name: "Distribuidora Norte", Address: "CAL. LOS PINOS 9, SURCO"},
		}, nil
	}
	return []entity.Party{
		{ID: "CLI-01", Kind: kind, DocumentType: "6", DocumentNumber: "20100070970", Name: "Comercial Añil SAC", Address: "AV. LIMA 123"},
		{ID: "CLI-02", Kind: kind, DocumentType: "1", DocumentNumber: "40404040", Name: "Pérez Hnos", Address: "JR. UNO 1"},
	}, nil
}

func (f *fakeCatalogRepo) ListProducts(ctx context.Context, companyID string) ([]entity.Product, error) {
	return []entity.Product{
		{ID: "P1", Code: "CEM-01", Name: "Cemento Sol", UnitCode: "NIU", UnitName: "UNIDAD", Presentations: []entity.Presentation{
			{ID: "PR1", UnitCode: "BX", UnitName: "CAJA", Factor: decimal.NewFromInt(12)},
		}},
		{ID: "P2", Code: "ARE-01", Name: "Arena fina", UnitCode: "KGM", UnitName: "KILO"},
	}, nil
}

func (f *fakeCatalogRepo) ListSeries(ctx context.Context, companyID string) ([]entity.Series, error) {
	return []entity.Series{
		{ID: "S1", DocumentTypeID: "TD09", DocumentTypeCode: "09", DocumentTypeName: "Guía de remisión remitente", Serie: "T001", LastCorrelativo: "0000041", RequiresSunat: true},
		{ID: "S2", DocumentTypeID: "TD09", DocumentTypeCode: "09", DocumentTypeName: "Guía de remisión remitente", Serie: "T002"},
		{ID: "S3", DocumentTypeID: "TDINT", DocumentTypeCode: "INT", DocumentTypeName: "Guía interna", Serie: "G001", LastCorrelativo: "ABC"},
	}, nil
}

func (f *fakeCatalogRepo) ListReferenceDocumentTypes(ctx context.Context) ([]entity.Option, error) {
	return []entity.Option{{ID: "RT01", Code: "01", Label: "Factura"}}, nil
}

func (f *fakeCatalogRepo) ListCurrencies(ctx context.Context) ([]entity.Currency, error) {
	return []entity.Currency{
		{ID: "CUR-USD", Code: "USD", Name: "Dólares", Symbol: "$"},
		{ID: "CUR-PEN", Code: "PEN", Name: "Soles", Symbol: "S/"},
	}, nil
}

type fakeTransportRepo struct {
	mu       sync.Mutex
	created  int
	carriers []entity.Carrier
	err      error
}

func (f *fakeTransportRepo) ListCarriers(ctx context.Context, companyID string) ([]entity.Carrier, error) {
	return []entity.Carrier{{ID: "TR-1", RUC: "20100070970", Name: "Transportes Rápidos"}}, nil
}

func (f *fakeTransportRepo) ListDrivers(ctx context.Context, companyID string) ([]entity.Driver, error) {
	return []entity.Driver{{ID: "DR-1", DocumentType: "1", DocumentNumber: "12345678", FirstNames: "Juan", LastNames: "Quispe", License: "Q12345678"}}, nil
}

func (f *fakeTransportRepo) ListVehicles(ctx context.Context, companyID string) ([]entity.Vehicle, error) {
	return []entity.Vehicle{{ID: "VH-1", Plate: "ABC123", Brand: "Volvo"}}, nil
}

func (f *fakeTransportRepo) CreateCarrier(ctx context.Context, companyID string, c entity.Carrier) (*entity.Carrier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created++
	f.carriers = append(f.carriers, c)
	c.ID = "TR-NEW"
	return &c, nil
}

func (f *fakeTransportRepo) CreateDriver(ctx context.Context, companyID string, d entity.Driver) (*entity.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	d.ID = "DR-NEW"
	return &d, nil
}

func (f *fakeTransportRepo) CreateVehicle(ctx context.Context, companyID string, v entity.Vehicle) (*entity.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	v.ID = "VH-NEW"
	return &v, nil
}

type fakeRefRepo struct {
	lastFamily entity.DocumentFamily
	lastFilter repository.ReferenceDocumentFilter
	lastPage   int
	lastSize   int
	page       *entity.Page[entity.ReferenceDocumentSummary]
	doc        *entity.ReferenceDocument
	err        error
}

func (f *fakeRefRepo) Search(ctx context.Context, family entity.DocumentFamily, filter repository.ReferenceDocumentFilter, page, pageSize int) (*entity.Page[entity.ReferenceDocumentSummary], error) {
	f.lastFamily, f.lastFilter, f.lastPage, f.lastSize = family, filter, page, pageSize
	if f.err != nil {
		return nil, f.err
	}
	if f.page != nil {
		return f.page, nil
	}
	return &entity.Page[entity.ReferenceDocumentSummary]{Page: page}, nil
}

func (f *fakeRefRepo) GetByID(ctx context.Context, family entity.DocumentFamily, id string) (*entity.ReferenceDocument, error) {
	f.lastFamily = family
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

type shipmentCall struct {
	validate bool
	header   entity.ShipmentHeader
	lines    []entity.ShipmentLine
}

type fakeShipmentRepo struct {
	calls []shipmentCall
	err   error
}

func (f *fakeShipmentRepo) Create(ctx context.Context, h entity.ShipmentHeader, lines []entity.ShipmentLine) (*entity.ShipmentResult, error) {
	return f.record(false, h, lines)
}

func (f *fakeShipmentRepo) CreateAndValidate(ctx context.Context, h entity.ShipmentHeader, lines []entity.ShipmentLine) (*entity.ShipmentResult, error) {
	return f.record(true, h, lines)
}

func (f *fakeShipmentRepo) record(validate bool, h entity.ShipmentHeader, lines []entity.ShipmentLine) (*entity.ShipmentResult, error) {
	f.calls = append(f.calls, shipmentCall{validate: validate, header: h, lines: lines})
	if f.err != nil {
		return nil, f.err
	}
	status := ""
	if validate {
		status = "ACEPTADO"
	}
	return &entity.ShipmentResult{ID: "G-1", Serie: h.Serie, Correlativo: h.Correlativo, SunatStatus: status}, nil
}

type fakeRecorder struct {
	opened, closed int
	submitted      map[string]int
}

func (r *fakeRecorder) DraftOpened() { r.opened++ }
func (r *fakeRecorder) DraftClosed() { r.closed++ }
func (r *fakeRecorder) ShipmentSubmitted(mode string) {
	if r.submitted == nil {
		r.submitted = map[string]int{}
	}
	r.submitted[mode]++
}

type fixture struct {
	uc        *DraftUseCase
	catalog   *fakeCatalogRepo
	transport *fakeTransportRepo
	refs      *fakeRefRepo
	shipments *fakeShipmentRepo
	rec       *fakeRecorder
	store     *Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		catalog:   &fakeCatalogRepo{},
		transport: &fakeTransportRepo{},
		refs:      &fakeRefRepo{},
		shipments: &fakeShipmentRepo{},
		rec:       &fakeRecorder{},
	}
	f.store = NewStore(2*time.Hour, nil)
	f.store.now = func() time.Time { return testNow }
	f.uc = NewDraftUseCase(f.catalog, f.transport, f.refs, f.shipments, f.store, f.rec, zerolog.Nop())
	f.uc.now = func() time.Time { return testNow }
	f.uc.newID = func() string { return "D-1" }
	return f
}

func strPtr(s string) *string { return &s }
