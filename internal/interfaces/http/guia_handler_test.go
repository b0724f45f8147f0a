package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appguia "github.com/jhoicas/Guias-api/internal/application/guia"
	"github.com/jhoicas/Guias-api/internal/domain"
	"github.com/jhoicas/Guias-api/internal/domain/entity"
	"github.com/jhoicas/Guias-api/internal/domain/repository"
	"github.com/jhoicas/Guias-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/Guias-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend ERP simulado
// ──────────────────────────────────────────────────────────────────────────────

type stubCatalog struct{ err error }

func (s *stubCatalog) ListWarehouses(ctx context.Context, companyID string) ([]entity.Warehouse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []entity.Warehouse{
		{ID: "ALM-01", Name: "Central", Address: "AV. INDUSTRIAL 450, ATE"},
		{ID: "ALM-02", Name: "Callao", Address: "JR. HUALLAGA 88, CALLAO"},
	}, nil
}

func (s *stubCatalog) ListParties(ctx context.Context, companyID string, kind entity.PartyKind) ([]entity.Party, error) {
	return []entity.Party{{ID: "CLI-01", Kind: kind, DocumentNumber: "20100070970", Name: "Comercial Añil SAC", Address: "AV. LIMA 123"}}, nil
}

func (s *stubCatalog) ListProducts(ctx context.Context, companyID string) ([]entity.Product, error) {
	return []entity.Product{{ID: "P1", Code: "CEM-01", Name: "Cemento Sol", UnitCode: "NIU", UnitName: "UNIDAD"}}, nil
}

func (s *stubCatalog) ListSeries(ctx context.Context, companyID string) ([]entity.Series, error) {
	return []entity.Series{{ID: "S1", DocumentTypeID: "TD09", DocumentTypeName: "Guía de remisión remitente", Serie: "T001", LastCorrelativo: "0000041", RequiresSunat: true}}, nil
}

func (s *stubCatalog) ListReferenceDocumentTypes(ctx context.Context) ([]entity.Option, error) {
	return nil, nil
}

func (s *stubCatalog) ListCurrencies(ctx context.Context) ([]entity.Currency, error) {
	return []entity.Currency{{ID: "CUR-PEN", Code: "PEN", Name: "Soles"}}, nil
}

type stubTransport struct{}

func (stubTransport) ListCarriers(ctx context.Context, companyID string) ([]entity.Carrier, error) {
	return nil, nil
}
func (stubTransport) ListDrivers(ctx context.Context, companyID string) ([]entity.Driver, error) {
	return nil, nil
}
func (stubTransport) ListVehicles(ctx context.Context, companyID string) ([]entity.Vehicle, error) {
	return nil, nil
}
func (stubTransport) CreateCarrier(ctx context.Context, companyID string, c entity.Carrier) (*entity.Carrier, error) {
	c.ID = "TR-NEW"
	return &c, nil
}
func (stubTransport) CreateDriver(ctx context.Context, companyID string, d entity.Driver) (*entity.Driver, error) {
	d.ID = "DR-NEW"
	return &d, nil
}
func (stubTransport) CreateVehicle(ctx context.Context, companyID string, v entity.Vehicle) (*entity.Vehicle, error) {
	v.ID = "VH-NEW"
	return &v, nil
}

type stubRefs struct{}

func (stubRefs) Search(ctx context.Context, family entity.DocumentFamily, f repository.ReferenceDocumentFilter, page, pageSize int) (*entity.Page[entity.ReferenceDocumentSummary], error) {
	return &entity.Page[entity.ReferenceDocumentSummary]{Page: page}, nil
}

func (stubRefs) GetByID(ctx context.Context, family entity.DocumentFamily, id string) (*entity.ReferenceDocument, error) {
	return nil, domain.ErrNotFound
}

type stubShipments struct{ err error }

func (s *stubShipments) Create(ctx context.Context, h entity.ShipmentHeader, lines []entity.ShipmentLine) (*entity.ShipmentResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.ShipmentResult{ID: "G-1", Serie: h.Serie, Correlativo: h.Correlativo}, nil
}

func (s *stubShipments) CreateAndValidate(ctx context.Context, h entity.ShipmentHeader, lines []entity.ShipmentLine) (*entity.ShipmentResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.ShipmentResult{ID: "G-1", Serie: h.Serie, Correlativo: h.Correlativo, SunatStatus: "ACEPTADO"}, nil
}

type noopRenderer struct{}

func (noopRenderer) RenderDraft(ctx context.Context, doc *appguia.DraftDocument) ([]byte, error) {
	return []byte("%PDF-1.3"), nil
}

func (noopRenderer) ExportLines(ctx context.Context, doc *appguia.DraftDocument) ([]byte, error) {
	return []byte("PK"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type apiFixture struct {
	app       *fiber.App
	catalog   *stubCatalog
	shipments *stubShipments
	metrics   *metrics.Metrics
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{catalog: &stubCatalog{}, shipments: &stubShipments{}, metrics: metrics.New()}
	store := appguia.NewStore(time.Hour, nil)
	drafts := appguia.NewDraftUseCase(f.catalog, stubTransport{}, stubRefs{}, f.shipments, store, f.metrics, zerolog.Nop())
	exports := appguia.NewExportUseCase(drafts, noopRenderer{}, noopRenderer{})

	f.app = fiber.New()
	apphttp.Router(f.app, apphttp.RouterDeps{
		AppName:            "guias-api-test",
		Drafts:             drafts,
		Exports:            exports,
		Metrics:            f.metrics,
		JWTSecret:          testJWTSecret,
		DefaultWarehouseID: testWarehouse,
	})
	return f
}

func (f *apiFixture) call(t *testing.T, method, path, role, body string) (*http.Response, []byte) {
	t.Helper()
	auth := ""
	if role != "" {
		auth = tokenForRole(t, role)
	}
	return f.send(t, method, path, auth, body)
}

// send ejecuta la petición con el header Authorization tal cual.
func (f *apiFixture) send(t *testing.T, method, path, auth, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func (f *apiFixture) openDraft(t *testing.T) string {
	t.Helper()
	resp, body := f.call(t, http.MethodPost, "/api/guias/borradores", "logistica", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func decodeError(t *testing.T, body []byte) errorBody {
	t.Helper()
	var e errorBody
	require.NoError(t, json.Unmarshal(body, &e), string(body))
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGuiaAPI_FlujoTrasladoEntreAlmacenes(t *testing.T) {
	f := newAPI(t)
	id := f.openDraft(t)
	base := "/api/guias/borradores/" + id

	resp, body := f.call(t, http.MethodPatch, base+"/cabecera", "logistica",
		`{"motivoTrasladoId":"MT00005","almacenDestinoId":"ALM-02","modalidadTraslado":"02"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var draft struct {
		Header struct {
			Correlativo        string `json:"correlativo"`
			DestinationAddress string `json:"puntoLlegada"`
		} `json:"cabecera"`
		SearchEnabled bool `json:"busquedaReferenciaHabilitada"`
	}
	require.NoError(t, json.Unmarshal(body, &draft))
	assert.Equal(t, "0000042", draft.Header.Correlativo)
	assert.Equal(t, "JR. HUALLAGA 88, CALLAO", draft.Header.DestinationAddress)
	assert.False(t, draft.SearchEnabled)

	resp, body = f.call(t, http.MethodPost, base+"/lineas", "logistica", `{"productoId":"P1","cantidad":"3"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = f.call(t, http.MethodGet, base+"/pdf", "logistica", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "guia-T001-0000042.pdf")

	resp, body = f.call(t, http.MethodPost, base+"/emitir", "vendedor", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, string(body))

	resp, body = f.call(t, http.MethodPost, base+"/emitir", "logistica", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var submitted struct {
		Mode        string `json:"modo"`
		SunatStatus string `json:"estadoSunat"`
	}
	require.NoError(t, json.Unmarshal(body, &submitted))
	assert.Equal(t, appguia.ModeRegisterSunat, submitted.Mode)
	assert.Equal(t, "ACEPTADO", submitted.SunatStatus)

	resp, body = f.call(t, http.MethodGet, base, "logistica", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, body).Code)
}

func TestGuiaAPI_ErrorDeValidacionConCampos(t *testing.T) {
	f := newAPI(t)
	id := f.openDraft(t)

	resp, body := f.call(t, http.MethodPatch, "/api/guias/borradores/"+id+"/cabecera", "logistica",
		`{"modalidadTraslado":"03","fechaTraslado":"16/10/2026"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decodeError(t, body)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Fields, "modalidadTraslado")
	assert.Contains(t, e.Fields, "fechaTraslado")
}

func TestGuiaAPI_EmitirBorradorIncompleto(t *testing.T) {
	f := newAPI(t)
	id := f.openDraft(t)

	resp, body := f.call(t, http.MethodPost, "/api/guias/borradores/"+id+"/emitir", "admin", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decodeError(t, body)
	assert.Contains(t, e.Fields, "motivoTrasladoId")
	assert.Contains(t, e.Fields, "items")
}

func TestGuiaAPI_BusquedaDeshabilitada(t *testing.T) {
	f := newAPI(t)
	id := f.openDraft(t)
	base := "/api/guias/borradores/" + id
	resp, _ := f.call(t, http.MethodPatch, base+"/cabecera", "logistica", `{"motivoTrasladoId":"MT00005"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := f.call(t, http.MethodGet, base+"/documentos-referencia", "logistica", "")

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "SEARCH_DISABLED", decodeError(t, body).Code)
}

func TestGuiaAPI_BusquedaSinResultados(t *testing.T) {
	f := newAPI(t)
	id := f.openDraft(t)
	base := "/api/guias/borradores/" + id
	resp, _ := f.call(t, http.MethodPatch, base+"/cabecera", "logistica", `{"motivoTrasladoId":"MT00001"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := f.call(t, http.MethodGet, base+"/documentos-referencia?page=1&q=F001", "logistica", "")

	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out struct {
		Items   []json.RawMessage `json:"items"`
		Message string            `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Empty(t, out.Items)
	assert.NotEmpty(t, out.Message)
}

func TestGuiaAPI_BackendRechazaEmision(t *testing.T) {
	f := newAPI(t)
	f.shipments.err = &domain.BackendError{Endpoint: "/guias-remision/validar-sunat", Message: "La serie T001 está bloqueada", Rejected: true}
	id := f.openDraft(t)
	base := "/api/guias/borradores/" + id
	resp, _ := f.call(t, http.MethodPatch, base+"/cabecera", "logistica", `{"motivoTrasladoId":"MT00005","almacenDestinoId":"ALM-02"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = f.call(t, http.MethodPost, base+"/lineas", "logistica", `{"productoId":"P1","cantidad":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := f.call(t, http.MethodPost, base+"/emitir", "admin", "")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	e := decodeError(t, body)
	assert.Equal(t, "BACKEND_REJECTED", e.Code)
	assert.Equal(t, "La serie T001 está bloqueada", e.Message)

	resp, _ = f.call(t, http.MethodGet, base, "logistica", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el borrador se conserva para reintentar")
}

func TestGuiaAPI_BackendNoDisponible(t *testing.T) {
	f := newAPI(t)
	f.catalog.err = &domain.BackendError{Endpoint: "/almacenes/dropdown", StatusCode: 503}

	resp, body := f.call(t, http.MethodPost, "/api/guias/borradores", "logistica", "")

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "BACKEND_UNAVAILABLE", decodeError(t, body).Code)
}

func TestGuiaAPI_AltaRapidaDeVehiculo(t *testing.T) {
	f := newAPI(t)
	id := f.openDraft(t)

	resp, body := f.call(t, http.MethodPost, "/api/guias/borradores/"+id+"/vehiculos", "logistica", `{"placa":"abc-123","marca":"Hino"}`)

	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var out struct {
		ID    string `json:"id"`
		Draft struct {
			Header struct {
				VehicleID     string `json:"vehiculoId"`
				TransportMode string `json:"modalidadTraslado"`
			} `json:"cabecera"`
		} `json:"borrador"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "VH-NEW", out.Draft.Header.VehicleID)
	assert.Equal(t, "02", out.Draft.Header.TransportMode)
}

func TestGuiaAPI_CatalogoYUnidades(t *testing.T) {
	f := newAPI(t)
	id := f.openDraft(t)
	base := "/api/guias/borradores/" + id

	resp, body := f.call(t, http.MethodGet, base+"/catalogos/clientes?q=anil", "logistica", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), "CLI-01")

	resp, _ = f.call(t, http.MethodGet, base+"/catalogos/desconocido", "logistica", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = f.call(t, http.MethodGet, base+"/productos/P1/unidades", "logistica", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), "NIU")
}

func TestGuiaAPI_MotivosYSalud(t *testing.T) {
	f := newAPI(t)

	resp, body := f.call(t, http.MethodGet, "/api/motivos/MT00002", "vendedor", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "PURCHASE")

	resp, _ = f.call(t, http.MethodGet, "/api/motivos", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = f.call(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuiaAPI_Metricas(t *testing.T) {
	f := newAPI(t)
	f.openDraft(t)

	resp, body := f.call(t, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "guias_borradores_abiertos 1")
}

func TestGuiaAPI_LineaConCantidadDecimal(t *testing.T) {
	f := newAPI(t)
	id := f.openDraft(t)

	resp, body := f.call(t, http.MethodPost, "/api/guias/borradores/"+id+"/lineas", "logistica", `{"productoId":"P1","cantidad":"2.5"}`)

	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var out struct {
		Lines []struct {
			Quantity decimal.Decimal `json:"cantidad"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Lines, 1)
	assert.True(t, out.Lines[0].Quantity.Equal(decimal.RequireFromString("2.5")))
}
