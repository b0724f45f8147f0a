package guia

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Guias-api/internal/application/dto"
	"github.com/jhoicas/Guias-api/internal/domain"
	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
	"github.com/jhoicas/Guias-api/pkg/sunat"
)

func TestOpen_CargaCatalogosYValoresPorDefecto(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	assert.Equal(t, "D-1", resp.ID)
	assert.Equal(t, "TD09", resp.Header.DocumentTypeID)
	assert.Equal(t, "T001", resp.Header.Serie)
	assert.Equal(t, "S1", resp.Header.SeriesID)
	assert.Equal(t, "0000042", resp.Header.Correlativo)
	assert.Equal(t, "CUR-PEN", resp.Header.CurrencyID)
	assert.Equal(t, "ALM-01", resp.Header.OriginWarehouseID)
	assert.Equal(t, "2026-10-16", resp.Header.EmissionDate)
	assert.True(t, resp.RequiresSunat)
	assert.Empty(t, resp.Lines)
	assert.Equal(t, 1, f.rec.opened)
	assert.Equal(t, 1, f.store.Len())
}

func TestOpen_FallaDeCatalogoNoCreaSesion(t *testing.T) {
	f := newFixture(t)
	f.catalog.warehouseErr = &domain.BackendError{Endpoint: "/almacenes/dropdown", Cause: errors.New("timeout")}

	_, err := f.uc.Open(context.Background(), testSession)

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, 0, f.rec.opened)
}

func TestOpen_AlmacenFueraDelCatalogo(t *testing.T) {
	f := newFixture(t)
	sc := testSession
	sc.WarehouseID = "ALM-99"

	_, err := f.uc.Open(context.Background(), sc)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "almacenId", verr.Fields[0].Field)
	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, 0, f.rec.opened)
}

func TestOpen_AlmacenAlternativo(t *testing.T) {
	f := newFixture(t)
	sc := testSession
	sc.WarehouseID = "ALM-02"

	resp, err := f.uc.Open(context.Background(), sc)
	require.NoError(t, err)
	assert.Equal(t, "ALM-02", resp.Header.OriginWarehouseID)
}

func TestOpen_SinEmpresaEsNoAutorizado(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), rules.SessionContext{UserID: "U"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEscenario_MT00004ClienteLineaYEmision(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Open(ctx, testSession)
	require.NoError(t, err)

	resp, err := f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{MotiveCode: strPtr(sunat.MotiveVentaSujetaConfirmacion)})
	require.NoError(t, err)
	assert.True(t, resp.Policy.ShowClient)
	assert.False(t, resp.Policy.ShowSupplier)

	resp, err = f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{ClientID: strPtr("CLI-01")})
	require.NoError(t, err)
	assert.Equal(t, "AV. LIMA 123", resp.Header.DestinationAddress)
	assert.Equal(t, "AV. INDUSTRIAL 450, ATE", resp.Header.OriginAddress)

	_, err = f.uc.AddLine(testSession, "D-1", dto.LineRequest{ProductID: "P1", Quantity: decimal.NewFromInt(5)})
	require.NoError(t, err)

	out, err := f.uc.Submit(ctx, testSession, "D-1")
	require.NoError(t, err)

	require.Len(t, f.shipments.calls, 1)
	call := f.shipments.calls[0]
	assert.True(t, call.validate, "la serie T001 requiere SUNAT")
	require.Len(t, call.lines, 1)
	assert.True(t, call.lines[0].Quantity.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "AV. LIMA 123", call.header.DestinationAddress)
	assert.Equal(t, ModeRegisterSunat, out.Mode)
	assert.Equal(t, "ACEPTADO", out.SunatStatus)

	assert.Equal(t, 0, f.store.Len(), "la sesión se cierra tras emitir")
	assert.Equal(t, 1, f.rec.closed)
	assert.Equal(t, 1, f.rec.submitted[ModeRegisterSunat])
	_, err = f.uc.Get(testSession, "D-1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestSubmit_BorradorInvalidoNoLlamaAlBackend(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)
	_, err = f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{MotiveCode: strPtr(sunat.MotiveVenta)})
	require.NoError(t, err)

	_, err = f.uc.Submit(context.Background(), testSession, "D-1")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]bool{}
	for _, fe := range verr.Fields {
		fields[fe.Field] = true
	}
	assert.True(t, fields["clienteId"])
	assert.True(t, fields["items"])
	assert.Empty(t, f.shipments.calls)
	assert.Equal(t, 1, f.store.Len(), "el borrador se conserva")
}

func TestSubmit_SerieSinSunatUsaRegistroSimple(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)
	resp, err := f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{
		Serie:      strPtr("T002"),
		MotiveCode: strPtr(sunat.MotiveTrasladoEstablecimiento),
	})
	require.NoError(t, err)
	assert.Equal(t, "0000001", resp.Header.Correlativo)
	assert.False(t, resp.RequiresSunat)
	_, err = f.uc.AddLine(testSession, "D-1", dto.LineRequest{ProductID: "P2", Quantity: decimal.RequireFromString("2.5")})
	require.NoError(t, err)

	out, err := f.uc.Submit(context.Background(), testSession, "D-1")
	require.NoError(t, err)

	require.Len(t, f.shipments.calls, 1)
	assert.False(t, f.shipments.calls[0].validate)
	assert.Equal(t, ModeRegister, out.Mode)
	assert.Equal(t, "0000001", out.Correlativo)
}

func TestUpdateHeader_CambioDeTipoReiniciaSerie(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Open(ctx, testSession)
	require.NoError(t, err)

	resp, err := f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{
		DocumentTypeID:         strPtr("TDINT"),
		MotiveCode:             strPtr(sunat.MotiveTrasladoEstablecimiento),
		DestinationWarehouseID: strPtr("ALM-02"),
	})
	require.NoError(t, err)
	assert.Equal(t, "TDINT", resp.Header.DocumentTypeID)
	assert.Empty(t, resp.Header.Serie)
	assert.Empty(t, resp.Header.SeriesID)
	assert.Empty(t, resp.Header.Correlativo)
	assert.False(t, resp.RequiresSunat)

	_, err = f.uc.AddLine(testSession, "D-1", dto.LineRequest{ProductID: "P1", Quantity: decimal.NewFromInt(3)})
	require.NoError(t, err)
	_, err = f.uc.Submit(ctx, testSession, "D-1")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "serie", verr.Fields[0].Field)
	assert.Empty(t, f.shipments.calls, "sin serie no se emite")

	resp, err = f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{
		DocumentTypeID: strPtr("TD09"),
		Serie:          strPtr("T001"),
	})
	require.NoError(t, err)
	assert.Equal(t, "S1", resp.Header.SeriesID)
	assert.Equal(t, "0000042", resp.Header.Correlativo)
	assert.True(t, resp.RequiresSunat)

	out, err := f.uc.Submit(ctx, testSession, "D-1")
	require.NoError(t, err)
	require.Len(t, f.shipments.calls, 1)
	assert.True(t, f.shipments.calls[0].validate)
	assert.Equal(t, "TD09", f.shipments.calls[0].header.DocumentTypeID)
	assert.Equal(t, ModeRegisterSunat, out.Mode)
	assert.Equal(t, "0000042", out.Correlativo)
}

func TestSubmit_RechazoDelBackendConservaBorrador(t *testing.T) {
	f := newFixture(t)
	f.shipments.err = &domain.BackendError{Endpoint: "/guias-remision/validar-sunat", Message: "Serie no autorizada", Rejected: true}
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)
	_, err = f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{MotiveCode: strPtr(sunat.MotiveEmisorItinerante)})
	require.NoError(t, err)
	_, err = f.uc.AddLine(testSession, "D-1", dto.LineRequest{ProductID: "P1", Quantity: decimal.NewFromInt(1)})
	require.NoError(t, err)

	_, err = f.uc.Submit(context.Background(), testSession, "D-1")
	assert.ErrorIs(t, err, domain.ErrBackendRejected)

	resp, err := f.uc.Get(testSession, "D-1")
	require.NoError(t, err)
	assert.Len(t, resp.Lines, 1)
	assert.Equal(t, 0, f.rec.closed)
}

func TestUpdateHeader_CampoInvalidoNoModificaBorrador(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	_, err = f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{
		MotiveCode: strPtr(sunat.MotiveVenta),
		ClientID:   strPtr("NO-EXISTE"),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "clienteId", verr.Fields[0].Field)

	resp, err := f.uc.Get(testSession, "D-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Header.MotiveCode, "el motivo tampoco se aplica")
}

func TestUpdateHeader_ClienteNoPermitidoPorMotivo(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	_, err = f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{
		MotiveCode: strPtr(sunat.MotiveCompra),
		ClientID:   strPtr("CLI-01"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateHeader_MotivoDesconocido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	_, err = f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{MotiveCode: strPtr("MT99999")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateHeader_CorrelativoManual(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	_, err = f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{Correlativo: strPtr("0000900")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin modo manual no se edita")

	resp, err := f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{
		ManualCorrelativo: boolPtr(true),
		Correlativo:       strPtr("0000900"),
	})
	require.NoError(t, err)
	assert.Equal(t, "0000900", resp.Header.Correlativo)

	resp, err = f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{ManualCorrelativo: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, "0000042", resp.Header.Correlativo)
}

func TestUpdateHeader_TrasladoEntreAlmacenes(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	resp, err := f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{
		MotiveCode:             strPtr(sunat.MotiveTrasladoEstablecimiento),
		DestinationWarehouseID: strPtr("ALM-02"),
		TransferDate:           strPtr("2026-10-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, "AV. INDUSTRIAL 450, ATE", resp.Header.OriginAddress)
	assert.Equal(t, "JR. HUALLAGA 88, CALLAO", resp.Header.DestinationAddress)
	assert.Len(t, resp.Warnings, 1, "traslado anterior a la emisión")
}

func TestUpdateHeader_CambioDeModalidadLimpiaSeleccion(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	_, err = f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{
		TransportMode: strPtr(sunat.TransportModePrivado),
		DriverID:      strPtr("DR-1"),
		VehicleID:     strPtr("VH-1"),
	})
	require.NoError(t, err)

	resp, err := f.uc.UpdateHeader(testSession, "D-1", dto.UpdateHeaderRequest{
		TransportMode: strPtr(sunat.TransportModePublico),
		CarrierID:     strPtr("TR-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "TR-1", resp.Header.CarrierID)
	assert.Empty(t, resp.Header.DriverID)
	assert.Empty(t, resp.Header.VehicleID)
}

func TestAddLine_UnidadDePresentacion(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	resp, err := f.uc.AddLine(testSession, "D-1", dto.LineRequest{ProductID: "P1", UnitKey: "BX:PR1", Quantity: decimal.NewFromInt(3)})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "CAJA x 12", resp.Lines[0].UnitLabel)
	require.NotNil(t, resp.Lines[0].PresentationID)
	assert.Equal(t, "PR1", *resp.Lines[0].PresentationID)
}

func TestAddLine_ErroresDeValidacion(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	_, err = f.uc.AddLine(testSession, "D-1", dto.LineRequest{ProductID: "P1", UnitKey: "KGM", Quantity: decimal.Zero})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)

	_, err = f.uc.AddLine(testSession, "D-1", dto.LineRequest{ProductID: "NOPE", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemoveLine_RenumeraYNoEncontrado(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)
	for _, p := range []string{"P1", "P2", "P1"} {
		_, err = f.uc.AddLine(testSession, "D-1", dto.LineRequest{ProductID: p, Quantity: decimal.NewFromInt(1)})
		require.NoError(t, err)
	}

	resp, err := f.uc.RemoveLine(testSession, "D-1", 1)
	require.NoError(t, err)
	require.Len(t, resp.Lines, 2)
	assert.Equal(t, 1, resp.Lines[0].Item)
	assert.Equal(t, "P2", resp.Lines[0].ProductID)
	assert.Equal(t, 2, resp.Lines[1].Item)

	_, err = f.uc.RemoveLine(testSession, "D-1", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.UpdateLine(testSession, "D-1", 5, dto.LineRequest{ProductID: "P1", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnits_OpcionesDelProducto(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	resp, err := f.uc.Units(testSession, "D-1", "P1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].Base)
	assert.Equal(t, "NIU", resp.Items[0].Key)

	_, err = f.uc.Units(testSession, "D-1", "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_FiltroSinTildesNiMayusculas(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	resp, err := f.uc.Catalog(testSession, "D-1", KindClients, "AÑIL")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "CLI-01", resp.Items[0].ID)

	resp, err = f.uc.Catalog(testSession, "D-1", KindClients, "perez")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "CLI-02", resp.Items[0].ID)

	_, err = f.uc.Catalog(testSession, "D-1", "bancos", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWithSession_OtroUsuarioNoAccede(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	other := testSession
	other.UserID = "USR-2"
	_, err = f.uc.Get(other, "D-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDiscard_CierraSesion(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Open(context.Background(), testSession)
	require.NoError(t, err)

	require.NoError(t, f.uc.Discard(testSession, "D-1"))

	_, err = f.uc.Get(testSession, "D-1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	assert.Equal(t, 1, f.rec.closed)
	assert.ErrorIs(t, f.uc.Discard(testSession, "D-1"), domain.ErrDraftNotFound)
}

func TestMotives_CatalogoYDesconocido(t *testing.T) {
	list := ListMotives()
	require.Len(t, list, len(sunat.Motives))

	m := GetMotive(sunat.MotiveCompra)
	assert.True(t, m.Policy.ShowSupplier)
	assert.True(t, m.SearchEnabled)
	assert.Equal(t, "PURCHASE", m.Policy.ReferenceDocumentFamily)

	unknown := GetMotive("MT99999")
	assert.False(t, unknown.SearchEnabled)
	assert.Equal(t, "NONE", unknown.Policy.ReferenceDocumentFamily)
	assert.Empty(t, unknown.Description)
}

func boolPtr(b bool) *bool { return &b }
