package erpapi

import (
	"context"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
	"github.com/jhoicas/Guias-api/internal/domain/repository"
)

// CatalogRepository implementa repository.CatalogRepository sobre los desplegables del ERP.
type CatalogRepository struct {
	c *Client
}

// NewCatalogRepository crea el repositorio de catálogos.
func NewCatalogRepository(c *Client) *CatalogRepository {
	return &CatalogRepository{c: c}
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

func companyFilter(companyID string) map[string]any {
	return map[string]any{"empresaId": companyID}
}

func (r *CatalogRepository) ListWarehouses(ctx context.Context, companyID string) ([]entity.Warehouse, error) {
	return listAll(ctx, r.c, "/almacenes/dropdown", companyFilter(companyID), toWarehouse)
}

func (r *CatalogRepository) ListParties(ctx context.Context, companyID string, kind entity.PartyKind) ([]entity.Party, error) {
	path := "/clientes/dropdown"
	if kind == entity.PartySupplier {
		path = "/proveedores/dropdown"
	}
	return listAll(ctx, r.c, path, companyFilter(companyID), partyConverter(kind))
}

func (r *CatalogRepository) ListProducts(ctx context.Context, companyID string) ([]entity.Product, error) {
	return listAll(ctx, r.c, "/productos/dropdown", companyFilter(companyID), toProduct)
}

func (r *CatalogRepository) ListSeries(ctx context.Context, companyID string) ([]entity.Series, error) {
	return listAll(ctx, r.c, "/series/guia-remision", companyFilter(companyID), toSeries)
}

func (r *CatalogRepository) ListReferenceDocumentTypes(ctx context.Context) ([]entity.Option, error) {
	return listAll(ctx, r.c, "/tipos-documento-referencia/dropdown", nil, toOption)
}

func (r *CatalogRepository) ListCurrencies(ctx context.Context) ([]entity.Currency, error) {
	return listAll(ctx, r.c, "/monedas/dropdown", nil, toCurrency)
}
