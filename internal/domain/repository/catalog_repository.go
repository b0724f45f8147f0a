package repository

import (
	"context"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
)

// CatalogRepository puerto de lectura de catálogos desplegables del backend ERP (DIP).
type CatalogRepository interface {
	ListWarehouses(ctx context.Context, companyID string) ([]entity.Warehouse, error)
	ListParties(ctx context.Context, companyID string, kind entity.PartyKind) ([]entity.Party, error)
	ListProducts(ctx context.Context, companyID string) ([]entity.Product, error)
	ListSeries(ctx context.Context, companyID string) ([]entity.Series, error)
	ListReferenceDocumentTypes(ctx context.Context) ([]entity.Option, error)
	ListCurrencies(ctx context.Context) ([]entity.Currency, error)
}
