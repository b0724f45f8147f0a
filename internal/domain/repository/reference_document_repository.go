package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Guias-api/internal/domain/entity"
)

// ReferenceDocumentFilter filtros de búsqueda de documentos de compra/venta.
// Los campos vacíos no se envían al backend.
type ReferenceDocumentFilter struct {
	CompanyID      string
	ClientID       string
	SupplierID     string
	DocumentTypeID string
	CurrencyID     string
	Term           string // fragmento libre del número de documento
	From           time.Time
	To             time.Time
}

// ReferenceDocumentRepository puerto para buscar e importar documentos de referencia.
type ReferenceDocumentRepository interface {
	Search(ctx context.Context, family entity.DocumentFamily, f ReferenceDocumentFilter, page, pageSize int) (*entity.Page[entity.ReferenceDocumentSummary], error)
	GetByID(ctx context.Context, family entity.DocumentFamily, id string) (*entity.ReferenceDocument, error)
}
