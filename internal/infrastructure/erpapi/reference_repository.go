package erpapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Guias-api/internal/domain"
	"github.com/jhoicas/Guias-api/internal/domain/entity"
	"github.com/jhoicas/Guias-api/internal/domain/repository"
)

// ReferenceDocumentRepository implementa repository.ReferenceDocumentRepository sobre
// /documentos-compra y /documentos-venta.
type ReferenceDocumentRepository struct {
	c *Client
}

// NewReferenceDocumentRepository crea el repositorio de documentos de referencia.
func NewReferenceDocumentRepository(c *Client) *ReferenceDocumentRepository {
	return &ReferenceDocumentRepository{c: c}
}

var _ repository.ReferenceDocumentRepository = (*ReferenceDocumentRepository)(nil)

func collection(family entity.DocumentFamily) (string, error) {
	switch family {
	case entity.FamilyPurchase:
		return "/documentos-compra", nil
	case entity.FamilySale:
		return "/documentos-venta", nil
	default:
		return "", fmt.Errorf("%w: familia de documento %q", domain.ErrInvalidInput, family)
	}
}

// Search busca documentos. El filtro de contraparte viaja al backend para ambas familias:
// proveedorId en compras, clienteId en ventas.
func (r *ReferenceDocumentRepository) Search(ctx context.Context, family entity.DocumentFamily, f repository.ReferenceDocumentFilter, page, pageSize int) (*entity.Page[entity.ReferenceDocumentSummary], error) {
	path, err := collection(family)
	if err != nil {
		return nil, err
	}
	filters := map[string]any{
		"empresaId":       f.CompanyID,
		"tipoDocumentoId": f.DocumentTypeID,
		"monedaId":        f.CurrencyID,
		"fechaDesde":      f.From,
		"fechaHasta":      f.To,
	}
	if family == entity.FamilyPurchase {
		filters["proveedorId"] = f.SupplierID
	} else {
		filters["clienteId"] = f.ClientID
	}

	var rows []wireReferenceSummary
	meta, err := r.c.do(ctx, call{Method: fiber.MethodGet, Path: path, Query: listQuery(page, pageSize, f.Term, filters)}, &rows)
	if err != nil {
		return nil, err
	}
	out := &entity.Page[entity.ReferenceDocumentSummary]{
		Items: make([]entity.ReferenceDocumentSummary, 0, len(rows)),
		Page:  page,
	}
	for _, row := range rows {
		out.Items = append(out.Items, toReferenceSummary(row))
	}
	if meta != nil {
		if meta.CurrentPage > 0 {
			out.Page = meta.CurrentPage
		}
		out.TotalPages = meta.TotalPages
		out.TotalRecords = meta.TotalRecords
	} else {
		out.TotalRecords = len(rows)
		if len(rows) > 0 {
			out.TotalPages = 1
		}
	}
	return out, nil
}

// GetByID trae el documento completo con su detalle.
func (r *ReferenceDocumentRepository) GetByID(ctx context.Context, family entity.DocumentFamily, id string) (*entity.ReferenceDocument, error) {
	path, err := collection(family)
	if err != nil {
		return nil, err
	}
	var doc wireReferenceDocument
	_, err = r.c.do(ctx, call{
		Method: fiber.MethodGet,
		Path:   path + "/" + url.PathEscape(id),
		Route:  path + "/:id",
	}, &doc)
	if err != nil {
		return nil, err
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("%w: documento %s", domain.ErrNotFound, id)
	}
	return toReferenceDocument(family, doc), nil
}
