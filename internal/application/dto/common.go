package dto

// PageRequest paginación 1-based para búsquedas.
type PageRequest struct {
	Page int `query:"page" validate:"omitempty,min=1"`
}

// DefaultPage aplica la primera página si Page es cero o negativo.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
}

// ErrorResponse cuerpo de error HTTP. Fields detalla los campos inválidos (campo → mensaje).
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
