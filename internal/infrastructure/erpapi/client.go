// Package erpapi implementa los puertos de repositorio sobre la API REST del ERP.
// Todas las respuestas usan el sobre {isSuccess, data, message, meta}.
package erpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Guias-api/internal/domain"
	"github.com/jhoicas/Guias-api/internal/infrastructure/metrics"
)

const (
	defaultTimeout   = 15 * time.Second
	dropdownPageSize = 500
	maxDropdownPages = 50
)

// Config datos de conexión al backend.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client cliente HTTP del backend ERP basado en el Agent de fiber.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// NewClient crea el cliente. m puede ser nil.
func NewClient(cfg Config, log zerolog.Logger, m *metrics.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		timeout: timeout,
		log:     log.With().Str("component", "erpapi").Logger(),
		metrics: m,
	}
}

// envelope sobre uniforme de respuesta.
type envelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Meta      *pageMeta       `json:"meta"`
}

type pageMeta struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
}

// call describe una petición. Route es la plantilla usada como etiqueta de métricas.
type call struct {
	Method string
	Path   string
	Route  string
	Query  url.Values
	Body   any
}

// do ejecuta la petición, valida el sobre y decodifica data en out (si no es nil).
func (c *Client) do(ctx context.Context, req call, out any) (*pageMeta, error) {
	if req.Route == "" {
		req.Route = req.Path
	}
	start := time.Now()
	meta, status, err := c.exchange(ctx, req, out)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeOK
	var berr *domain.BackendError
	if errors.As(err, &berr) {
		outcome = metrics.OutcomeUnavailable
		if berr.Rejected {
			outcome = metrics.OutcomeRejected
		}
	}
	c.metrics.ObserveBackend(req.Route, outcome, elapsed)

	ev := c.log.Debug()
	if err != nil {
		ev = c.log.Warn().Err(err)
	}
	ev.Str("method", req.Method).Str("endpoint", req.Route).Int("status", status).
		Dur("elapsed", elapsed).Msg("llamada al backend")
	return meta, err
}

func (c *Client) exchange(ctx context.Context, req call, out any) (*pageMeta, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, &domain.BackendError{Endpoint: req.Route, Cause: err}
	}
	timeout := c.timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}

	var a *fiber.Agent
	switch req.Method {
	case fiber.MethodPost:
		a = fiber.Post(c.baseURL + req.Path)
	default:
		a = fiber.Get(c.baseURL + req.Path)
	}
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON).
		Set(fiber.HeaderAuthorization, "Bearer "+c.token).
		Timeout(timeout)
	if len(req.Query) > 0 {
		a.QueryString(req.Query.Encode())
	}
	if req.Body != nil {
		a.JSON(req.Body)
	}
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return nil, 0, &domain.BackendError{Endpoint: req.Route, Cause: err}
	}

	status, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, status, &domain.BackendError{Endpoint: req.Route, Cause: errs[0]}
	}
	if status >= fiber.StatusInternalServerError {
		return nil, status, &domain.BackendError{Endpoint: req.Route, StatusCode: status, Message: fiber.ErrInternalServerError.Message}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, status, &domain.BackendError{Endpoint: req.Route, StatusCode: status, Cause: fmt.Errorf("respuesta no JSON: %w", err)}
	}
	if !env.IsSuccess {
		msg := env.Message
		if msg == "" {
			msg = "el servidor rechazó la operación sin detalle"
		}
		return nil, status, &domain.BackendError{Endpoint: req.Route, StatusCode: status, Message: msg, Rejected: true}
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, status, &domain.BackendError{Endpoint: req.Route, StatusCode: status, Cause: fmt.Errorf("data inválida: %w", err)}
		}
	}
	return env.Meta, status, nil
}

// listQuery arma los parámetros comunes de listados.
func listQuery(page, pageSize int, term string, filters map[string]any) url.Values {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("pageSize", fmt.Sprint(pageSize))
	q.Set("term", term)
	if f, ok := encodeFilters(filters); ok {
		q.Set("filters", f)
	}
	return q
}

// listAll recorre todas las páginas de un desplegable y convierte cada fila.
func listAll[W any, T any](ctx context.Context, c *Client, path string, filters map[string]any, conv func(W) T) ([]T, error) {
	var out []T
	for page := 1; page <= maxDropdownPages; page++ {
		var rows []W
		meta, err := c.do(ctx, call{Method: fiber.MethodGet, Path: path, Query: listQuery(page, dropdownPageSize, "", filters)}, &rows)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = make([]T, 0, len(rows))
		}
		for _, r := range rows {
			out = append(out, conv(r))
		}
		if meta == nil || page >= meta.TotalPages || len(rows) == 0 {
			break
		}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
