package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appguia "github.com/jhoicas/Guias-api/internal/application/guia"
	"github.com/jhoicas/Guias-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Guias-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName            string
	Drafts             *appguia.DraftUseCase
	Exports            *appguia.ExportUseCase
	Metrics            *metrics.Metrics // nil = sin /metrics
	JWTSecret          string
	DefaultWarehouseID string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.DefaultWarehouseID))

	motiveHandler := NewMotiveHandler()
	api.Get("/motivos", motiveHandler.List)
	api.Get("/motivos/:code", motiveHandler.Get)

	drafts := api.Group("/guias/borradores")
	guiaHandler := NewGuiaHandler(deps.Drafts, deps.Exports)
	drafts.Post("/", guiaHandler.Open)
	drafts.Get("/:id", guiaHandler.Get)
	drafts.Delete("/:id", guiaHandler.Discard)
	drafts.Patch("/:id/cabecera", guiaHandler.UpdateHeader)
	drafts.Post("/:id/lineas", guiaHandler.AddLine)
	drafts.Put("/:id/lineas/:item", guiaHandler.UpdateLine)
	drafts.Delete("/:id/lineas/:item", guiaHandler.RemoveLine)
	drafts.Get("/:id/catalogos/:kind", guiaHandler.Catalog)
	drafts.Get("/:id/productos/:productId/unidades", guiaHandler.Units)
	drafts.Get("/:id/documentos-referencia", guiaHandler.SearchReferences)
	drafts.Post("/:id/documentos-referencia/:docId/importar", guiaHandler.ImportReference)
	drafts.Post("/:id/emitir", RequireRole(jwt.RoleAdmin, jwt.RoleLogistica), guiaHandler.Submit)
	drafts.Get("/:id/pdf", guiaHandler.PDF)
	drafts.Get("/:id/lineas.xlsx", guiaHandler.Lines)

	transportHandler := NewTransportHandler(deps.Drafts)
	drafts.Post("/:id/transportistas", transportHandler.CreateCarrier)
	drafts.Post("/:id/conductores", transportHandler.CreateDriver)
	drafts.Post("/:id/vehiculos", transportHandler.CreateVehicle)
}
