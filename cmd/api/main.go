package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appguia "github.com/jhoicas/Guias-api/internal/application/guia"
	"github.com/jhoicas/Guias-api/internal/infrastructure/erpapi"
	"github.com/jhoicas/Guias-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Guias-api/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/Guias-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Guias-api/internal/interfaces/http"
	"github.com/jhoicas/Guias-api/pkg/config"
	"github.com/jhoicas/Guias-api/pkg/jwt"
	"github.com/jhoicas/Guias-api/pkg/logger"
)

const janitorInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("erp", cfg.ERP.BaseURL).
		Msg("iniciando aplicación")

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	erp := erpapi.NewClient(erpapi.Config{
		BaseURL: cfg.ERP.BaseURL,
		Token:   cfg.ERP.Token,
		Timeout: cfg.ERP.Timeout,
	}, log.Component("erpapi"), m)
	catalogRepo := erpapi.NewCatalogRepository(erp)
	transportRepo := erpapi.NewTransportRepository(erp)
	referenceRepo := erpapi.NewReferenceDocumentRepository(erp)
	shipmentRepo := erpapi.NewShipmentRepository(erp)

	// Borradores en memoria: cada expiración descuenta el gauge de borradores abiertos.
	store := appguia.NewStore(cfg.Session.DraftTTL, func(n int) {
		for i := 0; i < n; i++ {
			m.DraftClosed()
		}
		log.Info().Int("drafts", n).Msg("borradores expirados")
	})
	ctx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go store.RunJanitor(ctx, janitorInterval)

	draftUC := appguia.NewDraftUseCase(
		catalogRepo, transportRepo, referenceRepo, shipmentRepo,
		store, m, log.Component("guias"),
	)
	exportUC := appguia.NewExportUseCase(draftUC, infrapdf.NewMarotoRenderer(cfg.App.Name), infraxlsx.NewExcelizeExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.ERP.Timeout + time.Second*10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Guías de Remisión API",
		}))
	} else if cfg.App.SwaggerFile != "" {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger no disponible")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:            cfg.App.Name,
		Drafts:             draftUC,
		Exports:            exportUC,
		Metrics:            m,
		JWTSecret:          cfg.JWT.Secret,
		DefaultWarehouseID: cfg.Session.WarehouseID,
	})

	if cfg.App.Env == "development" {
		logDevToken(log, cfg)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopJanitor()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// logDevToken emite un token con la sesión por defecto de la configuración para probar
// la API sin un emisor de tokens externo.
func logDevToken(log *logger.Logger, cfg *config.Config) {
	if cfg.JWT.Secret == "" || cfg.Session.CompanyID == "" || cfg.Session.UserID == "" {
		return
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, jwt.Identity{
		UserID:      cfg.Session.UserID,
		CompanyID:   cfg.Session.CompanyID,
		WarehouseID: cfg.Session.WarehouseID,
		Role:        jwt.RoleAdmin,
	}, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Warn().Err(err).Msg("token de desarrollo")
		return
	}
	log.Info().Str("token", tok).Msg("token de desarrollo (solo APP_ENV=development)")
}
