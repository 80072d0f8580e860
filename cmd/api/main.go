// @title        Inventario API
// @version      1.0
// @description  API de inventario multi-bodega: productos, stock, traslados y alertas de reposición.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/Inventario-stock/docs"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/docstore"
	infrapdf "github.com/jhoicas/Inventario-stock/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/storefactory"
	httpRouter "github.com/jhoicas/Inventario-stock/internal/interfaces/http"
	"github.com/jhoicas/Inventario-stock/pkg/config"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
)

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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	// Cantidades y costos viajan como números JSON, igual que en los archivos de datos
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	backend, closeStore, err := storefactory.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacén")
	}
	defer closeStore()
	txRunner := docstore.NewTxRunner(backend)

	productUC := usecase.NewProductUseCase(txRunner)
	warehouseUC := usecase.NewWarehouseUseCase(txRunner)
	stockUC := usecase.NewStockLevelUseCase(txRunner)
	transferUC := inventory.NewTransferUseCase(txRunner, log, nil)
	alertUC := inventory.NewAlertUseCase(txRunner, log, nil)
	dashboardUC := inventory.NewDashboardUseCase(txRunner)

	// PDF: informe de reposición a partir de las alertas vigentes
	reportUC := inventory.NewReportUseCase(txRunner, infrapdf.NewMarotoReportGenerator(), nil)

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "Inventario API",
		}))
	} else {
		log.Warn().Str("path", cfg.Swagger.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	if !cfg.JWT.AuthEnabled() {
		log.Warn().Msg("JWT_SECRET vacío: la API no exige autenticación")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		StockUC:     stockUC,
		TransferUC:  transferUC,
		AlertUC:     alertUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		Log:         log,
		JWTSecret:   cfg.JWT.Secret,
		StoreDriver: cfg.Store.Driver,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
