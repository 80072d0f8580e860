package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/pkg/jwt"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	StockUC     *usecase.StockLevelUseCase
	TransferUC  *inventory.TransferUseCase
	AlertUC     *inventory.AlertUseCase
	ReportUC    *inventory.ReportUseCase
	DashboardUC *inventory.DashboardUseCase
	Log         *logger.Logger
	JWTSecret   string // vacío = API abierta
	StoreDriver string
}

// NewApp construye la aplicación Fiber con request id, log de peticiones, recover y errores JSON.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(requestid.New())
	app.Use(RequestLogger(log.Component("http")))
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Store: deps.StoreDriver})
	})

	api := app.Group("/api")

	// Con JWT_SECRET todas las rutas exigen token y las escrituras un rol con permisos
	write := func(c *fiber.Ctx) error { return c.Next() }
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
		write = RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero)
	}

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/", productHandler.List)
	products.Post("/", write, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", write, productHandler.Update)
	products.Delete("/:id", write, productHandler.Delete)

	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", write, warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", write, warehouseHandler.Update)
	warehouses.Delete("/:id", write, warehouseHandler.Delete)

	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.Log)
	stock.Get("/", stockHandler.List)
	stock.Post("/", write, stockHandler.Create)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Put("/:id", write, stockHandler.Update)
	stock.Delete("/:id", write, stockHandler.Delete)

	transfers := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC, deps.Log)
	transfers.Get("/", transferHandler.List)
	transfers.Post("/", write, transferHandler.Create)

	alerts := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC, deps.ReportUC, deps.Log)
	alerts.Get("/", alertHandler.List)
	alerts.Get("/stats", alertHandler.Stats)
	alerts.Get("/report.pdf", alertHandler.Report)
	alerts.Patch("/", write, alertHandler.Update)
	alerts.Patch("/:id", write, alertHandler.Update)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	api.Get("/dashboard", dashboardHandler.GetSummary)
}
