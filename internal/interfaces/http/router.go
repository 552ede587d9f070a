package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      AuthService
	ProductUC   ProductService
	SaleUC      SaleService
	ReportUC    ReportService
	DashboardUC DashboardService
	JWTSecret   string
	Location    *time.Location
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Medicamentos
	products := protected.Group("/medicamentos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.AddStock)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Ventas
	sales := protected.Group("/ventas")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Location)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Register)

	// Reportes
	reports := protected.Group("/reportes")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.Get)
	reports.Get("/pdf", reportHandler.PDF)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
