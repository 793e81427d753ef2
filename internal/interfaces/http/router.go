package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/audit"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/auth"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/catalog"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/inventory"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/pos"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/application/reports"
	"github.com/arasdeocampo-max/SALES-AND-INVENTORY/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CatalogUC   *catalog.UseCase
	InventoryUC *inventory.UseCase
	POSUC       *pos.UseCase
	ReportsUC   *reports.UseCase
	Audit       *audit.Recorder
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido; el borrado es solo Admin)
	medicines := protected.Group("/medicines")
	medicineHandler := NewMedicineHandler(deps.CatalogUC, deps.InventoryUC)
	medicines.Post("/", medicineHandler.Create)
	medicines.Get("/", medicineHandler.List)
	medicines.Get("/barcode/:code", medicineHandler.GetByBarcode)
	medicines.Get("/:id", medicineHandler.GetByID)
	medicines.Put("/:id", medicineHandler.Update)
	medicines.Delete("/:id", RequireRole(entity.RoleAdmin), medicineHandler.Delete)

	// Inventario (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/:medicineId", inventoryHandler.GetLedger)

	// Punto de venta (protegido)
	posGroup := protected.Group("/pos")
	posHandler := NewPOSHandler(deps.POSUC)
	posGroup.Post("/sales", posHandler.CreateSale)

	// Reportes y dashboard (protegido)
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/stock", reportHandler.StockList)
	reportsGroup.Get("/reorder", reportHandler.ReorderList)
	reportsGroup.Get("/revenue", reportHandler.Revenue)
	protected.Get("/sales", reportHandler.SalesHistory)
	protected.Get("/dashboard", reportHandler.Dashboard)

	// Audit trail (protegido, solo Admin)
	auditHandler := NewAuditHandler(deps.Audit)
	protected.Get("/audit", RequireRole(entity.RoleAdmin), auditHandler.List)
}
