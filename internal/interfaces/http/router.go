package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC       *usecase.ClientUseCase
	DocumentTypeUC *usecase.DocumentTypeUseCase
	PurchaseUC     *usecase.PurchaseUseCase
	ExportUC       *usecase.ExportUseCase
	ReportUC       *usecase.LoyaltyReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	clientHandler := NewClientHandler(deps.ClientUC, deps.ExportUC)
	reportHandler := NewReportHandler(deps.ReportUC)

	// Rutas de consulta con forma fija (compatibilidad con clientes existentes)
	app.Get("/client/search", clientHandler.Search)
	app.Get("/client/export", clientHandler.Export)
	app.Get("/reports/loyal-customers", reportHandler.LoyalCustomers)

	// API de registro (reemplaza la captura de datos del back-office)
	api := app.Group("/api")

	docTypes := api.Group("/document-types")
	docTypeHandler := NewDocumentTypeHandler(deps.DocumentTypeUC)
	docTypes.Post("/", docTypeHandler.Create)
	docTypes.Get("/", docTypeHandler.List)
	docTypes.Delete("/:code", docTypeHandler.Delete)

	clients := api.Group("/clients")
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	clients.Post("/:id/purchases", purchaseHandler.Register)
	clients.Get("/:id/purchases", purchaseHandler.List)
}
