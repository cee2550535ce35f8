package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockQuery StockQueryService
	BulkIngest BulkIngestService
	StoreUC    StoreDirectoryService
	AuthUC     AuthService
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stores (protegido, solo lectura)
	storeHandler := NewStoreHandler(deps.StoreUC)
	protected.Get("/stores", storeHandler.List)

	// Stocks (protegido)
	stockHandler := NewStockHandler(deps.StockQuery, deps.BulkIngest)
	protected.Get("/stocks", stockHandler.List)
	protected.Post("/stocks/bulk", stockHandler.BulkCreate)
	protected.Delete("/stocks/:id", stockHandler.Delete)
}
