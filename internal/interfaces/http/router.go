package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neonflow/neonflow-api/internal/application/auth"
	"github.com/neonflow/neonflow-api/internal/application/inventory"
	"github.com/neonflow/neonflow-api/internal/application/reject"
	"github.com/neonflow/neonflow-api/internal/application/usecase"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	CatalogUC        *inventory.CatalogUseCase
	BulkImportUC     *inventory.BulkImportUseCase
	StockCardUC      *inventory.StockCardUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	EditMovement     *inventory.EditMovementUseCase
	RejectUC         *reject.UseCase
	UserUC           *usecase.UserUseCase
	PlaylistUC       *usecase.PlaylistUseCase
	AIUC             *usecase.AIUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público). No hay registro abierto: los usuarios los crea un admin.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventory: catálogo, importador masivo y kardex (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.CatalogUC, deps.BulkImportUC, deps.StockCardUC)
	invGroup.Get("/items", inventoryHandler.ListItems)
	invGroup.Post("/items/import", inventoryHandler.ImportItems)
	invGroup.Get("/items/:id", inventoryHandler.GetItem)
	invGroup.Get("/items/:id/stock-card", inventoryHandler.GetStockCard)
	invGroup.Get("/items/:id/stock-card/pdf", inventoryHandler.ExportStockCardPDF)

	// Stock movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.EditMovement)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Rejects / mermas (protegido)
	rejects := protected.Group("/reject")
	rejectHandler := NewRejectHandler(deps.RejectUC)
	rejects.Get("/master", rejectHandler.ListMaster)
	rejects.Post("/master", rejectHandler.SyncMaster)
	rejects.Get("/records", rejectHandler.ListRecords)
	rejects.Post("/records", rejectHandler.CreateRecord)

	// Users (protegido, solo ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Playlist (protegido)
	playlist := protected.Group("/playlist")
	playlistHandler := NewPlaylistHandler(deps.PlaylistUC)
	playlist.Get("/", playlistHandler.List)
	playlist.Post("/", playlistHandler.Add)
	playlist.Delete("/:id", playlistHandler.Remove)

	// AI insights (protegido)
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Get("/insights", aiHandler.AnalyzeHealth)
	ai.Get("/restock-plan", aiHandler.RestockPlan)
}
