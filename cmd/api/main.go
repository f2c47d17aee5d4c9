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

	"github.com/neonflow/neonflow-api/internal/application/auth"
	"github.com/neonflow/neonflow-api/internal/application/inventory"
	"github.com/neonflow/neonflow-api/internal/application/ports"
	"github.com/neonflow/neonflow-api/internal/application/reject"
	"github.com/neonflow/neonflow-api/internal/application/usecase"
	infraai "github.com/neonflow/neonflow-api/internal/infrastructure/ai"
	infrapdf "github.com/neonflow/neonflow-api/internal/infrastructure/pdf"
	"github.com/neonflow/neonflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/neonflow/neonflow-api/internal/interfaces/http"
	"github.com/neonflow/neonflow-api/pkg/config"
	"github.com/neonflow/neonflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewStockItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	rejectMasterRepo := postgres.NewRejectMasterRepository(pool)
	rejectRecordRepo := postgres.NewRejectRecordRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	playlistRepo := postgres.NewPlaylistRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Inventario: catálogo, importador masivo y ledger de movimientos
	catalogUC := inventory.NewCatalogUseCase(itemRepo)
	bulkImportUC := inventory.NewBulkImportUseCase(txRunner)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	editMovementUC := inventory.NewEditMovementUseCase(txRunner, movementRepo)

	// Kardex: reconstrucción de saldos + exportación PDF
	pdfGenerator := infrapdf.NewMarotoStockCardGenerator()
	stockCardUC := inventory.NewStockCardUseCase(itemRepo, movementRepo, pdfGenerator)

	rejectUC := reject.NewUseCase(rejectMasterRepo, rejectRecordRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	playlistUC := usecase.NewPlaylistUseCase(playlistRepo)

	// Proveedor de IA intercambiable vía AI_PROVIDER (gemini | anthropic)
	var llm ports.InsightService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	log.Info().Str("provider", llm.Provider()).Msg("proveedor de IA configurado")
	aiUC := usecase.NewAIUseCase(llm, itemRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NeonFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		CatalogUC:        catalogUC,
		BulkImportUC:     bulkImportUC,
		StockCardUC:      stockCardUC,
		RegisterMovement: registerMovementUC,
		EditMovement:     editMovementUC,
		RejectUC:         rejectUC,
		UserUC:           userUC,
		PlaylistUC:       playlistUC,
		AIUC:             aiUC,
		JWTSecret:        cfg.JWT.Secret,
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
