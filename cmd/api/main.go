package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tyre-dashboard-service/internal/config"
	pg "tyre-dashboard-service/internal/platform/postgres"

	authHttp "tyre-dashboard-service/internal/auth/adapters/http/fiber"
	authMemory "tyre-dashboard-service/internal/auth/adapters/memory"
	authUsecase "tyre-dashboard-service/internal/auth/core/usecase"

	inventoryHttp "tyre-dashboard-service/internal/inventory/adapters/http/fiber"
	inventoryRepoPg "tyre-dashboard-service/internal/inventory/adapters/postgres"
	inventoryUpstream "tyre-dashboard-service/internal/inventory/adapters/upstream"
	inventoryPorts "tyre-dashboard-service/internal/inventory/core/ports"
	inventoryUsecase "tyre-dashboard-service/internal/inventory/core/usecase"

	curingHttp "tyre-dashboard-service/internal/curing/adapters/http/fiber"
	curingRepoPg "tyre-dashboard-service/internal/curing/adapters/postgres"
	curingUsecase "tyre-dashboard-service/internal/curing/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "tyre-dashboard-service/docs"
)

// @title Tyre Dashboard Service API
// @version 1.0
// @description Inventory and curing dashboards for the tyre plant.
// @BasePath /
// @securityDefinitions.apikey SessionToken
// @in header
// @name X-Session-Token
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// DB connections, opened only for what is configured
	var inventoryDB, curingDB *sql.DB
	if cfg.PostgresDSN != "" {
		if inventoryDB, err = pg.Open(ctx, cfg.PostgresDSN); err != nil {
			log.Fatalf("inventory db: %v", err)
		}
		defer inventoryDB.Close()
	}
	switch {
	case cfg.CuringPostgresDSN == "":
	case cfg.CuringPostgresDSN == cfg.PostgresDSN:
		curingDB = inventoryDB
	default:
		if curingDB, err = pg.Open(ctx, cfg.CuringPostgresDSN); err != nil {
			log.Fatalf("curing db: %v", err)
		}
		defer curingDB.Close()
	}

	// Inventory source
	var source inventoryPorts.InventorySourcePort
	if inventoryDB != nil {
		source = inventoryRepoPg.NewInventoryRepository(pg.Wrap(inventoryDB), inventoryRepoPg.Options{
			Year:  cfg.InventoryYear,
			Limit: cfg.InventoryLimit,
		})
		log.Println("inventory source: postgres")
	} else {
		source = inventoryUpstream.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout)
		log.Printf("inventory source: %s", cfg.UpstreamURL)
	}

	// Usecases
	dashboardUC := inventoryUsecase.NewDashboardUseCase(source)
	authUC := authUsecase.NewAuthUseCase(
		authMemory.NewSessionStore(),
		authUsecase.Credentials{Username: cfg.DashboardUsername, Password: cfg.DashboardPassword},
		cfg.SessionTTL,
	)

	// Background jobs
	go dashboardUC.Run(ctx, cfg.RefreshInterval)
	go authUC.PurgeExpired(ctx, time.Hour)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{AppName: "tyre-dashboard-service"})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Session-Token",
	}))

	authHandler := authHttp.NewAuthHandler(authUC)
	inventoryHandler := inventoryHttp.NewInventoryHandler(dashboardUC, authUC)

	api := app.Group("/api")
	api.Get("/", banner)

	// auth endpoints
	api.Post("/login", authHandler.Login)

	auth := authHandler.RequireSession
	api.Post("/logout", auth, authHandler.Logout)

	// inventory endpoints
	api.Get("/inventory", auth, inventoryHandler.GetInventory)
	api.Get("/filter-options", auth, inventoryHandler.GetFilterOptions)
	api.Get("/dashboard", auth, inventoryHandler.GetDashboard)
	api.Get("/dashboard/records", auth, inventoryHandler.GetRecords)
	api.Put("/dashboard/filters", auth, inventoryHandler.ChangeFilter)
	api.Delete("/dashboard/filters", auth, inventoryHandler.ClearFilters)
	api.Post("/dashboard/chart-filters", auth, inventoryHandler.ClickChart)
	api.Post("/dashboard/refresh", auth, inventoryHandler.Refresh)

	// curing endpoints
	if curingDB != nil {
		curingUC := curingUsecase.NewCuringUseCase(curingRepoPg.NewCuringRepository(pg.Wrap(curingDB)))
		curingHandler := curingHttp.NewCuringHandler(curingUC)
		api.Get("/curing/summary", auth, curingHandler.GetSummary)
		api.Get("/curing/production", auth, curingHandler.GetProduction)
		api.Get("/curing/production-by-press", auth, curingHandler.GetProductionByPress)
		api.Get("/curing/production-by-recipe", auth, curingHandler.GetProductionByRecipe)
	} else {
		log.Println("no curing database configured, curing endpoints disabled")
	}

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}

// banner godoc
// @Summary Service banner
// @Tags Service
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/ [get]
func banner(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Tyre Dashboard API"})
}
