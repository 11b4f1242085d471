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

	"github.com/jhoicas/logistica-api/internal/application/auth"
	"github.com/jhoicas/logistica-api/internal/application/usecase"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	infraai "github.com/jhoicas/logistica-api/internal/infrastructure/ai"
	"github.com/jhoicas/logistica-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/logistica-api/internal/interfaces/http"
	"github.com/jhoicas/logistica-api/internal/realtime"
	"github.com/jhoicas/logistica-api/pkg/config"
	"github.com/jhoicas/logistica-api/pkg/logger"
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	decisionRepo := postgres.NewDecisionContextRepository(pool)

	salesUC := usecase.NewRecordUseCase(postgres.NewRecordStore[entity.Sale, *entity.Sale](pool, postgres.TableSales))
	productionUC := usecase.NewRecordUseCase(postgres.NewRecordStore[entity.Production, *entity.Production](pool, postgres.TableProduction))
	sopPlansUC := usecase.NewRecordUseCase(postgres.NewRecordStore[entity.SOPPlan, *entity.SOPPlan](pool, postgres.TableSOPPlans))
	inventoryUC := usecase.NewRecordUseCase(postgres.NewRecordStore[entity.Inventory, *entity.Inventory](pool, postgres.TableInventory))
	ordersUC := usecase.NewRecordUseCase(postgres.NewRecordStore[entity.Order, *entity.Order](pool, postgres.TableOrders))
	shipmentsUC := usecase.NewRecordUseCase(postgres.NewRecordStore[entity.Shipment, *entity.Shipment](pool, postgres.TableShipments))

	sopUC := usecase.NewSOPUseCase(
		sopPlansUC,
		postgres.NewRecordStore[entity.Sale, *entity.Sale](pool, postgres.TableSales),
		postgres.NewRecordStore[entity.Production, *entity.Production](pool, postgres.TableProduction),
	)

	hub := realtime.NewHub(log.Zerolog())
	llmSvc := infraai.NewOpenRouterService(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL)
	decisionUC := usecase.NewDecisionUseCase(llmSvc, decisionRepo, hub)

	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpirationHours,
		Issuer:   cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// El middleware lee el archivo al arrancar; si el spec no está generado
	// (swag init), la API arranca igual sin la UI.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Logística API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado; Swagger UI deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Bienvenido a " + cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		DecisionUC: decisionUC,
		SOPUC:      sopUC,
		Sales:      salesUC,
		Production: productionUC,
		SOPPlans:   sopPlansUC,
		Inventory:  inventoryUC,
		Orders:     ordersUC,
		Shipments:  shipmentsUC,
		Hub:        hub,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("servidor detenido")
}
