package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/application/auth"
	"github.com/jhoicas/logistica-api/internal/application/usecase"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/realtime"
)

// RouterDeps dependencias para montar las rutas.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	DecisionUC *usecase.DecisionUseCase
	SOPUC      *usecase.SOPUseCase

	Sales      *usecase.RecordUseCase[entity.Sale, *entity.Sale]
	Production *usecase.RecordUseCase[entity.Production, *entity.Production]
	SOPPlans   *usecase.RecordUseCase[entity.SOPPlan, *entity.SOPPlan]
	Inventory  *usecase.RecordUseCase[entity.Inventory, *entity.Inventory]
	Orders     *usecase.RecordUseCase[entity.Order, *entity.Order]
	Shipments  *usecase.RecordUseCase[entity.Shipment, *entity.Shipment]

	Hub       *realtime.Hub
	JWTSecret string
}

// Router registra todas las rutas de la aplicación.
// El canal WebSocket y auth son públicos; el resto va detrás del middleware JWT.
func Router(app *fiber.App, deps RouterDeps) {
	// Canal en tiempo real: los clientes se suscriben antes de autenticarse
	// en el flujo actual del frontend, así que queda fuera del grupo protegido.
	app.Get("/ws/decisions", WSUpgrade(), DecisionsSocket(deps.Hub))

	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Colecciones del almacén de registros. Ventas y producción son
	// append-mostly (sin delete); los planes S&OP solo se crean vía generate
	// o POST directo y nunca se editan; inventario, pedidos y envíos tienen
	// ciclo de vida completo.
	mountRecordRoutes(api.Group("/sales"), NewRecordHandler(deps.Sales, "venta"), recordRoutes{Update: true})
	mountRecordRoutes(api.Group("/production"), NewRecordHandler(deps.Production, "producción"), recordRoutes{Update: true})
	mountRecordRoutes(api.Group("/inventory"), NewRecordHandler(deps.Inventory, "inventario"), recordRoutes{Update: true, Delete: true})
	mountRecordRoutes(api.Group("/orders"), NewRecordHandler(deps.Orders, "pedido"), recordRoutes{Update: true, Delete: true})
	mountRecordRoutes(api.Group("/shipments"), NewRecordHandler(deps.Shipments, "envío"), recordRoutes{Update: true, Delete: true})

	sopHandler := NewSOPHandler(deps.SOPUC)
	sop := api.Group("/sop")
	sop.Post("/generate", sopHandler.Generate)
	mountRecordRoutes(sop, NewRecordHandler(deps.SOPPlans, "plan S&OP"), recordRoutes{})

	decisionHandler := NewDecisionHandler(deps.DecisionUC)
	decision := api.Group("/decision-context")
	decision.Post("/submit", decisionHandler.Submit)
	decision.Post("/approve", decisionHandler.Approve)
	decision.Post("/best-decision", decisionHandler.BestDecision)
	api.Get("/decision-contexts/user/:user_id", decisionHandler.ListForUser)
}
