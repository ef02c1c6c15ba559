package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/atmavision/booking-system/internal/api/handler"
	"github.com/atmavision/booking-system/internal/api/middleware"
	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
	"github.com/atmavision/booking-system/internal/core/service"
	"github.com/atmavision/booking-system/internal/core/store"
	"github.com/atmavision/booking-system/internal/infrastructure/analyst"
	"github.com/atmavision/booking-system/internal/infrastructure/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The storage substrate is injected so the same wiring serves memory, redis
// and mongo deployments.
func NewRouter(storage ports.Storage, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Dependencies ---
	dataStore := store.New(storage, log)

	gemini := analyst.NewGeminiClient(analyst.Config{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
	}, log)

	authService := service.NewAuthService(dataStore, cfg.JWTSecret, 24*time.Hour, log)
	catalogService := service.NewCatalogService(dataStore, log)
	orderService := service.NewOrderService(dataStore, dataStore, log)
	chatService := service.NewChatService(dataStore, cfg.ChatPollInterval, log)
	reportService := service.NewReportService(dataStore, log)
	analysisService := service.NewAnalysisService(dataStore, dataStore, gemini, log)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	messageHandler := handler.NewMessageHandler(chatService)
	reportHandler := handler.NewReportHandler(reportService, analysisService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	staffOnly := middleware.RequireRoles(domain.RoleOperator, domain.RoleManager)
	managerOnly := middleware.RequireRoles(domain.RoleManager)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- Catalog (public reads, manager writes) ---
	e.GET("/v1/services", catalogHandler.List)
	e.GET("/v1/services/categories", catalogHandler.Categories)
	e.POST("/v1/services", catalogHandler.Add, authRequired, managerOnly)

	// --- Orders ---
	orders := e.Group("/v1/orders", authRequired)
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Place)
	orders.POST("/custom", orderHandler.PlaceCustom)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus, staffOnly)
	orders.PATCH("/:id/operator", orderHandler.AssignOperator, managerOnly)

	// --- Order chat ---
	orders.GET("/:id/messages", messageHandler.List)
	orders.POST("/:id/messages", messageHandler.Send)
	orders.GET("/:id/messages/stream", messageHandler.Stream)

	// --- Staff administration (manager only) ---
	staff := e.Group("/v1/staff", authRequired, managerOnly)
	staff.GET("/users", authHandler.ListUsers)
	staff.GET("/operators", authHandler.ListOperators)
	staff.PATCH("/users/:id/role", authHandler.ChangeRole)

	// --- Reports (manager only) ---
	reports := e.Group("/v1/reports", authRequired, managerOnly)
	reports.GET("/summary", reportHandler.Summary)
	reports.POST("/analysis", reportHandler.Analyze)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(storage)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the substrate up?

	return e
}
