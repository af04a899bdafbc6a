package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/libraryhub/catalog-api/internal/api/handler"
	"github.com/libraryhub/catalog-api/internal/api/middleware"
	"github.com/libraryhub/catalog-api/internal/core/domain"
	"github.com/libraryhub/catalog-api/internal/core/service"
	"github.com/libraryhub/catalog-api/internal/infrastructure/db/memory"
	"github.com/libraryhub/catalog-api/internal/pkg/config"
)

// Dependencies carries everything the router needs to wire the handlers.
type Dependencies struct {
	Config   *config.Config
	Store    *memory.Store
	Activity service.ActivityRecorder
	Feed     handler.ActivityReader
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("libraryhub"))

	// --- Dependencies ---
	catalogRepo := memory.NewCatalogRepository(deps.Store)
	loanRepo := memory.NewLoanRepository(deps.Store)

	authService := service.NewAuthService(deps.Config.JWTSecret, deps.Config.SessionTTL, deps.Logger)
	catalogService := service.NewCatalogService(catalogRepo, loanRepo, deps.Logger)
	loanService := service.NewLoanService(catalogRepo, loanRepo, deps.Activity, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(catalogService)
	loanHandler := handler.NewLoanHandler(loanService)
	statsHandler := handler.NewStatsHandler(catalogService)
	activityHandler := handler.NewActivityHandler(deps.Feed)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(deps.Config.JWTSecret))

	v1.GET("/books", bookHandler.List)
	v1.GET("/books/:id", bookHandler.Get)
	v1.POST("/books", bookHandler.Create, middleware.RBAC(domain.RoleAdmin))

	v1.POST("/loans", loanHandler.Borrow)
	v1.POST("/loans/:id/return", loanHandler.Return)
	v1.GET("/loans/me", loanHandler.MyLoans)

	v1.GET("/stats", statsHandler.Get)
	v1.GET("/activity", activityHandler.List)

	return e
}
