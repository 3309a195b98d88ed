package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/subscribely/admin-dashboard/docs"
	"github.com/subscribely/admin-dashboard/internal/api/handler"
	"github.com/subscribely/admin-dashboard/internal/api/middleware"
	"github.com/subscribely/admin-dashboard/internal/core/service"
	"github.com/subscribely/admin-dashboard/internal/infrastructure/export"
	"github.com/subscribely/admin-dashboard/internal/infrastructure/store/memory"
)

// NewRouter builds and returns the Echo instance with all routes registered
// and all in-memory stores seeded.
func NewRouter(jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	// --- Stores (seeded at startup, mutations live for the process only) ---
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	accountRepo := memory.NewAccountRepository(memory.SeedAccounts())
	planRepo := memory.NewPlanRepository(memory.SeedPlans())
	reportRepo := memory.NewReportRepository(memory.SeedMonthlyMetrics(), memory.SeedChurnedUsers())

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, log)
	accountService := service.NewAccountService(accountRepo, log)
	planService := service.NewPlanService(planRepo, log)
	reportService := service.NewReportService(reportRepo, export.NewExcelExporter(), log)
	dashboardService := service.NewDashboardService(userRepo, accountRepo, reportRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	accountHandler := handler.NewAccountHandler(accountService)
	planHandler := handler.NewPlanHandler(planService)
	reportHandler := handler.NewReportHandler(reportService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authed := middleware.Auth(jwtSecret)
	adminOnly := middleware.AdminOnly("/")

	// --- Auth routes ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/logout", authHandler.Logout, authed)

	// --- Dashboard (any authenticated role) ---
	e.GET("/v1/dashboard", dashboardHandler.Stats, authed)

	// --- Users (admin only) ---
	users := e.Group("/v1/users", authed, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Accounts (admin only) ---
	accounts := e.Group("/v1/accounts", authed, adminOnly)
	accounts.GET("", accountHandler.List)
	accounts.POST("", accountHandler.Create)
	accounts.GET("/:id", accountHandler.Get)
	accounts.PUT("/:id", accountHandler.Update)
	accounts.DELETE("/:id", accountHandler.Delete)

	// --- Plans (shared page: the list branches on role, mutations are admin only) ---
	plans := e.Group("/v1/plans", authed)
	plans.GET("", planHandler.List)
	plans.POST("", planHandler.Create, adminOnly)
	plans.GET("/:id", planHandler.Get, adminOnly)
	plans.PUT("/:id", planHandler.Update, adminOnly)
	plans.DELETE("/:id", planHandler.Delete, adminOnly)

	// --- Reports (admin only) ---
	reports := e.Group("/v1/reports", authed, adminOnly)
	reports.GET("/revenue", reportHandler.Revenue)
	reports.GET("/churn", reportHandler.Churn)
	reports.GET("/export", reportHandler.Export)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthStoresHandler := handler.NewHealthStoresHandler(userRepo, accountRepo, planRepo)

	e.GET("/health", healthHandler.Liveness)             // liveness  – is the process alive?
	e.GET("/health/ready", healthStoresHandler.Readiness) // readiness – are the stores seeded?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
