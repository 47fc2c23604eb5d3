package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/antigaspi/recruitment-system/internal/api/handler"
	"github.com/antigaspi/recruitment-system/internal/api/middleware"
	"github.com/antigaspi/recruitment-system/internal/core/service"
	mongostore "github.com/antigaspi/recruitment-system/internal/infrastructure/db/mongo"
	redisstore "github.com/antigaspi/recruitment-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Renderer = handler.NewTemplateRenderer()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("recruitment"))

	// --- Dependencies ---
	candidateRepo := mongostore.NewCandidateRepository(db)
	adminRepo := mongostore.NewAdminRepository(db)
	guard := redisstore.NewSubmissionGuard(rdb)
	formSessions := redisstore.NewFormSessionStore(rdb)

	submissionService := service.NewSubmissionService(candidateRepo, guard, log)
	authService := service.NewAuthService(adminRepo, jwtSecret, 24*time.Hour, log)

	submitHandler := handler.NewSubmitHandler(submissionService, log)
	formHandler := handler.NewFormHandler(formSessions, submissionService, log)
	authHandler := handler.NewAuthHandler(authService, log)
	adminHandler := handler.NewAdminHandler(candidateRepo, log)

	// --- Public form ---
	e.GET("/", formHandler.Start)
	e.POST("/form", formHandler.Step)
	e.GET("/thanks", formHandler.Thanks)

	// --- Submission API ---
	e.POST("/api/submit", submitHandler.Submit)
	e.GET("/api/candidates", adminHandler.ListJSON, middleware.Auth(jwtSecret))

	// --- Admin ---
	e.GET("/admin/login", authHandler.LoginPage)
	e.POST("/admin/login", authHandler.Login)
	e.POST("/admin/logout", authHandler.Logout)

	dashboard := e.Group("/admin", middleware.SessionAuth(jwtSecret, "/admin/login"))
	dashboard.GET("", adminHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
