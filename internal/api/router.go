package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/taskforge/task-tracker/docs"
	"github.com/taskforge/task-tracker/internal/api/handler"
	"github.com/taskforge/task-tracker/internal/api/middleware"
	"github.com/taskforge/task-tracker/internal/core/auth"
	"github.com/taskforge/task-tracker/internal/core/service"
	"github.com/taskforge/task-tracker/internal/infrastructure/config"
	"github.com/taskforge/task-tracker/internal/infrastructure/db/postgres"
	redisinfra "github.com/taskforge/task-tracker/internal/infrastructure/db/redis"
	"github.com/taskforge/task-tracker/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tasktracker"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	throttle := redisinfra.NewLoginThrottle(rdb)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens, throttle, log)
	userService := service.NewUserService(userRepo)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService, tokens.TTL())
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	authenticated := middleware.Auth(tokens, userRepo)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/users", authHandler.Register)

	// --- User routes ---
	e.GET("/users/me", userHandler.Me, authenticated)
	e.GET("/users/:username", userHandler.GetByUsername, authenticated, middleware.RequireAdmin())

	// --- Task routes ---
	e.POST("/tasks", taskHandler.Create, authenticated)
	e.GET("/tasks", taskHandler.List, authenticated)
	e.PUT("/tasks/:id", taskHandler.Update, authenticated)
	e.DELETE("/tasks/:id", taskHandler.Delete, authenticated)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
