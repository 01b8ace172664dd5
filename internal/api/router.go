package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coursehub/pricing-api/internal/api/handler"
	"github.com/coursehub/pricing-api/internal/api/middleware"
	"github.com/coursehub/pricing-api/internal/core/domain"
	"github.com/coursehub/pricing-api/internal/core/service"
	"github.com/coursehub/pricing-api/internal/infrastructure/config"
	mongodb "github.com/coursehub/pricing-api/internal/infrastructure/db/mongo"
	redisdb "github.com/coursehub/pricing-api/internal/infrastructure/db/redis"
	"github.com/coursehub/pricing-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("pricing"))

	// --- Dependencies ---
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, &service.BcryptHasher{}, tokens)
	authHandler := handler.NewAuthHandler(authService)

	priceRepo := mongodb.NewPriceRepository(db)
	priceCache := redisdb.NewPriceCache(rdb)
	priceService := service.NewPriceService(priceRepo, priceCache, log)
	priceHandler := handler.NewPriceHandler(priceService)

	authn := middleware.Auth(tokens, log)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)

	// --- Price routes ---
	// Reads require authentication only; mutations additionally require the
	// ADMIN role. The asymmetry is deliberate: the price list is readable by
	// any authenticated user, its content is admin-managed.
	prices := e.Group("/prices", authn)
	prices.GET("", priceHandler.List)
	prices.GET("/:id", priceHandler.Get)
	prices.POST("", priceHandler.Create, adminOnly)
	prices.PUT("/:id", priceHandler.Update, adminOnly)
	prices.DELETE("/:id", priceHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
