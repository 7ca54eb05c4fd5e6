package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/postrepublic/quote-system/internal/api/handler"
	"github.com/postrepublic/quote-system/internal/api/middleware"
	"github.com/postrepublic/quote-system/internal/core/domain"
	"github.com/postrepublic/quote-system/internal/core/ports"
)

// Deps carries the wired services the router exposes.
type Deps struct {
	Quotes ports.QuoteService
	Orders ports.OrderService
	Auth   ports.AuthService

	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("postrepublic"))

	// --- Handlers ---
	quoteHandler := handler.NewQuoteHandler(deps.Quotes)
	orderHandler := handler.NewOrderHandler(deps.Orders)
	authHandler := handler.NewAuthHandler(deps.Auth)

	authMW := middleware.Auth(deps.JWTSecret)
	operatorOnly := middleware.RBAC(domain.RoleOperator)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Quoting (public: pricing feedback before sign-in) ---
	e.POST("/v1/quotes", quoteHandler.Estimate)
	e.POST("/v1/quotes/reseller", quoteHandler.Reseller)
	e.GET("/v1/countries", quoteHandler.Countries)

	// --- Orders (authenticated) ---
	orders := e.Group("/v1/orders", authMW)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/payment", orderHandler.SetPaymentStatus, operatorOnly)
	orders.PATCH("/:id/tracking", orderHandler.SetTrackingNumber, operatorOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
