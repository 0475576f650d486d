package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/api/handler"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/api/middleware"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/ports"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/service"
)

// Config carries the session settings the router needs.
type Config struct {
	JWTSecret  string
	CookieName string
	TokenTTL   time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Each route declares exactly the gates its semantics require, in order:
// authenticate, then role, then ownership.
func NewRouter(users ports.UserRepository, products ports.ProductRepository, cfg Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("vending"))

	// --- Dependencies ---
	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)
	productService := service.NewProductService(products, log)
	vendingService := service.NewVendingService(users, products, log)

	authHandler := handler.NewAuthHandler(authService, cfg.CookieName, cfg.TokenTTL)
	userHandler := handler.NewUserHandler(authService, cfg.CookieName, cfg.TokenTTL)
	productHandler := handler.NewProductHandler(productService)
	vendingHandler := handler.NewVendingHandler(vendingService)

	authenticate := middleware.Authenticate(authService, cfg.CookieName)
	sellerOnly := middleware.RequireRole(domain.RoleSeller)
	buyerOnly := middleware.RequireRole(domain.RoleBuyer)
	ownerOnly := middleware.RequireOwnership(productService)

	// --- User routes ---
	e.POST("/user", userHandler.Register)
	e.GET("/user", userHandler.Read, authenticate)
	e.PUT("/user", userHandler.Update, authenticate)
	e.DELETE("/user", userHandler.Delete, authenticate)

	// --- Session routes ---
	e.PUT("/login", authHandler.Login)
	e.PUT("/logout", authHandler.Logout, authenticate)

	// --- Product routes ---
	e.POST("/product", productHandler.Create, authenticate, sellerOnly)
	e.GET("/product/:id", productHandler.Get)
	e.PUT("/product/:id", productHandler.Update, authenticate, sellerOnly, ownerOnly)
	e.DELETE("/product/:id", productHandler.Delete, authenticate, sellerOnly, ownerOnly)

	// --- Vending routes ---
	e.PUT("/deposit/:coins", vendingHandler.Deposit, authenticate, buyerOnly)
	e.PUT("/buy/:id/:amount", vendingHandler.Buy, authenticate, buyerOnly)
	e.PUT("/reset", vendingHandler.Reset, authenticate, buyerOnly)

	// --- Probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
