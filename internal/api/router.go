package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/webappnoauth/catalog-portal/docs"
	"github.com/webappnoauth/catalog-portal/internal/api/handler"
	"github.com/webappnoauth/catalog-portal/internal/api/middleware"
	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

// Deps are the services the router wires into handlers.
type Deps struct {
	Logger   zerolog.Logger
	Tokens   ports.TokenService
	Login    ports.LoginService
	Users    ports.UserService
	Catalog  ports.CatalogService
	Renderer echo.Renderer

	// Limiter guards token issuance; nil disables rate limiting.
	Limiter ports.RateLimiter
	// Health lists the readiness checks by dependency name.
	Health map[string]handler.Pinger
	// SecureCookies marks the access_token cookie Secure.
	SecureCookies bool
	// Metrics receives the HTTP collectors. /metrics serves it together with
	// the default registry, which holds the custom catalog metrics. Nil means
	// the default registry only.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = d.Renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Metrics != nil {
		registerer = d.Metrics
		gatherer = prometheus.Gatherers{d.Metrics, prometheus.DefaultGatherer}
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "catalog_http",
		Registerer: registerer,
	}))

	// --- Dependencies ---
	authn := middleware.Authenticate(d.Tokens, d.Users, d.Logger)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	reportRoles := middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager)
	limited := middleware.RateLimit(d.Limiter, d.Logger)

	home := handler.NewHomeHandler(d.Catalog)
	login := handler.NewLoginHandler(d.Login, d.SecureCookies)
	admin := handler.NewAdminHandler(d.Catalog, d.Users)
	users := handler.NewUserHandler(d.Users)
	products := handler.NewProductHandler(d.Catalog)
	tokens := handler.NewTokenHandler(d.Login)
	health := handler.NewHealthHandler(d.Health)

	// --- Public pages ---
	e.GET("/", home.Index)
	e.GET("/Home", home.Index)
	e.GET("/Home/Index", home.Index)
	e.GET("/Home/Privacy", home.Privacy)
	e.GET("/Home/Error", home.Error)

	e.GET("/Login", login.Form)
	e.GET("/Login/Login", login.Form)
	e.POST("/Login", login.Submit, limited)
	e.POST("/Login/Login", login.Submit, limited)

	// --- Protected pages ---
	ag := e.Group("/Admin")
	ag.GET("/Login", login.AdminForm)
	ag.POST("/Login", login.AdminSubmit, limited)
	ag.GET("", admin.Index, authn)
	ag.GET("/Index", admin.Index, authn)
	ag.GET("/Dashboard", admin.Dashboard, authn)
	ag.GET("/Profile", admin.Profile, authn)
	ag.GET("/UserManager", admin.UserManager, authn, adminOnly)
	ag.GET("/Reports", admin.Reports, authn, reportRoles)

	// --- JSON API ---
	api := e.Group("/api")
	api.POST("/token", tokens.Issue, limited)

	api.GET("/User", users.ListUsers)
	api.POST("/User", users.CreateUser)
	api.GET("/User/:username", users.GetUser)
	api.PUT("/User/:username", users.UpdateUser, authn, adminOnly)
	api.DELETE("/User/:username", users.DeleteUser, authn, adminOnly)

	api.GET("/products", products.List)
	api.GET("/products/count", products.Count)
	api.GET("/products/category/:category", products.ByCategory)
	api.GET("/products/:id", products.Get)

	// --- Health probes (no auth required) ---
	e.GET("/health", health.Liveness)        // liveness
	e.GET("/health/ready", health.Readiness) // readiness

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
