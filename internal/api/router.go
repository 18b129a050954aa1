package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/zonehead/commerce-api/docs"
	"github.com/zonehead/commerce-api/internal/api/handler"
	"github.com/zonehead/commerce-api/internal/api/middleware"
	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/ports"
	"github.com/zonehead/commerce-api/internal/infrastructure/storage"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	AdminAuth *handler.AuthHandler
	ZoneAuth  *handler.AuthHandler
	UserAuth  *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Zones     *handler.ZoneHandler
	Users     *handler.UserHandler
	Receipts  *handler.ReceiptHandler
	Orders    *handler.OrderHandler
	Health    *handler.HealthHandler
}

// Options carries the access guard collaborators and the cross-cutting
// HTTP settings.
type Options struct {
	Verifier ports.TokenVerifier
	Resolver ports.ActorResolver
	Denylist ports.TokenDenylist

	CORSOrigins []string
	UploadDir   string

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(h Handlers, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "commerce",
		Subsystem:  "http",
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || p == "/health" || p == "/health/ready"
		},
	}))

	// --- Infrastructure routes (no auth required) ---
	e.GET("/health", h.Health.Liveness)
	e.GET("/health/ready", h.Health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if opts.UploadDir != "" {
		e.Static(storage.PublicPrefix, opts.UploadDir)
	}

	guard := middleware.Auth(opts.Verifier, opts.Resolver, opts.Denylist)

	// --- Admin ---
	admin := e.Group("/api/admin")
	admin.POST("/signup", h.AdminAuth.Signup)
	admin.POST("/signin", h.AdminAuth.Signin)

	ad := admin.Group("", guard, middleware.RBAC(domain.RoleAdmin))
	ad.POST("/signout", h.AdminAuth.Signout)
	ad.GET("/profile", h.AdminAuth.Profile)
	ad.GET("/users", h.Users.ListUsers)
	ad.DELETE("/delete-user/:id", h.Users.DeleteUser)
	ad.POST("/add-product", h.Catalog.AddProduct)
	ad.POST("/import-products", h.Catalog.ImportProducts)
	ad.GET("/all-products", h.Catalog.ListProducts)
	ad.DELETE("/delete-product/:id", h.Catalog.DeleteProduct)
	ad.POST("/add-category", h.Catalog.AddCategory)
	ad.GET("/all-categories", h.Catalog.ListCategories)
	ad.DELETE("/delete-category/:id", h.Catalog.DeleteCategory)
	ad.GET("/all-orders", h.Orders.ListOrders)
	ad.POST("/ai-image", h.Catalog.AIImage)
	ad.POST("/add-zone", h.Zones.AddZone)
	ad.GET("/all-zones", h.Zones.ListZones)
	ad.DELETE("/delete-zone/:id", h.Zones.DeleteZone)
	ad.GET("/all-receipts", h.Receipts.ListAllReceipts)

	// --- Zone ---
	zone := e.Group("/api/zone")
	zone.POST("/signin", h.ZoneAuth.ZoneSignin)

	zn := zone.Group("", guard, middleware.RBAC(domain.RoleZone))
	zn.POST("/signout", h.ZoneAuth.Signout)
	zn.GET("/profile", h.ZoneAuth.Profile)
	zn.GET("/all-receipts", h.Receipts.ListReceipts)
	zn.POST("/generate-receipt", h.Receipts.GenerateReceipt)
	zn.DELETE("/delete-receipt/:id", h.Receipts.DeleteReceipt)

	// --- User ---
	user := e.Group("/api")
	user.POST("/signup", h.UserAuth.Signup)
	user.POST("/signin", h.UserAuth.Signin)

	us := user.Group("", guard, middleware.RBAC(domain.RoleUser))
	us.POST("/signout", h.UserAuth.Signout)
	us.GET("/profile", h.UserAuth.Profile)
	us.GET("/products", h.Catalog.ListProducts)
	us.GET("/categories", h.Catalog.ListCategories)
	us.POST("/place-order", h.Orders.PlaceOrder)
	us.GET("/my-orders", h.Orders.ListOrders)

	return e
}

// requestLogger writes one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
