// Package v1 provides HTTP API version 1.
package v1

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"nautica/internal/domain/auth"
	"nautica/internal/domain/catalog/category"
	"nautica/internal/domain/catalog/club"
	"nautica/internal/domain/catalog/tour"
	"nautica/internal/domain/catalog/yacht"
	"nautica/internal/domain/folio"
	"nautica/internal/domain/geo"
	"nautica/internal/domain/reservation"
	"nautica/internal/infrastructure/cache"
	"nautica/internal/infrastructure/http/v1/handlers"
	"nautica/internal/infrastructure/http/v1/middleware"
	"nautica/internal/infrastructure/storage/postgres"
	"nautica/pkg/logger"
)

// RouterConfig holds everything the HTTP layer needs. Services are
// constructed once at startup and shared across requests.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	Auth         *auth.Service
	Folios       *folio.Service
	Reservations *reservation.Service
	Yachts       *yacht.Service
	Tours        *tour.Service
	Clubs        *club.Service
	Categories   *category.Service
	Geo          *geo.Service

	// Redis is optional; nil disables response caching for public
	// catalog reads.
	Redis    *redis.Client
	CacheTTL time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	// ShutdownCtx stops background goroutines (rate limiter cleanup)
	// when the server exits.
	ShutdownCtx context.Context
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())
	if cfg.RateLimitRPS > 0 {
		router.Use(middleware.RateLimit(cfg.ShutdownCtx, cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	// API v1
	store := cache.NewStore(cfg.Redis)
	apiV1 := router.Group("/api/v1")
	{
		registerAuthRoutes(apiV1, cfg)
		registerCatalogRoutes(apiV1, cfg, store)
		registerGeoRoutes(apiV1, cfg, store)
		registerReservationRoutes(apiV1, cfg)
	}

	return router
}

func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	base := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(base, cfg.Auth)

	public := rg.Group("/auth")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
	}

	me := rg.Group("/auth")
	me.Use(middleware.Auth(cfg.Auth))
	me.GET("/me", authHandler.Me)

	// User administration
	users := rg.Group("/users")
	users.Use(middleware.Auth(cfg.Auth), middleware.RequireRole(auth.RoleAdmin))
	{
		users.GET("", authHandler.List)
		users.GET("/:id", authHandler.Get)
		users.PATCH("/:id/role", authHandler.UpdateRole)
		users.DELETE("/:id", authHandler.Delete)
	}
}

func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig, store cache.Store) {
	base := handlers.NewBaseHandler()

	registerProductRoutes(rg, cfg, store, "/yachts", handlers.NewYachtHandler(base, cfg.Yachts))
	registerProductRoutes(rg, cfg, store, "/tours", handlers.NewTourHandler(base, cfg.Tours))
	registerProductRoutes(rg, cfg, store, "/clubs", handlers.NewClubHandler(base, cfg.Clubs))

	categoryHandler := handlers.NewCategoryHandler(base, cfg.Categories)

	public := rg.Group("/categories")
	public.Use(cache.Middleware(store, cfg.CacheTTL))
	{
		public.GET("/:kind", categoryHandler.List)
		public.GET("/:kind/:id", categoryHandler.Get)
	}

	protected := rg.Group("/categories")
	protected.Use(middleware.Auth(cfg.Auth), middleware.RequireRole(auth.RoleManager))
	// Cached product reads embed category names, so those entries go too.
	protected.Use(cache.Invalidate(store, "categories", "yachts", "tours", "clubs"))
	{
		protected.POST("/:kind", categoryHandler.Create)
		protected.PUT("/:kind/:id", categoryHandler.Update)
		protected.DELETE("/:kind/:id", categoryHandler.Delete)
	}
}

// registerProductRoutes wires the shared catalog route shape for one
// product family: public reads, manager-only writes.
func registerProductRoutes[E any, CreateReq any](rg *gin.RouterGroup, cfg RouterConfig, store cache.Store, prefix string, h *handlers.ProductHandler[E, CreateReq]) {
	public := rg.Group(prefix)
	public.Use(cache.Middleware(store, cfg.CacheTTL))
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	protected := rg.Group(prefix)
	protected.Use(middleware.Auth(cfg.Auth), middleware.RequireRole(auth.RoleManager))
	protected.Use(cache.Invalidate(store, strings.TrimPrefix(prefix, "/")))
	{
		protected.POST("", h.Create)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
		protected.POST("/:id/images", h.AddImage)
		protected.DELETE("/:id/images/:imageId", h.RemoveImage)
		protected.POST("/:id/characteristics", h.AddCharacteristic)
		protected.DELETE("/:id/characteristics/:characteristicId", h.RemoveCharacteristic)
	}
}

func registerGeoRoutes(rg *gin.RouterGroup, cfg RouterConfig, store cache.Store) {
	base := handlers.NewBaseHandler()
	geoHandler := handlers.NewGeoHandler(base, cfg.Geo)

	public := rg.Group("")
	public.Use(cache.Middleware(store, cfg.CacheTTL))
	{
		public.GET("/states", geoHandler.ListStates)
		public.GET("/states/:id", geoHandler.GetState)
		public.GET("/municipalities", geoHandler.ListMunicipalities)
		public.GET("/municipalities/:id", geoHandler.GetMunicipality)
		public.GET("/localities", geoHandler.ListLocalities)
		public.GET("/localities/:id", geoHandler.GetLocality)
	}

	protected := rg.Group("")
	protected.Use(middleware.Auth(cfg.Auth), middleware.RequireRole(auth.RoleManager))
	// Cached club reads embed geo names, so club entries go too.
	protected.Use(cache.Invalidate(store, "states", "municipalities", "localities", "clubs"))
	{
		protected.POST("/states", geoHandler.CreateState)
		protected.PUT("/states/:id", geoHandler.UpdateState)
		protected.DELETE("/states/:id", geoHandler.DeleteState)
		protected.POST("/municipalities", geoHandler.CreateMunicipality)
		protected.PUT("/municipalities/:id", geoHandler.UpdateMunicipality)
		protected.DELETE("/municipalities/:id", geoHandler.DeleteMunicipality)
		protected.POST("/localities", geoHandler.CreateLocality)
		protected.PUT("/localities/:id", geoHandler.UpdateLocality)
		protected.DELETE("/localities/:id", geoHandler.DeleteLocality)
	}
}

func registerReservationRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	base := handlers.NewBaseHandler()
	reservationHandler := handlers.NewReservationHandler(base, cfg.Reservations)
	folioHandler := handlers.NewFolioHandler(base, cfg.Folios, cfg.Reservations)

	// Booking needs no token, but the body must name a registered user;
	// a token, when present, overrides the body's userId.
	public := rg.Group("/reservations")
	public.Use(middleware.OptionalAuth(cfg.Auth))
	public.POST("", reservationHandler.Create)

	protected := rg.Group("/reservations")
	protected.Use(middleware.Auth(cfg.Auth), middleware.RequireRole(auth.RoleManager))
	{
		protected.GET("", reservationHandler.List)
		protected.GET("/:id", reservationHandler.Get)
		protected.GET("/product/:productId", reservationHandler.ByProduct)
		protected.GET("/status/:status", reservationHandler.ByStatus)
		protected.GET("/email/:email", reservationHandler.ByEmail)
		protected.GET("/folio/:folio", reservationHandler.ByFolio)
		protected.PATCH("/:id", reservationHandler.Update)
		protected.DELETE("/:id", reservationHandler.Delete)
	}

	folios := rg.Group("/folio")
	folios.Use(middleware.Auth(cfg.Auth), middleware.RequireRole(auth.RoleManager))
	{
		folios.GET("/generate", folioHandler.Generate)
		folios.GET("/:folio", folioHandler.Get)
	}
}
