package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AET-DevOps25/team-opsontherocks/internal/api/handler"
	"github.com/AET-DevOps25/team-opsontherocks/internal/api/middleware"
	"github.com/AET-DevOps25/team-opsontherocks/internal/auth"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/service"
	mongodb "github.com/AET-DevOps25/team-opsontherocks/internal/infrastructure/db/mongo"
	redisdb "github.com/AET-DevOps25/team-opsontherocks/internal/infrastructure/db/redis"
)

// RouterConfig carries everything the router needs to wire handlers.
type RouterConfig struct {
	Codec        *auth.TokenCodec
	CookiePolicy auth.CookiePolicy

	// ClientOrigin is the single allowed CORS origin. It must agree with the
	// cookie policy: a cross-origin SPA needs SameSite=None cookies AND its
	// origin allowed here with credentials.
	ClientOrigin string

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("wheel_of_life"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderOrigin, "X-Requested-With"},
		ExposeHeaders:    []string{echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.Authenticate(cfg.Codec, cfg.Log))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	categoryService := service.NewCategoryService(mongodb.NewCategoryRepository(db))
	reportService := service.NewReportService(mongodb.NewReportRepository(db))
	authService := service.NewAuthService(users, categoryService, cfg.Codec)
	limiter := redisdb.NewLoginLimiter(rdb)

	authHandler := handler.NewAuthHandler(authService, cfg.CookiePolicy, limiter, cfg.Log)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	reportHandler := handler.NewReportHandler(reportService)

	// --- Auth routes (anonymous) ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/healthCheck", authHandler.HealthCheck)

	// --- Health / observability (no auth required) ---
	readiness := handler.NewReadinessHandler(db, rdb)
	e.GET("/health/ready", readiness.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Protected routes ---
	protected := e.Group("", middleware.RequireAuth())
	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Create)
	protected.DELETE("/categories/:id", categoryHandler.Delete)
	protected.GET("/reports", reportHandler.List)
	protected.POST("/reports", reportHandler.Submit)

	return e
}
