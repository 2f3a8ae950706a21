package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pigeonpulse/loft-api/docs"
	"github.com/pigeonpulse/loft-api/internal/api/handler"
	"github.com/pigeonpulse/loft-api/internal/api/middleware"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
	"github.com/pigeonpulse/loft-api/internal/core/service"
	"github.com/pigeonpulse/loft-api/internal/infrastructure/config"
	mongodb "github.com/pigeonpulse/loft-api/internal/infrastructure/db/mongo"
	"github.com/pigeonpulse/loft-api/internal/infrastructure/db/redis"
	"github.com/pigeonpulse/loft-api/internal/infrastructure/pdf"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *goredis.Client,
	verifier ports.IdentityVerifier,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("pigeonpulse"))

	// --- Repositories ---
	users := mongodb.NewUserRepository(db)
	lofts := mongodb.NewLoftRepository(db)
	memberships := mongodb.NewMembershipRepository(db)
	pigeons := mongodb.NewPigeonRepository(db)
	denylist := redis.NewTokenDenylist(rdb)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	access := service.NewAccessService(memberships)
	identity := service.NewIdentityService(users, lofts, memberships, log)
	auth := service.NewAuthService(verifier, identity, lofts, memberships, tokens, denylist, log)
	loftSvc := service.NewLoftService(lofts, memberships, users, access, log)
	pigeonSvc := service.NewPigeonService(pigeons, access, log)
	reportSvc := service.NewReportService(pigeons, lofts, access, pdf.NewCensusRenderer(), log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(auth, identity)
	loftHandler := handler.NewLoftHandler(loftSvc)
	pigeonHandler := handler.NewPigeonHandler(pigeonSvc)
	reportHandler := handler.NewReportHandler(reportSvc)

	// Every route passes through the request filter; public paths are
	// exempted inside the filter itself, so there is exactly one gate.
	e.Use(middleware.RequestContext(tokens, denylist, users, lofts, log))

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me)
	e.GET("/api/auth/users/search", authHandler.SearchUser)

	// --- Loft and membership routes ---
	e.GET("/api/lofts", loftHandler.List)
	e.POST("/api/lofts", loftHandler.Create)
	e.PUT("/api/lofts/:id", loftHandler.Update)
	e.GET("/api/lofts/:id/members", loftHandler.ListMembers)
	e.POST("/api/lofts/:id/members", loftHandler.Grant)
	e.DELETE("/api/lofts/:id/members/:user_id", loftHandler.Revoke)
	e.GET("/api/roles", loftHandler.Memberships)

	// --- Pigeon routes ---
	e.GET("/api/pigeons", pigeonHandler.List)
	e.POST("/api/pigeons", pigeonHandler.Create)
	e.GET("/api/pigeons/:id", pigeonHandler.Get)
	e.PUT("/api/pigeons/:id", pigeonHandler.Update)
	e.DELETE("/api/pigeons/:id", pigeonHandler.Delete)
	e.GET("/api/pigeons/:id/ancestors", pigeonHandler.Ancestors)
	e.GET("/api/pigeons/:id/descendants", pigeonHandler.Descendants)

	// --- Report routes ---
	e.GET("/api/reports/statistics", reportHandler.Statistics)
	e.GET("/api/reports/census", reportHandler.Census)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
