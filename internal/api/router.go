package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/biblioteca-cpe/console-gateway/internal/api/handler"
	"github.com/biblioteca-cpe/console-gateway/internal/api/middleware"
	"github.com/biblioteca-cpe/console-gateway/internal/core/service"
	"github.com/biblioteca-cpe/console-gateway/internal/infrastructure/session"
	"github.com/biblioteca-cpe/console-gateway/internal/infrastructure/upstream"
	"github.com/biblioteca-cpe/console-gateway/internal/pkg/config"
	"github.com/biblioteca-cpe/console-gateway/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *upstream.Client, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.For("api"))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("biblioteca"))

	// --- Dependencies ---
	sessionStore := session.NewStore(rdb)
	sessionService := service.NewSessionService(client, sessionStore, cfg.JWTSecret, cfg.SessionTTL)

	userService := service.NewUserService(client, cfg.Search.QuietPeriod, logger.For("usuarios"))
	catalogService := service.NewCatalogService(client, cfg.Search.QuietPeriod, logger.For("livros"))
	loanService := service.NewLoanService(client, logger.For("emprestimos"))
	reservationService := service.NewReservationService(client, logger.For("reservas"))
	penaltyService := service.NewPenaltyService(client, logger.For("penalidades"))

	authHandler := handler.NewAuthHandler(sessionService)
	userHandler := handler.NewUserHandler(userService)
	bookHandler := handler.NewBookHandler(catalogService)
	loanHandler := handler.NewLoanHandler(loanService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	penaltyHandler := handler.NewPenaltyHandler(penaltyService)

	sessionMiddleware := middleware.Session(sessionService)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, sessionMiddleware)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(client, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Console routes (session required) ---
	v1 := e.Group("/v1", sessionMiddleware)

	v1.GET("/usuarios", userHandler.List)
	v1.GET("/usuarios/search", userHandler.Search)
	v1.POST("/usuarios", userHandler.Create)
	v1.POST("/usuarios/lote", userHandler.Import)
	v1.PUT("/usuarios/:id", userHandler.Update)
	v1.DELETE("/usuarios/:id", userHandler.Delete)

	v1.GET("/livros", bookHandler.List)
	v1.GET("/livros/search", bookHandler.Search)
	v1.GET("/livros/:isbn", bookHandler.Get)
	v1.POST("/livros", bookHandler.Create)
	v1.PUT("/livros/:id", bookHandler.Update)
	v1.DELETE("/livros/:isbn", bookHandler.Delete)
	v1.GET("/livros/:isbn/exemplares-disponiveis", bookHandler.AvailableCopies)
	v1.GET("/livros/:isbn/exemplares-indisponiveis", bookHandler.UnavailableCopies)
	v1.POST("/exemplares", bookHandler.AddCopy)
	v1.DELETE("/exemplares/:codigo", bookHandler.RemoveCopy)
	v1.GET("/autores", bookHandler.Authors)

	v1.GET("/emprestimos", loanHandler.List)
	v1.POST("/emprestimos", loanHandler.Create)
	v1.PATCH("/emprestimos/:usuario/:exemplar/:data/renovar", loanHandler.Renew)
	v1.PATCH("/emprestimos/:usuario/:exemplar/:data/devolver", loanHandler.Return)
	v1.DELETE("/emprestimos/:usuario/:exemplar/:data", loanHandler.Delete)

	v1.GET("/reservas", reservationHandler.List)
	v1.POST("/reservas", reservationHandler.Create)

	v1.GET("/penalidades", penaltyHandler.List)
	v1.POST("/penalidades", penaltyHandler.Create)
	v1.GET("/penalidades/tipos", penaltyHandler.Types)
	v1.GET("/penalidades/causas", penaltyHandler.Causes)
	v1.PATCH("/penalidades/:usuario/:exemplar/:dataInicio/:dataAplicacao/cumprida", penaltyHandler.Fulfill)
	v1.DELETE("/penalidades/:usuario/:exemplar/:dataInicio/:dataAplicacao", penaltyHandler.Delete)

	return e
}
