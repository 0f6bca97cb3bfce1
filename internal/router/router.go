package router

import (
	"talentboard/config"
	"talentboard/internal/middleware"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewApiRouter,
	NewAuthRouter,
	NewHealthRouter,
)

// 透過依賴注入組出 HTTP 進入點
func NewRouter(
	config *config.Configuration,
	traceEntry *middleware.TraceEntry,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	session *middleware.Session,
	responseMiddleware *middleware.Response,
	apiRouter *ApiRouter,
	authRouter *AuthRouter,
	healthRouter *HealthRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(traceEntry.Handler())
	router.Use(logger.LoggerHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())
	router.Use(session.SessionHandler())
	router.Use(responseMiddleware.FormatHandler())

	healthRouter.RegisterHealthRoutes(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authRouter.RegisterRoutes(router)
	apiRouter.RegisterRoutes(router)
	pprof.Register(router)
	return router
}
