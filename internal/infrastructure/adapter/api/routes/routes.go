package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/time-calculator/internal/domain/port/core"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/metrics"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, calculatorHandler *handler.CalculatorHandler, m *metrics.Metrics) {
	timeRoutes := router.Group("/time")
	{
		timeRoutes.Match(getOrPost, "/add", calculatorHandler.AddDuration)
		timeRoutes.Match(getOrPost, "/subtract", calculatorHandler.SubtractDuration)
		timeRoutes.Match(getOrPost, "/difference", calculatorHandler.TimeDifference)
		timeRoutes.Match(getOrPost, "/parse", calculatorHandler.ParseToTimestamp)
		timeRoutes.GET("/format", calculatorHandler.FormatCurrentTime)
		timeRoutes.GET("/info", calculatorHandler.TimeInfo)
	}

	router.Match(getOrPost, "/duration/convert", calculatorHandler.ConvertDuration)

	router.GET("/health", calculatorHandler.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))
}

var getOrPost = []string{http.MethodGet, http.MethodPost}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, m *metrics.Metrics) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.Metrics(m, timeProvider))
}
