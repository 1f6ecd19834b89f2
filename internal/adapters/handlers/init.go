package handlers

import (
	"net/http"

	"github.com/iwtcode/robotAdapter/internal/config"
	"github.com/iwtcode/robotAdapter/internal/interfaces"
	"github.com/iwtcode/robotAdapter/internal/middleware/logging"
	"github.com/iwtcode/robotAdapter/internal/middleware/swagger"

	"github.com/gin-gonic/gin"
)

// Handler - структура для обработчиков HTTP-запросов
type Handler struct {
	usecase interfaces.Usecases
	logger  *logging.Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase interfaces.Usecases, logger *logging.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger.WithPrefix("HANDLER"),
	}
}

// ProvideRouter настраивает и возвращает HTTP-роутер
func ProvideRouter(h *Handler, cfg *config.AppConfig, swagCfg *swagger.Config) http.Handler {
	gin.SetMode(cfg.GinMode)

	router := gin.Default()

	// Swagger
	swagger.Setup(router, swagCfg)

	// Logger Middleware
	router.Use(LoggingMiddleware(h.logger))

	// Группа API v1
	v1 := router.Group("/api/v1")
	{
		v1.POST("/tool-call", h.ToolCall)
		v1.GET("/status", h.GetStatus)
		v1.GET("/map", h.GetMap)
		v1.GET("/actions", h.GetActions)

		configs := v1.Group("/config")
		{
			configs.GET("", h.GetConfig)
			configs.POST("/object", h.UpsertObject)
			configs.POST("/zone", h.UpsertZone)
		}

		polling := v1.Group("/polling")
		{
			polling.POST("/start", h.StartPolling)
			polling.POST("/stop", h.StopPolling)
		}
	}

	return router
}
