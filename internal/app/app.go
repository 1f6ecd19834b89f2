package app

import (
	"context"
	"net/http"
	"time"

	"github.com/iwtcode/robotAdapter/internal/adapters/handlers"
	"github.com/iwtcode/robotAdapter/internal/adapters/repositories/postgres"
	"github.com/iwtcode/robotAdapter/internal/adapters/repositories/settings"
	"github.com/iwtcode/robotAdapter/internal/config"
	"github.com/iwtcode/robotAdapter/internal/interfaces"
	"github.com/iwtcode/robotAdapter/internal/middleware/logging"
	"github.com/iwtcode/robotAdapter/internal/middleware/swagger"
	"github.com/iwtcode/robotAdapter/internal/services/kafka"
	"github.com/iwtcode/robotAdapter/internal/services/robot_service"
	"github.com/iwtcode/robotAdapter/internal/usecases"

	"go.uber.org/fx"
)

// New создает новый экземпляр fx.App
func New() *fx.App {
	return fx.New(
		ConfigModule,
		LoggingModule,
		SettingsModule,
		HistoryModule,
		ProducerModule,
		ServiceModule,
		UsecaseModule,
		HttpServerModule,
		// Invoke-функции для хуков жизненного цикла
		fx.Invoke(InvokeLogStartup),
		fx.Invoke(InvokeCloseProducer),
	)
}

// --- Модули FX ---

var ConfigModule = fx.Module("config_module",
	fx.Provide(config.LoadConfiguration),
)

func ProvideLogger(cfg *config.AppConfig) *logging.Logger {
	loggerCfg := &logging.Config{
		Enabled:    cfg.Logging.Enable,
		Level:      cfg.Logging.Level,
		LogsDir:    cfg.Logging.LogsDir,
		SavingDays: uint(cfg.Logging.SavingDays),
	}
	return logging.NewLogger(loggerCfg, "RobotAdapterApp")
}

var LoggingModule = fx.Module("logging_module",
	fx.Provide(ProvideLogger),
)

var SettingsModule = fx.Module("settings_module",
	fx.Provide(settings.NewRepository),
)

var HistoryModule = fx.Module("history_module",
	fx.Provide(postgres.NewRepository),
)

var ProducerModule = fx.Module("producer_module",
	fx.Provide(kafka.NewEventProducer),
)

var ServiceModule = fx.Module("service_module",
	fx.Provide(robot_service.NewRobotService),
)

var UsecaseModule = fx.Module("usecases_module",
	fx.Provide(usecases.NewUsecases),
)

func NewSwaggerConfig() *swagger.Config {
	return &swagger.Config{
		Enabled: true,
		Path:    "/swagger",
	}
}

var HttpServerModule = fx.Module("http_server_module",
	fx.Provide(
		NewSwaggerConfig,
		handlers.NewHandler,
		handlers.ProvideRouter,
	),
	fx.Invoke(InvokeHttpServer),
)

// InvokeLogStartup логирует стартовую конфигурацию моста.
func InvokeLogStartup(lc fx.Lifecycle, robotSvc interfaces.RobotService, settingsRepo interfaces.SettingsRepository, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			status := robotSvc.QueryStatus()
			logger.Info("Robot bridge initialized",
				"zones", settingsRepo.Zones().Len(),
				"speed_scale", status.SpeedScale,
			)
			return nil
		},
	})
}

// InvokeCloseProducer закрывает продюсера Kafka при остановке приложения.
func InvokeCloseProducer(lc fx.Lifecycle, producer interfaces.KafkaService, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Kafka producer...")
			return producer.Close()
		},
	})
}

// InvokeHttpServer запускает HTTP-сервер.
func InvokeHttpServer(lc fx.Lifecycle, cfg *config.AppConfig, h http.Handler, logger *logging.Logger) {
	serverAddr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP Server is starting", "address", serverAddr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
