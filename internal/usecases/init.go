package usecases

import (
	"github.com/iwtcode/robotAdapter/internal/interfaces"
	"github.com/iwtcode/robotAdapter/internal/middleware/logging"
)

// NewUsecases - конструктор агрегата всех use cases.
func NewUsecases(
	robotSvc interfaces.RobotService,
	settings interfaces.SettingsRepository,
	history interfaces.ActionHistoryRepository,
	producer interfaces.KafkaService,
	logger *logging.Logger,
) interfaces.Usecases {
	return NewUsecase(robotSvc, settings, history, producer, logger)
}
