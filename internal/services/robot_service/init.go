package robot_service

import (
	"time"

	"github.com/iwtcode/robotAdapter/internal/domain/entities"
	"github.com/iwtcode/robotAdapter/internal/domain/models"
	"github.com/iwtcode/robotAdapter/internal/interfaces"
	"github.com/iwtcode/robotAdapter/internal/middleware/logging"
)

type robotService struct {
	bridge *Bridge
	poller *StatusPoller
}

// NewRobotService собирает мост и публикатор статуса в единый сервис.
// Мост конструируется один раз при старте из текущих настроек.
func NewRobotService(settings interfaces.SettingsRepository, producer interfaces.KafkaService, logger *logging.Logger) interfaces.RobotService {
	bridge := NewBridge(settings.Zones(), settings.SafetySpeedScale(), logger)
	poller := NewStatusPoller(bridge, producer, logger)

	return &robotService{
		bridge: bridge,
		poller: poller,
	}
}

// --- Реализация методов интерфейса RobotService ---

func (s *robotService) SetSpeed(scale float64) models.ActionResult {
	return s.bridge.SetSpeed(scale)
}

func (s *robotService) Stop() models.ActionResult {
	return s.bridge.Stop()
}

func (s *robotService) Pick(objectID string, gripStrength float64) models.ActionResult {
	return s.bridge.Pick(objectID, gripStrength)
}

func (s *robotService) Place(zoneKey string, pose *entities.Pose) models.ActionResult {
	return s.bridge.Place(zoneKey, pose)
}

func (s *robotService) QueryStatus() models.BridgeStatus {
	return s.bridge.QueryStatus()
}

func (s *robotService) ReloadZones(zones *entities.ZoneTable) {
	s.bridge.ReloadZones(zones)
}

func (s *robotService) StartPolling(interval time.Duration) error {
	return s.poller.StartPolling(interval)
}

func (s *robotService) StopPolling() error {
	return s.poller.StopPolling()
}

func (s *robotService) IsPollingActive() bool {
	return s.poller.IsPollingActive()
}
