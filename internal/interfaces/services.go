package interfaces

import (
	"time"

	"github.com/iwtcode/robotAdapter/internal/domain/entities"
	"github.com/iwtcode/robotAdapter/internal/domain/models"
)

// RobotService - это агрегирующий интерфейс для всей бизнес-логики робота.
type RobotService interface {
	BridgeController
	StatusPublisher
}

// BridgeController определяет контракт атомарных действий моста.
// Все методы синхронны и возвращают структурированный результат,
// а не ошибку Go: отказ действия — это штатный ответ, не исключение.
type BridgeController interface {
	SetSpeed(scale float64) models.ActionResult
	Stop() models.ActionResult
	Pick(objectID string, gripStrength float64) models.ActionResult
	Place(zoneKey string, pose *entities.Pose) models.ActionResult
	QueryStatus() models.BridgeStatus
	ReloadZones(zones *entities.ZoneTable)
}

// StatusPublisher определяет контракт для периодической публикации
// снимков состояния моста во внешние системы.
type StatusPublisher interface {
	StartPolling(interval time.Duration) error
	StopPolling() error
	IsPollingActive() bool
}
