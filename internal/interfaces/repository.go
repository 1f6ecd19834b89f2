package interfaces

import (
	"github.com/iwtcode/robotAdapter/internal/domain/entities"
)

// SettingsRepository определяет контракт хранилища настроек (settings.yaml).
// Мутации атомарно переписывают файл; порядок объявления зон сохраняется.
type SettingsRepository interface {
	Snapshot() entities.Settings
	Zones() *entities.ZoneTable
	SafetySpeedScale() float64
	UpsertObject(id string, pose entities.Pose) error
	UpsertZone(id string, zone entities.Zone) error
	SetObjectPose(id string, pose entities.Pose) error
}

// ActionHistoryRepository определяет контракт журнала выполненных действий.
type ActionHistoryRepository interface {
	Create(record *entities.ActionRecord) error
	GetRecent(limit int) ([]entities.ActionRecord, error)
}
