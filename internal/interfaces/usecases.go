package interfaces

import (
	"time"

	"github.com/iwtcode/robotAdapter/internal/domain/entities"
	"github.com/iwtcode/robotAdapter/internal/domain/models"
)

// Usecases - это агрегирующий интерфейс для всех use cases.
type Usecases interface {
	// ToolCall диспетчеризует одно действие из фиксированного словаря.
	ToolCall(req models.ToolCallRequest) models.ToolCallResponse

	GetStatus() models.StatusResponse
	GetConfig() models.ConfigResponse
	RenderMap() string
	UpsertObject(req models.ObjectUpsertRequest) (entities.ObjectEntry, error)
	UpsertZone(req models.ZoneUpsertRequest) (entities.Zone, error)
	RecentActions(limit int) ([]entities.ActionRecord, error)
	StartPolling(interval time.Duration) error
	StopPolling() error
}
