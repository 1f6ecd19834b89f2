package robot_service

import (
	"fmt"
	"sync"
	"time"

	"github.com/iwtcode/robotAdapter/internal/domain/entities"
	"github.com/iwtcode/robotAdapter/internal/domain/models"
	"github.com/iwtcode/robotAdapter/internal/middleware/logging"
	apperrors "github.com/iwtcode/robotAdapter/pkg/errors"
)

// Границы допустимого масштаба скорости.
const (
	MinSpeedScale = 0.1
	MaxSpeedScale = 1.0
)

// minTravelTime — нижняя граница имитируемого времени движения.
const minTravelTime = 50 * time.Millisecond

// Bridge владеет изменяемым состоянием симулируемого манипулятора и
// выполняет атомарные действия. Единственный экземпляр на процесс;
// каждое действие защищено мьютексом, составная последовательность
// pick+place сериализуется на уровне диспетчера.
type Bridge struct {
	mu         sync.Mutex
	heldObject string // пустая строка — захват свободен
	speedScale float64
	stopped    bool
	lastAction string
	zones      *entities.ZoneTable
	logger     *logging.Logger
}

// NewBridge создает мост с таблицей зон и стартовой скоростью из настроек.
func NewBridge(zones *entities.ZoneTable, speedScale float64, logger *logging.Logger) *Bridge {
	if speedScale == 0 {
		speedScale = entities.DefaultSpeedScale
	}
	return &Bridge{
		speedScale: speedScale,
		lastAction: "idle",
		zones:      zones.Clone(),
		logger:     logger.WithPrefix("BRIDGE"),
	}
}

// travelTime имитирует время подвода: чем ниже скорость, тем дольше.
func (b *Bridge) travelTime() time.Duration {
	d := time.Duration(0.25 * (1.0 - b.speedScale) * float64(time.Second))
	if d < minTravelTime {
		d = minTravelTime
	}
	return d
}

// SetSpeed обновляет масштаб скорости. Работает и в остановленном состоянии.
func (b *Bridge) SetSpeed(scale float64) models.ActionResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	if scale < MinSpeedScale || scale > MaxSpeedScale {
		return models.ActionResult{Error: apperrors.ScaleOutOfRange}
	}

	b.speedScale = scale
	b.lastAction = fmt.Sprintf("set_speed:%.2f", scale)
	b.logger.Info("Speed scale updated", "scale", scale)
	return models.ActionResult{OK: true}
}

// Stop переводит мост в остановленное состояние. Всегда успешен.
// Незавершенный захват сбрасывается, а не доводится до конца.
func (b *Bridge) Stop() models.ActionResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true
	b.heldObject = ""
	b.lastAction = "stop"
	b.logger.Warn("Bridge stopped, any held object released")
	return models.ActionResult{OK: true}
}

// Pick имитирует подвод и захват объекта.
func (b *Bridge) Pick(objectID string, gripStrength float64) models.ActionResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return models.ActionResult{Error: apperrors.Stopped}
	}

	// Имитация подвода и захвата
	time.Sleep(b.travelTime())

	if b.heldObject != "" {
		// Повторный pick без place молча перезаписывает удержание.
		// Поведение закреплено тестом; реальный захват так не умеет.
		b.logger.Warn("Pick while already holding, previous hold overwritten",
			"previous", b.heldObject, "object", objectID)
	}

	b.heldObject = objectID
	b.lastAction = "pick:" + objectID
	b.logger.Info("Object picked", "object", objectID, "grip_strength", gripStrength)
	return models.ActionResult{OK: true}
}

// Place имитирует подвод и укладку удерживаемого объекта в зону или позу.
// Попадание позы в допуск зоны на этом уровне не проверяется.
func (b *Bridge) Place(zoneKey string, pose *entities.Pose) models.ActionResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return models.ActionResult{Error: apperrors.Stopped}
	}
	if b.heldObject == "" {
		return models.ActionResult{Error: apperrors.NoObjectHeld}
	}
	if zoneKey == "" && pose == nil {
		return models.ActionResult{Error: apperrors.TargetOrPoseRequired}
	}
	if zoneKey != "" && !b.zones.Has(zoneKey) {
		return models.ActionResult{Error: apperrors.UnknownZone}
	}

	// Имитация подвода и отпускания
	time.Sleep(b.travelTime())

	placed := b.heldObject
	b.heldObject = ""
	if zoneKey != "" {
		b.lastAction = "place:" + zoneKey
	} else {
		b.lastAction = "place:pose"
	}
	b.logger.Info("Object placed", "object", placed, "target", b.lastAction)

	return models.ActionResult{
		OK:           true,
		PlacedObject: placed,
		Target:       zoneKey,
		Pose:         pose,
	}
}

// QueryStatus возвращает снимок состояния без побочных эффектов.
func (b *Bridge) QueryStatus() models.BridgeStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	return models.BridgeStatus{
		OK:         true,
		HeldObject: b.heldObject,
		SpeedScale: b.speedScale,
		Stopped:    b.stopped,
		LastAction: b.lastAction,
	}
}

// ReloadZones замещает таблицу зон моста при изменении конфигурации.
// Остановленное состояние при этом не сбрасывается.
func (b *Bridge) ReloadZones(zones *entities.ZoneTable) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.zones = zones.Clone()
	b.logger.Info("Zone table reloaded", "zones", b.zones.Len())
}
