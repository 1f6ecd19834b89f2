package models

import (
	"encoding/json"
	"time"

	"github.com/iwtcode/robotAdapter/internal/domain/entities"
)

// DefaultGripStrength — усилие захвата по умолчанию для действия pick.
const DefaultGripStrength = 0.6

// ToolCallRequest — один именованный вызов действия из фиксированного словаря.
type ToolCallRequest struct {
	Name      string          `json:"name" binding:"required"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCallResponse — структурированный результат диспетчеризации действия.
type ToolCallResponse struct {
	OK     bool        `json:"ok"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// ActionResult — результат атомарного действия моста.
type ActionResult struct {
	OK           bool           `json:"ok"`
	Error        string         `json:"error,omitempty"`
	PlacedObject string         `json:"placed_object,omitempty"`
	Target       string         `json:"target,omitempty"`
	Pose         *entities.Pose `json:"pose,omitempty"`
	NewPose      *entities.Pose `json:"new_pose,omitempty"`
}

// BridgeStatus — снимок состояния моста. Пустой HeldObject означает,
// что захват свободен.
type BridgeStatus struct {
	OK         bool    `json:"ok"`
	HeldObject string  `json:"held_object"`
	SpeedScale float64 `json:"speed_scale"`
	Stopped    bool    `json:"stopped"`
	LastAction string  `json:"last_action"`
}

// Типизированные аргументы действий. Сырые JSON-аргументы разбираются
// на границе диспетчера ровно один раз; указатели отличают
// отсутствующее значение от нулевого.

// SetSpeedArgs — аргументы действия set_speed.
type SetSpeedArgs struct {
	Scale *float64 `json:"scale"`
}

// PickArgs — аргументы действия pick.
type PickArgs struct {
	ObjectID     string   `json:"object_id"`
	GripStrength *float64 `json:"grip_strength"`
}

// PlaceArgs — аргументы действия place.
type PlaceArgs struct {
	Target string         `json:"target"`
	Pose   *entities.Pose `json:"pose"`
}

// MoveObjectArgs — аргументы составного действия move_object.
type MoveObjectArgs struct {
	ObjectID string         `json:"object_id"`
	Target   string         `json:"target"`
	Pose     *entities.Pose `json:"pose"`
}

// ConfigResult — полезная нагрузка действия get_config.
type ConfigResult struct {
	Zones     *entities.ZoneTable             `json:"zones"`
	Objects   map[string]entities.ObjectEntry `json:"objects"`
	Workspace entities.Workspace              `json:"workspace"`
}

// ActionEvent — событие выполненного действия для публикации в Kafka.
type ActionEvent struct {
	ID        string    `json:"id"`
	Tool      string    `json:"tool"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusEvent — периодический снимок состояния моста для публикации в Kafka.
type StatusEvent struct {
	Status    BridgeStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
}
