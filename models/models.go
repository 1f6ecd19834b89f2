package models

import "encoding/json"

// Pose - декартова позиция в метрах.
type Pose struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Zone - именованная зона рабочего пространства.
type Zone struct {
	CenterPose Pose    `json:"center_pose"`
	ToleranceM float64 `json:"tolerance_m"`
}

// ObjectEntry - известный объект и его последняя позиция.
type ObjectEntry struct {
	Pose Pose `json:"pose"`
}

// Workspace - границы рабочего пространства.
type Workspace struct {
	BoundsM struct {
		X [2]float64 `json:"x"`
		Y [2]float64 `json:"y"`
	} `json:"bounds_m"`
}

// ToolCallRequest - запрос на выполнение действия манипулятора.
type ToolCallRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// ToolCallResponse - результат выполнения действия.
type ToolCallResponse struct {
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// BridgeStatus - снимок состояния моста манипулятора.
type BridgeStatus struct {
	OK         bool    `json:"ok"`
	HeldObject string  `json:"held_object"`
	SpeedScale float64 `json:"speed_scale"`
	Stopped    bool    `json:"stopped"`
	LastAction string  `json:"last_action"`
}

// StatusResponse - ответ на запрос статуса сервера.
type StatusResponse struct {
	OK     bool         `json:"ok"`
	Bridge BridgeStatus `json:"bridge"`
	LLM    struct {
		Provider string `json:"provider"`
		Model    string `json:"model"`
	} `json:"llm"`
}

// ConfigResponse - ответ на запрос конфигурации сцены.
type ConfigResponse struct {
	OK        bool                   `json:"ok"`
	Zones     json.RawMessage        `json:"zones"`
	Objects   map[string]ObjectEntry `json:"objects"`
	Workspace Workspace              `json:"workspace"`
}

// MapResponse - ответ с ASCII-картой рабочего пространства.
type MapResponse struct {
	Map string `json:"map"`
}

// ObjectUpsertRequest - запрос на добавление или обновление объекта.
type ObjectUpsertRequest struct {
	ID   string `json:"id"`
	Pose Pose   `json:"pose"`
}

// ZoneUpsertRequest - запрос на добавление или обновление зоны.
type ZoneUpsertRequest struct {
	ID         string  `json:"id"`
	CenterPose Pose    `json:"center_pose"`
	ToleranceM float64 `json:"tolerance_m,omitempty"`
}

// UpsertResponse - подтверждение изменения конфигурации.
type UpsertResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}
