package models

import "github.com/iwtcode/robotAdapter/internal/domain/entities"

// ErrorResponse представляет стандартный ответ с ошибкой.
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  struct {
		Code    int    `json:"code" example:"404"`
		Message string `json:"message" example:"not_found"`
	} `json:"error"`
}

// MessageResponse представляет стандартный успешный ответ с сообщением.
type MessageResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Status polling started successfully"`
}

// StatusResponse представляет ответ эндпоинта /status.
type StatusResponse struct {
	OK     bool                 `json:"ok"`
	Bridge BridgeStatus         `json:"bridge"`
	LLM    entities.LLMSettings `json:"llm"`
}

// ConfigResponse представляет ответ эндпоинта /config.
type ConfigResponse struct {
	OK        bool                            `json:"ok"`
	Zones     *entities.ZoneTable             `json:"zones"`
	Objects   map[string]entities.ObjectEntry `json:"objects"`
	Workspace entities.Workspace              `json:"workspace"`
}

// MapResponse представляет ответ эндпоинта /map.
type MapResponse struct {
	Map string `json:"map"`
}

// ObjectUpsertResponse представляет ответ при сохранении объекта.
type ObjectUpsertResponse struct {
	OK     bool                 `json:"ok"`
	Object entities.ObjectEntry `json:"object"`
}

// ZoneUpsertResponse представляет ответ при сохранении зоны.
type ZoneUpsertResponse struct {
	OK   bool          `json:"ok"`
	Zone entities.Zone `json:"zone"`
}

// ActionsResponse представляет ответ со списком последних действий.
type ActionsResponse struct {
	Status  string                  `json:"status" example:"ok"`
	Count   int                     `json:"count" example:"2"`
	Actions []entities.ActionRecord `json:"actions"`
}
