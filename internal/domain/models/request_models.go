package models

import "github.com/iwtcode/robotAdapter/internal/domain/entities"

// ObjectUpsertRequest определяет структуру для создания/обновления объекта.
type ObjectUpsertRequest struct {
	ID   string         `json:"id" binding:"required"`
	Pose *entities.Pose `json:"pose" binding:"required"`
}

// ZoneUpsertRequest определяет структуру для создания/обновления зоны.
type ZoneUpsertRequest struct {
	ID         string         `json:"id" binding:"required"`
	CenterPose *entities.Pose `json:"center_pose" binding:"required"`
	ToleranceM float64        `json:"tolerance_m"`
}

// PollingRequest определяет структуру для запроса на запуск публикации статуса.
type PollingRequest struct {
	Interval int `json:"interval" binding:"required,gt=0"` // в миллисекундах
}
