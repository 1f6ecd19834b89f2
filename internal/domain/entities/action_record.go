package entities

import "time"

// ActionRecord — запись журнала выполненных действий.
type ActionRecord struct {
	ID        string    `gorm:"primaryKey;not null" json:"id"`
	Tool      string    `gorm:"not null;index" json:"tool"`
	Arguments string    `json:"arguments"` // Аргументы вызова в виде JSON
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
