package action_record

import (
	"github.com/iwtcode/robotAdapter/internal/interfaces"
	"gorm.io/gorm"
)

type ActionRecordRepositoryImpl struct {
	db *gorm.DB
}

func NewActionRecordRepository(db *gorm.DB) interfaces.ActionHistoryRepository {
	return &ActionRecordRepositoryImpl{db: db}
}
