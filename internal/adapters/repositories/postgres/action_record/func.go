package action_record

import (
	"github.com/iwtcode/robotAdapter/internal/domain/entities"
)

func (r *ActionRecordRepositoryImpl) Create(record *entities.ActionRecord) error {
	return r.db.Create(record).Error
}

// GetRecent возвращает последние записи журнала, новые первыми.
func (r *ActionRecordRepositoryImpl) GetRecent(limit int) ([]entities.ActionRecord, error) {
	var records []entities.ActionRecord
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
