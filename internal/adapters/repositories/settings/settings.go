package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/iwtcode/robotAdapter/internal/config"
	"github.com/iwtcode/robotAdapter/internal/domain/entities"
	"github.com/iwtcode/robotAdapter/internal/interfaces"
	"github.com/iwtcode/robotAdapter/internal/middleware/logging"

	"gopkg.in/yaml.v3"
)

// Repository — YAML-хранилище настроек. Полная модель держится в памяти,
// каждая мутация переписывает файл целиком.
type Repository struct {
	mu       sync.RWMutex
	path     string
	settings entities.Settings
	logger   *logging.Logger
}

// NewRepository читает settings.yaml по пути из конфигурации.
// Отсутствующий файл не считается ошибкой: хранилище стартует с
// настройками по умолчанию и создает файл при первой записи.
func NewRepository(cfg *config.AppConfig, logger *logging.Logger) (interfaces.SettingsRepository, error) {
	repo := &Repository{
		path:   cfg.SettingsPath,
		logger: logger.WithPrefix("SETTINGS"),
	}
	if err := repo.load(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *Repository) load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Warn("Settings file not found, starting with defaults", "path", r.path)
			r.settings = entities.Settings{}
			r.settings.Normalize()
			return nil
		}
		return fmt.Errorf("не удалось прочитать файл настроек '%s': %w", r.path, err)
	}

	var s entities.Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("не удалось разобрать файл настроек '%s': %w", r.path, err)
	}
	s.Normalize()

	r.settings = s
	r.logger.Info("Settings loaded", "path", r.path, "zones", s.Zones.Len(), "objects", len(s.Objects))
	return nil
}

// saveUnsafe переписывает файл настроек. Вызывается под мьютексом.
func (r *Repository) saveUnsafe() error {
	data, err := yaml.Marshal(&r.settings)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать настройки: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("не удалось создать директорию настроек: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("не удалось записать файл настроек '%s': %w", r.path, err)
	}
	return nil
}

// Snapshot возвращает независимую копию текущих настроек.
func (r *Repository) Snapshot() entities.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings.Clone()
}

// Zones возвращает копию таблицы зон в порядке объявления.
func (r *Repository) Zones() *entities.ZoneTable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings.Zones.Clone()
}

// SafetySpeedScale возвращает безопасную скорость из настроек.
func (r *Repository) SafetySpeedScale() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings.Safety.SpeedScale
}

// UpsertObject сохраняет объект и переписывает файл.
func (r *Repository) UpsertObject(id string, pose entities.Pose) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings.Objects[id] = entities.ObjectEntry{Pose: pose}
	return r.saveUnsafe()
}

// UpsertZone сохраняет зону и переписывает файл. Новая зона встает в
// конец порядка объявления.
func (r *Repository) UpsertZone(id string, zone entities.Zone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings.Zones.Upsert(id, zone)
	return r.saveUnsafe()
}

// SetObjectPose фиксирует новую позицию объекта после успешной укладки.
// Неизвестный объект при этом создается.
func (r *Repository) SetObjectPose(id string, pose entities.Pose) error {
	return r.UpsertObject(id, pose)
}
