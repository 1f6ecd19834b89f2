package postgres

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/iwtcode/robotAdapter/internal/adapters/repositories/postgres/action_record"
	"github.com/iwtcode/robotAdapter/internal/config"
	"github.com/iwtcode/robotAdapter/internal/domain/entities"
	"github.com/iwtcode/robotAdapter/internal/interfaces"
	"github.com/iwtcode/robotAdapter/internal/middleware/logging"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	interfaces.ActionHistoryRepository
}

// NewRepository подключает журнал действий к PostgreSQL. При выключенном
// HISTORY_ENABLE возвращается пустая реализация, и сервер работает без БД.
func NewRepository(cfg *config.AppConfig, appLogger *logging.Logger) (interfaces.ActionHistoryRepository, error) {
	if !cfg.History.Enable {
		appLogger.Info("Action history is disabled, using no-op repository")
		return &noopRepository{}, nil
	}

	// Шаг 1: Подключение к служебной БД 'postgres' для проверки и создания целевой БД
	dsnPostgres := fmt.Sprintf("host=%s user=%s password=%s dbname=postgres port=%s sslmode=disable",
		cfg.History.Host,
		cfg.History.Username,
		cfg.History.Password,
		cfg.History.Port,
	)

	db, err := gorm.Open(postgres.Open(dsnPostgres), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к служебной БД 'postgres': %w", err)
	}

	// Шаг 2: Проверка существования нужной БД
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)"
	if err := db.Raw(query, cfg.History.DBName).Scan(&exists).Error; err != nil {
		return nil, fmt.Errorf("не удалось проверить существование БД '%s': %w", cfg.History.DBName, err)
	}

	// Шаг 3: Если БД не существует, создаем ее
	if !exists {
		appLogger.Info("Database not found. Creating...", "db_name", cfg.History.DBName)
		createDbQuery := fmt.Sprintf("CREATE DATABASE %s", cfg.History.DBName)
		if err := db.Exec(createDbQuery).Error; err != nil {
			return nil, fmt.Errorf("не удалось создать БД '%s': %w", cfg.History.DBName, err)
		}
		appLogger.Info("Database created successfully.", "db_name", cfg.History.DBName)
	}

	sqlDB, _ := db.DB()
	_ = sqlDB.Close()

	// Шаг 4: Основное подключение к целевой базе данных
	dsnApp := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.History.Host,
		cfg.History.Username,
		cfg.History.Password,
		cfg.History.DBName,
		cfg.History.Port,
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	appDb, err := gorm.Open(postgres.Open(dsnApp), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных '%s': %w", cfg.History.DBName, err)
	}

	if err := autoMigrate(appDb); err != nil {
		return nil, fmt.Errorf("ошибка выполнения автомиграций: %w", err)
	}

	return &Repository{
		ActionHistoryRepository: action_record.NewActionRecordRepository(appDb),
	}, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&entities.ActionRecord{})
}

// noopRepository используется при выключенном журнале действий.
type noopRepository struct{}

func (n *noopRepository) Create(record *entities.ActionRecord) error {
	return nil
}

func (n *noopRepository) GetRecent(limit int) ([]entities.ActionRecord, error) {
	return []entities.ActionRecord{}, nil
}
