package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig содержит конфигурацию сервера инструментов.
type AppConfig struct {
	ServerPort   string
	GinMode      string
	SettingsPath string
	KafkaBroker  string
	KafkaTopic   string
	History      HistoryConfig
	Logging      LoggerConfig
}

// HistoryConfig содержит настройки журнала действий в PostgreSQL.
type HistoryConfig struct {
	Enable   bool
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// LoggerConfig содержит настройки логгера.
type LoggerConfig struct {
	Enable     bool
	LogsDir    string
	Level      string
	SavingDays int
}

// LoadConfiguration загружает конфигурацию из .env файла или переменных окружения.
func LoadConfiguration() (*AppConfig, error) {
	_ = godotenv.Load()

	config := &AppConfig{
		ServerPort:   getEnv("APP_PORT", "8000"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		SettingsPath: getEnv("SETTINGS_PATH", "./deployment/config/settings.yaml"),
		KafkaBroker:  getEnv("KAFKA_BROKER", "localhost:9092"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "robot_actions"),
		History: HistoryConfig{
			Enable:   getEnvAsBool("HISTORY_ENABLE", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Username: getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "root"),
			DBName:   getEnv("DB_NAME", "robot_db"),
		},
		Logging: LoggerConfig{
			Enable:     getEnvAsBool("LOGGER_ENABLE", true),
			LogsDir:    getEnv("LOGGER_LOGS_DIR", "./logs"),
			Level:      getEnv("LOGGER_LOG_LEVEL", "DEBUG"),
			SavingDays: getEnvAsInt("LOGGER_SAVING_DAYS", 7),
		},
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(name string, defaultValue int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	val, _ := strconv.ParseBool(value)
	return val
}
