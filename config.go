package robot

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config хранит настройки клиента сервера инструментов.
type Config struct {
	ServerURL string
	TimeoutMs int
	LogLevel  string
	OpenAI    OpenAIConfig
}

// OpenAIConfig содержит настройки LLM-клиента чата.
type OpenAIConfig struct {
	APIKeyEnv string
	Model     string
}

// Load загружает конфигурацию из файла и переменных окружения.
// Переменные окружения используют префикс ROBOT_.
func Load() *Config {
	v := viper.New()

	v.SetDefault("server_url", "http://localhost:8000")
	v.SetDefault("timeout_ms", 10000)
	v.SetDefault("log_level", "info")
	v.SetDefault("openai.api_key_env", "OPENAI_API_KEY")
	v.SetDefault("openai.model", "gpt-4o-mini")

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv("ROBOT_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("robot")
	}

	v.SetEnvPrefix("ROBOT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.ReadInConfig()

	return &Config{
		ServerURL: v.GetString("server_url"),
		TimeoutMs: v.GetInt("timeout_ms"),
		LogLevel:  v.GetString("log_level"),
		OpenAI: OpenAIConfig{
			APIKeyEnv: v.GetString("openai.api_key_env"),
			Model:     v.GetString("openai.model"),
		},
	}
}

// APIKey возвращает ключ OpenAI из настроенной переменной окружения.
func (c *Config) APIKey() string {
	return os.Getenv(c.OpenAI.APIKeyEnv)
}
