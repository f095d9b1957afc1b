package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server   ServerConfig
	Pionex   PionexConfig
	Database DatabaseConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Разрешенные браузерные origins для CORS и WebSocket upgrade.
	// Пустой список означает wildcard (дашборд открыт с любого хоста)
	AllowedOrigins []string
}

// PionexConfig - настройки доступа к Pionex API
//
// Ключи НЕ обязательны при старте: без них каждый проксируемый запрос
// возвращает configuration error, но health и bots endpoints работают.
// Так же ведёт себя оригинальный дашборд.
type PionexConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Timeout   time.Duration // таймаут одного upstream запроса
	RateLimit float64       // запросов в секунду к upstream
	RateBurst float64
}

// DatabaseConfig - настройки опционального Postgres-хранилища ботов
// Пустой URL означает volatile in-memory хранилище (режим по умолчанию)
type DatabaseConfig struct {
	URL string
}

// SecurityConfig - настройки опциональной Basic auth для дашборда
// Если хеш пустой, API открыт (локальное развертывание)
type SecurityConfig struct {
	DashboardUser         string
	DashboardPasswordHash string // bcrypt-хеш
}

// LoggingConfig - настройки логирования
type LoggingConfig struct {
	Level  string
	Format string
	Output string
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),

			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
		},
		Pionex: PionexConfig{
			BaseURL:   getEnv("PIONEX_API_URL", "https://api.pionex.com"),
			APIKey:    getEnv("PIONEX_API_KEY", ""),
			APISecret: getEnv("PIONEX_API_SECRET", ""),
			Timeout:   getEnvAsDuration("PIONEX_TIMEOUT", 10*time.Second),
			RateLimit: getEnvAsFloat("RATE_LIMIT", 10),
			RateBurst: getEnvAsFloat("RATE_BURST", 20),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Security: SecurityConfig{
			DashboardUser:         getEnv("DASHBOARD_USER", ""),
			DashboardPasswordHash: getEnv("DASHBOARD_PASSWORD_HASH", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			Output: getEnv("LOG_OUTPUT", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет диапазоны параметров
func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Pionex.BaseURL == "" {
		return fmt.Errorf("PIONEX_API_URL cannot be empty")
	}

	// Upstream таймаут ограничен сверху: зависший Pionex не должен
	// удерживать worker дольше 15 секунд
	if c.Pionex.Timeout < time.Second || c.Pionex.Timeout > 15*time.Second {
		return fmt.Errorf("PIONEX_TIMEOUT must be between 1s and 15s, got %v", c.Pionex.Timeout)
	}

	if c.Pionex.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive, got %v", c.Pionex.RateLimit)
	}

	// Авторизация включается только целиком: user + хеш
	if (c.Security.DashboardUser == "") != (c.Security.DashboardPasswordHash == "") {
		return fmt.Errorf("DASHBOARD_USER and DASHBOARD_PASSWORD_HASH must be set together")
	}

	return nil
}

// Configured сообщает, заданы ли оба API credentials
func (p PionexConfig) Configured() bool {
	return p.APIKey != "" && p.APISecret != ""
}

// AuthEnabled сообщает, включена ли Basic auth дашборда
func (s SecurityConfig) AuthEnabled() bool {
	return s.DashboardUser != "" && s.DashboardPasswordHash != ""
}

// Вспомогательные функции для чтения переменных окружения

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice читает comma-separated список. Значение "*" трактуют
// потребители (wildcard в CORS и origin checker)
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
