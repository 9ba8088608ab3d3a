package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config содержит все настройки приложения.
// Значения читаются один раз при старте процесса: сначала из .env файла
// (если он есть), затем из environment-переменных, затем из CLI-флагов.
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL       URLPrefix      `env:"BASE_URL"`

	// Настройки клиента NASA API
	NasaAPIKey        string        `env:"NASA_API_KEY,required"`
	ApodAPIURL        string        `env:"APOD_API_URL" envDefault:"https://api.nasa.gov/planetary/apod"`
	APIRequestTimeout time.Duration `env:"API_REQUEST_TIMEOUT" envDefault:"10s"`
	ImageFetchTimeout time.Duration `env:"IMAGE_FETCH_TIMEOUT" envDefault:"30s"`

	// Путь к файловому хранилищу; используется когда база данных не настроена
	FileStoragePath string `env:"FILE_STORAGE_PATH"`

	Database  DatabaseConfig
	Retry     RetryConfig
	Shortener ShortenerConfig
}

// DatabaseConfig содержит параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string `env:"DB_HOST"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// RetryConfig содержит настройки повторных попыток генерации идентификаторов
type RetryConfig struct {
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS" envDefault:"10"`
}

// ShortenerConfig содержит настройки генерации коротких кодов
type ShortenerConfig struct {
	SaltLength    int `env:"SHORTENER_SALT_LENGTH" envDefault:"10"`
	MinCodeLength int `env:"SHORTENER_MIN_CODE_LENGTH" envDefault:"4"`
}

// Load читает конфигурацию приложения.
// Отсутствие обязательных настроек (NASA_API_KEY) - фатальная ошибка старта,
// а не ошибка обработки запроса.
func Load() (*Config, error) {
	// .env файл опционален, его отсутствие - не ошибка
	_ = godotenv.Load()

	cfg := NewDefaultConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// CLI-флаги имеют приоритет над environment-переменными
	flag.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flag.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	flag.Parse()

	return cfg, nil
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию.
// Используется в Load и в тестах, где environment-переменные не заданы.
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8000},
		BaseURL:       URLPrefix("http://localhost:8000/"),
		ApodAPIURL:    "https://api.nasa.gov/planetary/apod",

		APIRequestTimeout: 10 * time.Second,
		ImageFetchTimeout: 30 * time.Second,

		Database: DatabaseConfig{
			Port:    5432,
			SSLMode: "disable",
		},
		Retry: RetryConfig{
			MaxAttempts: 10,
		},
		Shortener: ShortenerConfig{
			SaltLength:    10,
			MinCodeLength: 4,
		},
	}
}
