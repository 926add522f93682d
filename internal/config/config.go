package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvLocal      = "local"
	EnvProduction = "production"

	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Env     string
	HTTP    HTTPConfig
	Store   StoreConfig
	Kafka   KafkaConfig
	Retries int
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StoreConfig struct {
	Driver     string
	RedisAddr  string
	Postgres   PostgresConfig
	SQLitePath string
}

type PostgresConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// KafkaConfig is optional; an empty Broker disables event publishing.
type KafkaConfig struct {
	Broker string
}

// Load reads the configuration from the environment. Call godotenv.Load
// beforehand to pick up a local .env file.
func Load() (Config, error) {
	cfg := Config{
		Env: getEnv("APP_ENV", EnvLocal),
		HTTP: HTTPConfig{
			Port: getEnv("PORT", "3000"),
		},
		Store: StoreConfig{
			Driver:    getEnv("STORE_DRIVER", StoreRedis),
			RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
			Postgres: PostgresConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				User:     os.Getenv("DB_USER"),
				Password: os.Getenv("DB_PASSWORD"),
				Name:     os.Getenv("DB_NAME"),
				Port:     getEnv("DB_PORT", "5432"),
				SSLMode:  getEnv("DB_SSLMODE", "disable"),
			},
			SQLitePath: getEnv("SQLITE_PATH", "employees.db"),
		},
		Kafka: KafkaConfig{
			Broker: os.Getenv("KAFKA_BROKER"),
		},
	}

	var err error
	if cfg.HTTP.ReadTimeout, err = getDuration("HTTP_READ_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.HTTP.WriteTimeout, err = getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.HTTP.IdleTimeout, err = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Retries, err = getInt("CONNECT_RETRIES", 5); err != nil {
		return Config{}, err
	}

	switch cfg.Store.Driver {
	case StoreRedis, StorePostgres, StoreSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	if cfg.Retries < 1 {
		return Config{}, fmt.Errorf("CONNECT_RETRIES must be at least 1, got %d", cfg.Retries)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
