package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Backend names accepted by STORE_BACKEND.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMySQL  = "mysql"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	StoreBackend string
	StorageKey   string
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string

	SeedName     string
	SeedEmail    string
	SeedPassword string

	PanelSwitchDelay  time.Duration
	NotificationTTL   time.Duration
	ClientIdleTimeout time.Duration

	SwaggerHost string
	LogLevel    string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first if present; real
// environment variables always win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", BackendMemory),
		StorageKey:   getEnv("STORAGE_KEY", "eb_users"),
		MySQLDSN:     getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),

		SeedName:     getEnv("SEED_NAME", "Demo User"),
		SeedEmail:    getEnv("SEED_EMAIL", "user@enquero.com"),
		SeedPassword: getEnv("SEED_PASSWORD", "Enquero@123"),

		PanelSwitchDelay:  getEnvDuration("PANEL_SWITCH_DELAY", 1200*time.Millisecond),
		NotificationTTL:   getEnvDuration("NOTIFICATION_TTL", 3500*time.Millisecond),
		ClientIdleTimeout: getEnvDuration("CLIENT_IDLE_TIMEOUT", 30*time.Minute),

		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

// getEnvDuration accepts Go duration strings ("1.5s") or bare milliseconds ("1500").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d >= 0 {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return def
}
