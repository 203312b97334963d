package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort        string
	DatabaseDSN       string
	RedisAddr         string
	RedisDB           int
	RedisPass         string
	AccessTokenSecret string
	SwaggerHost       string
	WebAppDir         string
	AdminAppDir       string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "3030"),
		DatabaseDSN:       getEnv("DATABASE_DSN", "host=localhost user=admin password=pass dbname=helpugee port=5432 sslmode=disable"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		AccessTokenSecret: getEnv("ACCESS_TOKEN_SECRET", "secret"),
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
		WebAppDir:         os.Getenv("WEBAPP_DIR"),
		AdminAppDir:       os.Getenv("ADMIN_APP_DIR"),
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
