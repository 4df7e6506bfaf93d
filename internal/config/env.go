package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBUser    string
	DBPass    string
	DBHost    string
	DBName    string
	RedisAddr string
	JWTSecret string
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:    getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:    getenv("DB_NAME", "backoffice"),
		RedisAddr: strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		JWTSecret: getenv("JWT_SECRET", "change-me-in-production"),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
