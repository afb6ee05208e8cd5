package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	LogLevel string

	DatabasePath string
	PostgresURL  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionCookie string
	SessionTTL    time.Duration
	SecureCookies bool

	// Editors maps username to plain secret; hashed once at startup.
	Editors map[string]string

	JWTSecret string
	JWTTTL    time.Duration

	StaticDir   string
	UploadDir   string
	UploadMount string
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	_ = godotenv.Load(".env")

	staticDir := getEnv("STATIC_DIR", "static")

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       ginMode(os.Getenv("GIN_MODE")),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DatabasePath:  getEnv("DATABASE_PATH", "bridges.db"),
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		SessionCookie: getEnv("SESSION_COOKIE", "bridges_session"),
		SessionTTL:    getEnvDuration("SESSION_TTL", 24*time.Hour),
		SecureCookies: os.Getenv("SECURE_COOKIES") == "true",
		Editors: map[string]string{
			getEnv("EDITOR_USERNAME", "admin"): getEnv("EDITOR_PASSWORD", "password123"),
		},
		JWTSecret:   getEnv("JWT_SECRET", "super-secret-key-change-me"),
		JWTTTL:      getEnvDuration("JWT_TTL", time.Hour),
		StaticDir:   staticDir,
		UploadDir:   getEnv("UPLOAD_DIR", filepath.Join(staticDir, "uploads")),
		UploadMount: strings.TrimRight(getEnv("UPLOAD_MOUNT", "/static/uploads"), "/"),
	}

	return cfg
}

func ginMode(v string) string {
	switch v {
	case "debug", "test":
		return v
	}
	return "release"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
