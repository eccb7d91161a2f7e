package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

// Config holds all runtime configuration, resolved once at startup.
type Config struct {
	Port        string
	Env         string
	LogLevel    string
	DBDSN       string
	AutoMigrate bool
	DBLogLevel  logger.LogLevel
	JWTSecret   string
	RapidAPI    RapidAPIConfig
	UploadBase  string
	CORSOrigins []string
	Mail        MailConfig
}

// RapidAPIConfig identifies the third-party rental search API.
type RapidAPIConfig struct {
	Key  string
	Host string
}

// MailConfig configures the optional property-manager notification mail.
// Sending is disabled when APIKey is empty.
type MailConfig struct {
	APIKey string
	Sender string
}

// Load reads configuration from the environment, after loading a local
// .env file if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "3001"),
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DBDSN:       getEnv("DB_DSN", ""),
		AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		DBLogLevel:  getEnvAsLogLevel("DB_LOG_LEVEL", logger.Warn),
		JWTSecret:   getEnv("JWT_SECRET", "dev-insecure-secret-change"),
		RapidAPI: RapidAPIConfig{
			Key:  getEnv("RAPID_API_KEY", ""),
			Host: getEnv("RAPID_API_HOST", ""),
		},
		UploadBase:  getEnv("UPLOAD_BASE", "uploads"),
		CORSOrigins: getEnvAsList("FRONTEND_URL", "http://localhost:3000"),
		Mail: MailConfig{
			APIKey: getEnv("SENDGRID_API_KEY", ""),
			Sender: getEnv("MAIL_SENDER", "no-reply@swiperent.app"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvAsLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	switch getEnv(key, "") {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	}
	return defaultValue
}
