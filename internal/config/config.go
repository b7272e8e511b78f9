package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Run modes recognized in APP_ENV. Development is the only mode that
// exposes stack traces in error bodies.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port       string
	MongoURI   string
	DBName     string
	JWTSecret  string
	AppEnv     string
	CORSOrigin string
}

// Load reads .env (when present) and assembles the configuration.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
	return Config{
		Port:       getEnvOrDefault("PORT", "8080"),
		MongoURI:   getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:     getEnvOrDefault("DB_NAME", "pizzeria"),
		JWTSecret:  getEnvOrDefault("JWT_SECRET", ""),
		AppEnv:     getEnvOrDefault("APP_ENV", EnvDevelopment),
		CORSOrigin: getEnvOrDefault("CORS_ORIGIN", "*"),
	}
}

// IsDevelopment reports whether the process runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
