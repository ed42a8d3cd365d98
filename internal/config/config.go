package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         string
	TemplateGlob string
}

type DataConfig struct {
	FilePath string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func Load() *Config {
	// .env 파일은 있으면 읽고, 없으면 환경변수만 사용
	if err := godotenv.Load(); err != nil {
		log.Println("config.Load(): no .env file found, using environment only")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			TemplateGlob: getEnv("TEMPLATE_GLOB", "web/templates/*.html"),
		},
		Data: DataConfig{
			FilePath: getEnv("DATA_FILE", "data/user_ratings.csv"),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
			Burst: getEnvInt("RATE_LIMIT_BURST", 10),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("config: invalid %s=%q, using default %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("config: invalid %s=%q, using default %g", key, value, defaultValue)
	}
	return defaultValue
}
