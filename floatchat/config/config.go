package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr    string
	ResponsesPath string
	StylePath     string
	ThinkDelayMs  int
}

func LoadConfig() Config {
	// .env is optional; system environment is used when absent
	_ = godotenv.Load()

	return Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8000"),
		ResponsesPath: getEnv("RESPONSES_PATH", ""),
		StylePath:     getEnv("STYLE_PATH", "./web/style.css"),
		ThinkDelayMs:  getEnvInt("THINK_DELAY_MS", 1000),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
