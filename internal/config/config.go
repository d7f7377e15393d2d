package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	GeminiModel string
	LogLevel    string
}

// Load reads configuration from the environment, falling back to a local
// .env file when present. The Gemini API key itself is not held here: the
// genai client reads GEMINI_API_KEY from the environment on its own.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
