package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	FeedbackLogPath    string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SessionConfig struct {
	Store      string // "memory" or "redis"
	TTLMinutes int
}

type APIKeys struct {
	GoogleGemini  string
	OpenAI        string
	FeedbackTopic string
}

type AIConfig struct {
	EmbeddingProvider    string // "gemini" or "ollama"
	OllamaBaseURL        string
	OllamaEmbeddingModel string
	LLMProvider          string // "openai" or "ollama"
	LLMModel             string // e.g. "gpt-4o-mini", "llama3"
	LLMBaseURL           string // override for openai-compatible gateways
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:8501"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			FeedbackLogPath:    getEnv("FEEDBACK_LOG_PATH", "feedback.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Session: SessionConfig{
			Store:      getEnv("SESSION_STORE", "memory"),
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
		},
		Keys: APIKeys{
			GoogleGemini:  getEnv("GOOGLE_GEMINI_API_KEY", ""),
			OpenAI:        getEnv("OPENAI_API_KEY", ""),
			FeedbackTopic: getEnv("FEEDBACK_TOPIC_NAME", "FEEDBACK_SUBMITTED"),
		},
		Ai: AIConfig{
			EmbeddingProvider:    getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:          getEnv("LLM_PROVIDER", "openai"),
			LLMModel:             getEnv("LLM_MODEL", "gpt-4o-mini"),
			LLMBaseURL:           getEnv("LLM_BASE_URL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
