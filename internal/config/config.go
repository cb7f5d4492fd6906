package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	OpenAI   OpenAIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RoomActivityTopic  string
}

type DatabaseConfig struct {
	Connection       string
	Schema           string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnectTimeout   int // seconds
	StatementTimeout int // milliseconds
}

type OpenAIConfig struct {
	APIKey      string
	ChatModel   string
	NamingModel string
	STTModel    string
	TTSModel    string
	TTSVoice    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3100"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RoomActivityTopic:  getEnv("ROOM_ACTIVITY_TOPIC_NAME", "ROOM_ACTIVITY"),
		},
		Database: DatabaseConfig{
			Connection:       getEnv("DB_CONNECTION_STRING", defaultDSN()),
			Schema:           getEnv("DB_SCHEMA", "ai_chat"),
			MaxOpenConns:     getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:     getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			ConnectTimeout:   getEnvAsInt("DB_CONNECT_TIMEOUT_SECONDS", 10),
			StatementTimeout: getEnvAsInt("DB_STATEMENT_TIMEOUT_MS", 30000),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			ChatModel:   getEnv("OPENAI_CHAT_MODEL", "gpt-4o"),
			NamingModel: getEnv("OPENAI_NAMING_MODEL", "gpt-4o-mini"),
			STTModel:    getEnv("OPENAI_STT_MODEL", "whisper-1"),
			TTSModel:    getEnv("OPENAI_TTS_MODEL", "tts-1-hd"),
			TTSVoice:    getEnv("OPENAI_TTS_VOICE", "alloy"),
		},
	}
}

// defaultDSN builds a DSN from the discrete DB_* variables so local setups
// without a full connection string keep working.
func defaultDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "password"),
		getEnv("DB_NAME", "voice_chat_db"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)
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
