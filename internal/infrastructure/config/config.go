package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// StorageBackend selects the substrate: memory, redis or mongo.
	StorageBackend string `env:"STORAGE_BACKEND, default=memory"`

	// ChatPollInterval is how often an open chat view re-reads its thread.
	ChatPollInterval time.Duration `env:"CHAT_POLL_INTERVAL, default=3s"`

	Redis  RedisConfig
	Mongo  MongoConfig
	Gemini GeminiConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=studio_booking"`
}

// GeminiConfig configures the optional analysis collaborator. Without an API
// key the integration degrades to a fixed "not configured" message.
type GeminiConfig struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	BaseURL string `env:"GEMINI_API_URL"`
	Model   string `env:"GEMINI_MODEL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
