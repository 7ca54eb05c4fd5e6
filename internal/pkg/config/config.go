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

	Mongo  MongoConfig
	Redis  RedisConfig
	Notify NotifyConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=postrepublic"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// RateTTL is the staleness window for cached rate reference data.
	RateTTL time.Duration `env:"RATE_CACHE_TTL, default=5m"`
}

type NotifyConfig struct {
	// WebhookURL receives the order-created alert payload. Empty disables delivery.
	WebhookURL string `env:"NOTIFY_WEBHOOK_URL"`
	// WhatsApp is the operator's WhatsApp number used for the wa.me deep link.
	WhatsApp string `env:"NOTIFY_WHATSAPP"`
	Workers  int    `env:"NOTIFY_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
