package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string

	ServerHost string
	ServerPort int

	DatabaseURL string
	AutoMigrate bool

	LogLevel string

	KafkaBrokers      []string
	KafkaProductTopic string
	KafkaCartTopic    string
}

// LoadEnvFile loads variables from the given .env files without overriding
// the ones already set in the process environment.
func LoadEnvFile(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	if err := godotenv.Load(paths...); err != nil {
		log.Printf("notice: .env file not loaded: %v. Using system environment variables", err)
	}
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "inventory"),

		ServerHost: EnvDefault("SERVER_HOST", "0.0.0.0"),
		ServerPort: EnvIntDefault("SERVER_PORT", 8000),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		AutoMigrate: EnvBoolDefault("DB_AUTO_MIGRATE", false),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),

		KafkaBrokers:      CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaProductTopic: EnvDefault("KAFKA_PRODUCT_TOPIC", "product_events"),
		KafkaCartTopic:    EnvDefault("KAFKA_CART_TOPIC", "cart_events"),
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.ServerHost + ":" + strconv.Itoa(c.ServerPort)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
