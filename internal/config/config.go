package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	// BackendURL is the origin of the Pokémon REST API this client talks to.
	BackendURL string

	// PublicOrigin is the origin this frontend is served from. Relative image
	// paths returned by the backend are resolved against it.
	PublicOrigin string

	SessionSecret string
	SessionExpiry time.Duration

	BackendTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	sessionExpiry, err := time.ParseDuration(getEnv("SESSION_EXPIRY", "168h"))
	if err != nil {
		sessionExpiry = 168 * time.Hour
	}

	backendTimeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "15s"))
	if err != nil {
		backendTimeout = 15 * time.Second
	}

	port := getEnv("PORT", "8080")

	return &Config{
		Port: port,
		Env:  getEnv("ENV", "development"),

		BackendURL:   strings.TrimSuffix(getEnvOrPanic("BACKEND_API_URL"), "/"),
		PublicOrigin: strings.TrimSuffix(getEnv("PUBLIC_ORIGIN", "http://localhost:"+port), "/"),

		SessionSecret: getEnvOrPanic("SESSION_SECRET"),
		SessionExpiry: sessionExpiry,

		BackendTimeout: backendTimeout,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
