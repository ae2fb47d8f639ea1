package api

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"

	"github.com/rotafacil/transit-api/internal/clients/http/ibge"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port              string
	PostgresDSN       string
	RabbitURL         string
	IBGEBaseURL       string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
}

// LoadConfig reads environment variables, applying defaults. A .env file in
// the working directory is loaded best-effort before reading.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		RabbitURL:         strings.TrimSpace(os.Getenv("RABBITMQ_URL")),
		IBGEBaseURL:       envDefault("IBGE_BASE_URL", ibge.DefaultBaseURL),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
