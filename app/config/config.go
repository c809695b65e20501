package config

import (
	"os"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
// It is built once in main and handed to the route packages; handlers
// never read the environment themselves.
type Config struct {
	DBDriver            string
	DBServer            string
	DBDatabase          string
	DBTrustedConnection string
	Host                string
	Port                string
}

func Load() Config {
	return Config{
		DBDriver:            envOr("DB_DRIVER", "sqlserver"),
		DBServer:            envOr("DB_SERVER", "localhost"),
		DBDatabase:          envOr("DB_DATABASE", "BibliotecaUNDAC"),
		DBTrustedConnection: envOr("DB_TRUSTED_CONNECTION", "yes"),
		Host:                envOr("HOST", "0.0.0.0"),
		Port:                envOr("PORT", "5000"),
	}
}

// Addr returns the host:port pair the HTTP server listens on.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
