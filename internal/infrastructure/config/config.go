package config

import (
	"fmt"
	"os"
)

// Config holds everything the process needs at startup. The store path
// and the session signing secret have no sane defaults; missing values
// are a fatal configuration error, not a runtime one.
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Session SessionConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type StoreConfig struct {
	// Path is the BadgerDB directory.
	Path string
}

type SessionConfig struct {
	Secret string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnv("PORT", "8080"),
		},
		Store: StoreConfig{
			Path: getEnv("FINLOG_DB_PATH", ""),
		},
		Session: SessionConfig{
			Secret: getEnv("FINLOG_SESSION_SECRET", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "INFO"),
		},
	}

	if cfg.Store.Path == "" {
		return nil, fmt.Errorf("FINLOG_DB_PATH is required")
	}
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("FINLOG_SESSION_SECRET is required")
	}

	return cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
