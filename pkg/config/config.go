package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server is the preview server configuration read from the environment.
type Server struct {
	Addr            string        `env:"WEBBLOCK_ADDR" envDefault:"127.0.0.1:8080"`
	DocsDir         string        `env:"WEBBLOCK_DOCS_DIR" envDefault:"."`
	LogLevel        string        `env:"WEBBLOCK_LOG_LEVEL" envDefault:"info"`
	Renderer        string        `env:"WEBBLOCK_RENDERER" envDefault:"html"`
	UnsafeHTML      bool          `env:"WEBBLOCK_UNSAFE_HTML" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"WEBBLOCK_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer reads the server configuration.
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	if cfg.ShutdownTimeout <= 0 {
		return Server{}, fmt.Errorf("parse env: WEBBLOCK_SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}
