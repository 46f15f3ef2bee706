package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"

	"yggdrasil/pkg/engine"
)

type Config struct {
	Logs   LogConfig
	Engine EngineConfig
}

type LogConfig struct {
	Style string // console or json
	Level string
}

type EngineConfig struct {
	Depth int
	Side  engine.Side
}

// Load reads the configuration from the environment, falling back to defaults
// for unset variables
func Load() (*Config, error) {
	depth := engine.DefaultDepth
	if v := os.Getenv("ENGINE_DEPTH"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse ENGINE_DEPTH: %w", err)
		}
		if d < 1 {
			return nil, fmt.Errorf("ENGINE_DEPTH must be positive, got %d", d)
		}
		depth = d
	}

	side, err := ParseSide(envOr("ENGINE_COLOR", "black"))
	if err != nil {
		return nil, fmt.Errorf("parse ENGINE_COLOR: %w", err)
	}

	return &Config{
		Logs: LogConfig{
			Style: envOr("LOG_STYLE", "console"),
			Level: envOr("LOG_LEVEL", "info"),
		},
		Engine: EngineConfig{
			Depth: depth,
			Side:  side,
		},
	}, nil
}

// ParseSide accepts white, black, w or b in any case
func ParseSide(s string) (engine.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return engine.White, nil
	case "black", "b":
		return engine.Black, nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
