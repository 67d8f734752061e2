// Package config loads the server configuration from the environment.
package config

import (
	"os"
	"strconv"
)

const (
	defaultPort    = "8080"
	defaultMaxBody = 32 << 20
)

type Config struct {
	Port    string // HUFFTEXT_PORT
	MaxBody int64  // HUFFTEXT_MAX_BODY, bytes accepted per request
	GinMode string // HUFFTEXT_GIN_MODE: debug, release or test
}

// Load reads the configuration from the process environment.
func Load() Config {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration using getenv.
// Missing or unparsable values get their defaults.
func LoadFrom(getenv func(string) string) Config {
	cfg := Config{
		Port:    defaultPort,
		MaxBody: defaultMaxBody,
		GinMode: "release",
	}
	if p := getenv("HUFFTEXT_PORT"); p != "" {
		cfg.Port = p
	}
	if s := getenv("HUFFTEXT_MAX_BODY"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			cfg.MaxBody = n
		}
	}
	if m := getenv("HUFFTEXT_GIN_MODE"); m != "" {
		cfg.GinMode = m
	}
	return cfg
}
