// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (Mongo, Redis, Stripe) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Medira API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Document store (MongoDB)
	MongoURI      string `env:"MONGO_URI,required"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"medira"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// AccessTokenSecret is the HMAC key used to sign session tokens.
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET,required"`

	// SessionTTL bounds how long an issued session token (and its cookie) stays
	// valid. The original behavior issued tokens without expiry; bounding them
	// is a deliberate hardening change.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"72h"`

	// Payment gateway (Stripe)
	StripeSecretKey string `env:"STRIPE_SECRET_KEY,required"`

	// Cross-Origin Resource Sharing. Comma-separated list of allowed origins
	// in addition to the first-party frontends.
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the full set of origins permitted by CORS.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:5173", "http://localhost:5174"}
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
