// Copyright (c) 2026 WTWR. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. In development a
local .env file is loaded first via 'joho/godotenv'.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (Mongo, TokenService) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the WTWR API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"3001"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Document Database (MongoDB)
	MongoURL        string        `env:"MONGODB_URL"               envDefault:"mongodb://127.0.0.1:27017"`
	MongoDatabase   string        `env:"MONGODB_DATABASE"          envDefault:"wtwr_db"`
	MongoTimeout    time.Duration `env:"MONGODB_CONNECT_TIMEOUT"   envDefault:"10s"`
	MongoMaxPool    uint64        `env:"MONGODB_MAX_POOL_SIZE"     envDefault:"100"`
	MongoMinPool    uint64        `env:"MONGODB_MIN_POOL_SIZE"     envDefault:"1"`
	MongoRetries    int           `env:"MONGODB_RETRY_ATTEMPTS"    envDefault:"3"`
	MongoRetryPause time.Duration `env:"MONGODB_RETRY_INTERVAL"    envDefault:"5s"`

	// Token signing secret. Required: without it the Token Service cannot
	// start, and the process must fail fast rather than issue unsigned tokens.
	JWTSecret string `env:"JWT_SECRET,required"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
//
// A .env file in the working directory is applied first when present; a
// missing file is not an error.
func Load() (*Config, error) {

	// Best-effort .env load for local development
	_ = godotenv.Load()

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
