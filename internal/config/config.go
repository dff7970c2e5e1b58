// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the gih
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters, the
	// seeded administrator account, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends, including
	// the relational database and the uploaded media directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the admin client transport: the
	// backend base URL, request timeout, and session file location.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings for uploaded media.
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, the seeded administrator account, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminUsername is the username of the administrator account seeded
	// into the database on first start.
	// Env: APP_ADMIN_USERNAME
	AdminUsername string `env:"ADMIN_USERNAME"`

	// AdminPassword is the initial password for the seeded administrator
	// account. Only used when the account does not exist yet.
	// Env: APP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" scheme selects
	// the PostgreSQL driver; any other value is treated as a SQLite file
	// path (e.g. "gih.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the uploaded media store.
type Files struct {
	// UploadsDir is the absolute or relative path to the directory where
	// uploaded photos and videos are stored and served from.
	// Env: STORAGE_FILES_UPLOADS_DIR
	UploadsDir string `env:"UPLOADS_DIR"`
}

// Adapter holds configuration for the admin client transport layer.
type Adapter struct {
	// ServerURL is the base URL of the backend the client talks to
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the default timeout for outbound client requests
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionFile is the path to the JSON file where the client persists
	// its admin session token between runs.
	// Env: ADAPTER_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval defines how often the orphan upload sweeper scans the
	// uploads directory for files no memory page references.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// defaultConfig returns the built-in fallback values merged below every
// explicit configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "gih",
			TokenDuration: 24 * time.Hour,
			AdminUsername: "OnlyGg",
			AdminPassword: "123456",
		},
		Storage: Storage{
			DB:    DB{DSN: "gih.db"},
			Files: Files{UploadsDir: "uploads"},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			ServerURL:      "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
			SessionFile:    "session.json",
		},
		Workers: Workers{
			SweepInterval: time.Hour,
		},
	}
}
