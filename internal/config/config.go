// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON file and environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port is the listening port, or a full ip:port address.
	Port string `json:"port" env:"PORT"`

	// DatabaseDSN is a SQLite file path, a sqlite:// URL or a postgres:// URL.
	DatabaseDSN string `json:"database_dsn" env:"DATABASE_URL"`

	// StaticDir is the directory holding the front-end files.
	StaticDir string `json:"static_dir" env:"STATIC_DIR"`

	// LogLevel is a zap level name.
	LogLevel string `json:"log_level" env:"LOG_LEVEL"`

	// AdminEmail, AdminPassword and AdminToken configure the static admin login.
	AdminEmail    string `json:"admin_email" env:"ADMIN_EMAIL"`
	AdminPassword string `json:"admin_password" env:"ADMIN_PASSWORD"`
	AdminToken    string `json:"admin_token" env:"ADMIN_TOKEN"`

	// TLSCert and TLSKey enable HTTPS when both are set.
	TLSCert string `json:"tls_cert" env:"TLS_CERT"`
	TLSKey  string `json:"tls_key" env:"TLS_KEY"`

	// Config is the path to the Config file.
	Config string `json:"-" env:"CONFIG"`
}

// Defaults returns the options used when nothing else is configured.
func Defaults() Options {
	return Options{
		Port:          "3000",
		DatabaseDSN:   "contacts.db",
		StaticDir:     "public",
		LogLevel:      "info",
		AdminEmail:    "admin@nexus.com",
		AdminPassword: "password123",
		AdminToken:    "nexus-admin-token",
		Config:        "config.json",
	}
}

// Addr returns the address for http.Server.
func (o *Options) Addr() string {
	if strings.Contains(o.Port, ":") {
		return o.Port
	}
	return ":" + o.Port
}

// TLSEnabled reports whether both certificate and key paths are configured.
func (o *Options) TLSEnabled() bool {
	return o.TLSCert != "" && o.TLSKey != ""
}

// Parse builds Options from the process arguments and environment.
func Parse() (*Options, error) {
	return Load(flag.CommandLine, os.Args[1:])
}

// Load parses args with fs and layers sources in increasing precedence:
// defaults, JSON config file, explicitly set flags, environment.
// A .env file in the working directory is loaded into the environment first.
func Load(fset *flag.FlagSet, args []string) (*Options, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	def := Defaults()
	flags := def
	fset.StringVar(&flags.Port, "a", def.Port, "listen port or ip:port")
	fset.StringVar(&flags.DatabaseDSN, "d", def.DatabaseDSN, "database path or URL")
	fset.StringVar(&flags.StaticDir, "static", def.StaticDir, "front-end directory")
	fset.StringVar(&flags.LogLevel, "log-level", def.LogLevel, "log level")
	fset.StringVar(&flags.Config, "config", def.Config, "path to config file")
	fset.StringVar(&flags.Config, "c", def.Config, "path to config file (shorthand)")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	set := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	options := def
	options.Config = flags.Config
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		data, err := os.ReadFile(options.Config)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &options); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if set["a"] {
		options.Port = flags.Port
	}
	if set["d"] {
		options.DatabaseDSN = flags.DatabaseDSN
	}
	if set["static"] {
		options.StaticDir = flags.StaticDir
	}
	if set["log-level"] {
		options.LogLevel = flags.LogLevel
	}

	if err := env.Parse(&options); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &options, nil
}
