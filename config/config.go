/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the process configuration of the cerrors edge
// adapters and the diagnostic CLI from the environment.
//
// Variables are read with the CERRORS_ prefix, e.g. CERRORS_LOG_LEVEL.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Prefix is the environment prefix used by Load.
const Prefix = "CERRORS"

// Config holds settings shared by the transport adapters.
type Config struct {
	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat selects console (human) or json output.
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// MaxBodyBytes bounds how much of an error response body is kept on
	// the error value.
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`

	// Domain is reported as google.rpc.ErrorInfo.domain by the gRPC and
	// HTTP relays.
	Domain string `envconfig:"DOMAIN" default:"couchdb"`

	// Timeout is the request timeout of clients built by the CLI.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks value ranges envconfig cannot express.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: unsupported LOG_FORMAT: %s", c.LogFormat)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}

// Logger builds a zerolog logger writing to stderr.
func (c *Config) Logger() zerolog.Logger {
	return c.LoggerTo(os.Stderr)
}

// LoggerTo builds a zerolog logger writing to w.
func (c *Config) LoggerTo(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	if c.LogFormat == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    true,
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
