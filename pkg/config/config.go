// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📌 Built-in defaults, matching the original migration constants
const (
	DefaultConfigFile = ".routefix.yaml"
	DefaultRoutesDir  = "src/routes"
	DefaultPattern    = "*.ts"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔧 RewriteArgs represents rule selection and file exclusion configuration
type RewriteArgs struct {
	DisableRules   []string `json:"disable_rules,omitempty" yaml:"disable_rules,omitempty"`     // Names of built-in rules to skip
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"` // Glob patterns for files to ignore
}

// 📚 Config represents the complete configuration
type Config struct {
	RoutesDir string       `json:"routes_dir" yaml:"routes_dir"`
	Pattern   string       `json:"pattern" yaml:"pattern"`
	Rewrite   *RewriteArgs `json:"rewrite,omitempty" yaml:"rewrite,omitempty"`
	Async     bool         `json:"async,omitempty" yaml:"async,omitempty"`
}

// 🏭 Default returns a config populated with the built-in defaults
func Default() *Config {
	return &Config{
		RoutesDir: DefaultRoutesDir,
		Pattern:   DefaultPattern,
	}
}

// 🎯 Load loads the configuration from a file. A missing file at the default
// path is not an error: the built-in defaults apply.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	if path == "" {
		path = DefaultConfigFile
	}

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigFile {
			logger.Debug().Msg("no config file, using defaults")
			return Default(), nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔧 applyDefaults fills unset fields with the built-in defaults
func (c *Config) applyDefaults() {
	if c.RoutesDir == "" {
		c.RoutesDir = DefaultRoutesDir
	}
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
}

// ✅ Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.RoutesDir == "" {
		return errors.Errorf("routes_dir is required")
	}
	if c.Pattern == "" {
		return errors.Errorf("pattern is required")
	}
	if !doublestar.ValidatePattern(c.Pattern) {
		return errors.Errorf("invalid pattern: %s", c.Pattern)
	}
	if c.Rewrite != nil {
		for _, pattern := range c.Rewrite.IgnorePatterns {
			if !doublestar.ValidatePattern(pattern) {
				return errors.Errorf("invalid ignore pattern: %s", pattern)
			}
		}
	}
	return nil
}
