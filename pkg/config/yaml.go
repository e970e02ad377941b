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
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	// Define YAML schema
	type yamlConfig struct {
		RoutesDir string `yaml:"routes_dir"`
		Pattern   string `yaml:"pattern,omitempty"`
		Rewrite   *struct {
			DisableRules   []string `yaml:"disable_rules,omitempty"`
			IgnorePatterns []string `yaml:"ignore_patterns,omitempty"`
		} `yaml:"rewrite,omitempty"`
		Async bool `yaml:"async,omitempty"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, errors.Errorf("unmarshaling YAML: %w", err)
	}

	// Convert to model
	cfg := &Config{
		RoutesDir: yamlCfg.RoutesDir,
		Pattern:   yamlCfg.Pattern,
		Async:     yamlCfg.Async,
	}

	if yamlCfg.Rewrite != nil {
		cfg.Rewrite = &RewriteArgs{
			DisableRules:   yamlCfg.Rewrite.DisableRules,
			IgnorePatterns: yamlCfg.Rewrite.IgnorePatterns,
		}
	}

	return cfg, nil
}
