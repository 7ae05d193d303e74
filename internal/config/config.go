// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads the site generator's settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config is the site generator configuration.
type Config struct {
	// ContentDir holds the Markdown sources.
	ContentDir string `yaml:"content_dir"`
	// StaticDir is copied verbatim into OutputDir before pages are generated.
	StaticDir string `yaml:"static_dir"`
	// OutputDir is cleared on every build.
	OutputDir    string `yaml:"output_dir"`
	TemplatePath string `yaml:"template"`
	// BasePath is the URL path the site is served from.
	BasePath string `yaml:"base_path"`
	// Workers is the number of pages rendered concurrently.
	Workers          int    `yaml:"workers"`
	NormalizeUnicode bool   `yaml:"normalize_unicode"`
	LogLevel         string `yaml:"log_level"`
}

// Log levels accepted in [Config.LogLevel].
var logLevels = []any{"debug", "info", "warn", "error"}

// MaxWorkers is the largest accepted value for [Config.Workers].
const MaxWorkers = 64

// Default returns the configuration used when no file is present.
// Paths are relative to the working directory.
func Default() *Config {
	return &Config{
		ContentDir:   "content",
		StaticDir:    "static",
		OutputDir:    "docs",
		TemplatePath: "template.html",
		BasePath:     "/",
		Workers:      4,
		LogLevel:     "info",
	}
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "sitemark", "config.yaml")
}

// Load reads the YAML configuration file at path
// on top of [Default] and validates the result.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("load config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether the configuration is usable.
// The returned error is a [validation.Errors] keyed by field name.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.StaticDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.TemplatePath, validation.Required),
		validation.Field(&c.BasePath, validation.Required, validation.By(checkBasePath)),
		validation.Field(&c.Workers, validation.Required, validation.Min(1), validation.Max(MaxWorkers)),
		validation.Field(&c.LogLevel, validation.Required, validation.In(logLevels...)),
	)
}

func checkBasePath(value any) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, "/") || !strings.HasSuffix(s, "/") {
		return validation.NewError("validation_base_path", "must start and end with a slash")
	}
	return nil
}
