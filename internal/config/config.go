/*
Copyright The EpiData Authors.
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

// Package config loads the epidata settings from built-in defaults, an
// optional YAML file and environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/alexgit0/memilio/internal/cleaner"
)

// defaultFile is consulted when neither a path nor $EPIDATA_CONFIG is
// given.
const defaultFile = "epidata.yaml"

// Config holds the epidata settings shared by all commands.
type Config struct {
	// OutFolder is the root directory the download pipeline writes to.
	OutFolder string `yaml:"out_folder" env:"EPIDATA_OUT_FOLDER"`
	// Countries are the per-country data directories below OutFolder.
	Countries []string `yaml:"countries" env:"EPIDATA_COUNTRIES" envSeparator:","`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutFolder: "data",
		Countries: cleaner.DefaultCountries(),
	}
}

// DefaultPath returns the configuration file location used when no
// explicit path is given: $EPIDATA_CONFIG, or epidata.yaml in the
// working directory.
func DefaultPath() string {
	if path := os.Getenv("EPIDATA_CONFIG"); path != "" {
		return path
	}
	return defaultFile
}

// Load reads the configuration at path, falling back to DefaultPath
// when path is empty. A missing file at the default location yields the
// defaults; a missing explicit path is an error. Environment variables
// override both.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// the default file is optional
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
