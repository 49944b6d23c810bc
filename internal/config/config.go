// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads actorc settings from a YAML or TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that, if set, points at the
// configuration file to use.
const EnvVar = "ACTORC_CONFIG"

// FileNames are the names searched for by [Find], in order of preference.
var FileNames = []string{".actorc.yaml", ".actorc.yml", ".actorc.toml"}

// Format is a configuration file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
)

// String implements [fmt.Stringer].
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// DetectFormat picks a format from a file's extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

// Color controls whether diagnostics are colorized.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// Config holds the settings shared by all actorc commands.
type Config struct {
	// When to colorize diagnostics.
	Color Color `yaml:"color" toml:"color"`
	// Render diagnostics one per line.
	Compact bool `yaml:"compact" toml:"compact"`
	// Output format for `actorc parse`: text, json, or yaml.
	Format string `yaml:"format" toml:"format"`
	// Maximum number of files `actorc check` parses at once. Zero means
	// GOMAXPROCS.
	Jobs int `yaml:"jobs" toml:"jobs"`
	// Show debug footers on diagnostics.
	ShowDebug bool `yaml:"show_debug" toml:"show_debug"`

	// The file this configuration was loaded from, if any.
	Path string `yaml:"-" toml:"-"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	c := new(Config)
	c.ApplyDefaults()
	return c
}

// Load reads the configuration file at path. The format is chosen by
// extension.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	c, err := LoadFromString(string(content), DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// LoadFromString parses content in the given format. Unknown keys are an
// error.
func LoadFromString(content string, format Format) (*Config, error) {
	c := new(Config)
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader([]byte(content)))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; treat it as all defaults.
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(content, c)
		if err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parsing toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, errors.New("unsupported config format")
	}

	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Find looks for one of [FileNames] in dir and each of its parents. Returns
// "" if there is none.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			if err == nil && !info.IsDir() {
				return path, nil
			}
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return "", err
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Discover loads the file named by [EnvVar] if it is set, and otherwise
// the file [Find] locates starting at dir. If neither exists, returns
// [Default].
func Discover(dir string) (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks that every setting has an allowed value.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q: want auto, always, or never", c.Color)
	}
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid format %q: want text, json, or yaml", c.Format)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("invalid jobs %d: must be positive", c.Jobs)
	}
	return nil
}

// ApplyDefaults fills in every unset setting. A zero Jobs becomes
// GOMAXPROCS.
func (c *Config) ApplyDefaults() {
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Jobs == 0 {
		c.Jobs = runtime.GOMAXPROCS(0)
	}
}
