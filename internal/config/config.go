// Package config loads interpreter settings from an optional YAML file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultPrompt is shown before each interactive line.
const DefaultPrompt = "> "

// Config holds interpreter settings. Pointer fields distinguish "unset" from
// an explicit false so that a file only overrides what it names.
type Config struct {
	Prompt    string `yaml:"prompt"`
	Color     *bool  `yaml:"color"`
	Trace     bool   `yaml:"trace"`
	ShowParse bool   `yaml:"show_parse"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{Prompt: DefaultPrompt}
}

// Parse decodes YAML settings on top of the defaults. Unknown keys are
// rejected.
func Parse(b []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(b, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	return cfg, nil
}

// Load reads settings from path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %q", path)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "in %q", path)
	}
	return cfg, nil
}

// UseColor reports whether error output should be colored. An unset Color
// falls back to whether the output is a terminal.
func (c *Config) UseColor(isTerminal bool) bool {
	if c.Color == nil {
		return isTerminal
	}
	return *c.Color
}
