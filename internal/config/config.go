// Package config loads esmap settings from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reoring/esmap"
	"github.com/reoring/esmap/mapping"
)

// DefaultTypeName names the output type when neither file nor flags set one.
const DefaultTypeName = "Doc"

// Config is the file format. Unknown keys are rejected.
type Config struct {
	TypeName            string   `yaml:"typeName"`
	Prefix              string   `yaml:"prefix"`
	Postfix             string   `yaml:"postfix"`
	PluralFields        []string `yaml:"pluralFields"`
	LenientPlural       bool     `yaml:"lenientPlural"`
	AllowAmbiguousNames bool     `yaml:"allowAmbiguousNames"`
	Log                 Log      `yaml:"log"`
}

// Log configures the CLI logger.
type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

var levels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Default returns the built-in settings.
func Default() Config {
	return Config{TypeName: DefaultTypeName, Log: Log{Level: "info"}}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Empty input
// yields Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the decoder cannot.
func (c Config) Validate() error {
	if c.TypeName == "" {
		return errors.New("typeName must not be empty")
	}
	if !levels[c.Log.Level] {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// ConvertOptions returns the projection options.
func (c Config) ConvertOptions() esmap.ConvertOptions {
	return esmap.ConvertOptions{
		Prefix:        c.Prefix,
		Postfix:       c.Postfix,
		PluralFields:  append([]string(nil), c.PluralFields...),
		LenientPlural: c.LenientPlural,
	}
}

// MappingOptions returns the ingestion options.
func (c Config) MappingOptions() mapping.Options {
	return mapping.Options{AllowAmbiguousNames: c.AllowAmbiguousNames}
}
