package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Output formats, parsers and trace levels known to the tool.
var (
	outputNames = []string{"text", "tree", "dot"}
	parserNames = []string{"douceur", "tdewolff"}
	traceNames  = []string{"", "error", "info", "debug"}
)

// Config holds defaults for the commands. Flags given on the command line
// take precedence.
type Config struct {
	Format bool   `yaml:"format"`
	Output string `yaml:"output"`
	Parser string `yaml:"parser"`
	Merge  bool   `yaml:"merge"` // merge the <style> elements of HTML files
	Trace  string `yaml:"trace"` // trace level, empty for no tracing
}

func defaultConfig() *Config {
	return &Config{Output: "text", Parser: "douceur"}
}

// LoadConfig reads a YAML configuration file on top of the defaults and
// validates the result. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}
	return unmarshalConfig(data, cfg)
}

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks output and parser names and the trace level.
func (cfg *Config) Validate() error {
	if !oneOf(cfg.Output, outputNames) {
		return fmt.Errorf("invalid output %q, expected one of %v", cfg.Output, outputNames)
	}
	if !oneOf(cfg.Parser, parserNames) {
		return fmt.Errorf("invalid parser %q, expected one of %v", cfg.Parser, parserNames)
	}
	if !oneOf(strings.ToLower(cfg.Trace), traceNames) {
		return fmt.Errorf("invalid trace level %q, expected one of %v", cfg.Trace, traceNames[1:])
	}
	return nil
}

// Dump returns the configuration as YAML.
func (cfg *Config) Dump() ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}

func oneOf(s string, names []string) bool {
	for _, n := range names {
		if s == n {
			return true
		}
	}
	return false
}
