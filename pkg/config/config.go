// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package config holds the tool configuration: paths of the external
// helpers and limits for the target run.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// GDB is the debugger binary used on the no-sanitizer-report path.
	GDB string `yaml:"gdb"`
	// Addr2line is the symbolizer binary used for crash-line resolution.
	Addr2line string `yaml:"addr2line"`
	// Timeout bounds the target run and each external tool invocation.
	Timeout time.Duration `yaml:"timeout"`
	// ASANOptions is appended to the ASAN_OPTIONS of the target run.
	ASANOptions string `yaml:"asan_options"`
	// OutputDir is the default directory for generated reports.
	OutputDir string `yaml:"output_dir"`
}

// UnmarshalYAML accepts the timeout in "30s"/"5m" form.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	raw := struct {
		GDB         string `yaml:"gdb"`
		Addr2line   string `yaml:"addr2line"`
		Timeout     string `yaml:"timeout"`
		ASANOptions string `yaml:"asan_options"`
		OutputDir   string `yaml:"output_dir"`
	}{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.GDB != "" {
		c.GDB = raw.GDB
	}
	if raw.Addr2line != "" {
		c.Addr2line = raw.Addr2line
	}
	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("bad timeout: %w", err)
		}
		c.Timeout = timeout
	}
	if raw.ASANOptions != "" {
		c.ASANOptions = raw.ASANOptions
	}
	if raw.OutputDir != "" {
		c.OutputDir = raw.OutputDir
	}
	return nil
}

func Default() *Config {
	return &Config{
		GDB:       "gdb",
		Addr2line: "addr2line",
		Timeout:   5 * time.Minute,
	}
}

// Load reads the config file and overlays it on the defaults.
func Load(file string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", file, err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("config %v: timeout must be positive", file)
	}
	return cfg, nil
}
