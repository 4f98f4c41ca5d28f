// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package config loads slidec.yaml, the project-level configuration file
// that supplies defaults for the CLI flags documented in spec.md §6
// (output directory, debug flags). CLI flags always win over the file:
// Merge applies the file's values first, then the non-zero flag values on
// top of them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the fixed name the CLI looks for in the current working
// directory (not the root file's directory).
const FileName = "slidec.yaml"

// Config is the subset of slidec.yaml the compiler and CLI consult.
type Config struct {
	// Output is the default output directory (spec.md §6: "--output <dir>
	// (default out)").
	Output string `yaml:"output"`
	// Debug is the default debug-flags string (spec.md §6's DebugLang
	// comma list), applied when --dbg is not passed on the command line.
	Debug string `yaml:"dbg"`
	// ModulesDir names a directory for module archives (spec.md §4.6)
	// referenced by name rather than by path. It is loaded and merged, but
	// no CLI command reads it.
	ModulesDir string `yaml:"modules_dir"`
}

// Default returns the configuration used when no slidec.yaml is present.
func Default() Config {
	return Config{Output: "out", ModulesDir: "modules"}
}

// Load reads and parses path. A missing file is not an error: callers get
// Default() back, since slidec.yaml is optional (spec.md's config section
// only says the file "supplies defaults", never that it is required).
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overlays non-empty flag values onto cfg, giving CLI flags priority
// over the file the way the teacher's own cmd/scriggo does for its `-S`/
// `-mem`/`-time` flags layered over no persisted config (there the CLI is
// the only source; here a file exists underneath it).
func (cfg Config) Merge(output, debug string) Config {
	out := cfg
	if output != "" {
		out.Output = output
	}
	if debug != "" {
		out.Debug = debug
	}
	return out
}
