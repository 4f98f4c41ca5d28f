// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "slidec.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("want %+v, got %+v", Default(), cfg)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slidec.yaml")
	content := "output: dist\ndbg: parser,binder\nmodules_dir: vendor/modules\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "dist" {
		t.Fatalf("want output %q, got %q", "dist", cfg.Output)
	}
	if cfg.Debug != "parser,binder" {
		t.Fatalf("want dbg %q, got %q", "parser,binder", cfg.Debug)
	}
	if cfg.ModulesDir != "vendor/modules" {
		t.Fatalf("want modules_dir %q, got %q", "vendor/modules", cfg.ModulesDir)
	}
}

func TestMergePrefersFlagsOverFile(t *testing.T) {
	cfg := Config{Output: "out", Debug: "tokens"}
	merged := cfg.Merge("dist", "")
	if merged.Output != "dist" {
		t.Fatalf("want flag value to win, got %q", merged.Output)
	}
	if merged.Debug != "tokens" {
		t.Fatalf("want file value to survive when flag is empty, got %q", merged.Debug)
	}
}

