// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "crashrep.yaml")
	data := `
gdb: /opt/gdb/bin/gdb
timeout: 30s
asan_options: detect_leaks=0
`
	if err := os.WriteFile(file, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GDB != "/opt/gdb/bin/gdb" {
		t.Errorf("gdb = %q", cfg.GDB)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.ASANOptions != "detect_leaks=0" {
		t.Errorf("asan_options = %q", cfg.ASANOptions)
	}
	// Unset fields keep their defaults.
	if cfg.Addr2line != "addr2line" {
		t.Errorf("addr2line = %q", cfg.Addr2line)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("load of missing file succeeded")
	}
	file := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(file, []byte("timeout: -1s"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(file); err == nil {
		t.Error("load of negative timeout succeeded")
	}
}
