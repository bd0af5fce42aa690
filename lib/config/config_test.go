// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.URL != "http://127.0.0.1:8000" {
		t.Errorf("expected default server URL, got %s", cfg.Server.URL)
	}
	if cfg.Console.PageSize != 8 {
		t.Errorf("expected page_size=8, got %d", cfg.Console.PageSize)
	}
	if cfg.Console.PageGroupSize != 10 {
		t.Errorf("expected page_group_size=10, got %d", cfg.Console.PageGroupSize)
	}
	if cfg.Console.RecentRows != 7 {
		t.Errorf("expected recent_rows=7, got %d", cfg.Console.RecentRows)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_WithoutMinwonConfig(t *testing.T) {
	origConfig := os.Getenv("MINWON_CONFIG")
	defer os.Setenv("MINWON_CONFIG", origConfig)
	os.Unsetenv("MINWON_CONFIG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load without MINWON_CONFIG should use defaults: %v", err)
	}
	if cfg.Console.PageSize != 8 {
		t.Errorf("expected default page_size, got %d", cfg.Console.PageSize)
	}
}

func TestLoad_WithMinwonConfig(t *testing.T) {
	origConfig := os.Getenv("MINWON_CONFIG")
	defer os.Setenv("MINWON_CONFIG", origConfig)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minwon.yaml")

	configContent := `
server:
  url: http://complaints.internal:9000
  request_timeout: 30s
console:
  page_size: 12
log:
  file: /var/log/minwon-console.log
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	os.Setenv("MINWON_CONFIG", configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != "http://complaints.internal:9000" {
		t.Errorf("server URL not loaded: %s", cfg.Server.URL)
	}
	if cfg.Console.PageSize != 12 {
		t.Errorf("page_size not loaded: %d", cfg.Console.PageSize)
	}
	// Unset fields keep their defaults.
	if cfg.Console.PageGroupSize != 10 {
		t.Errorf("page_group_size should default to 10, got %d", cfg.Console.PageGroupSize)
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		t.Fatalf("Timeout: %v", err)
	}
	if timeout != 30*time.Second {
		t.Errorf("timeout = %s, want 30s", timeout)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	origConfig := os.Getenv("MINWON_CONFIG")
	defer os.Setenv("MINWON_CONFIG", origConfig)
	os.Setenv("MINWON_CONFIG", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for an explicitly named missing file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty server URL", func(cfg *Config) { cfg.Server.URL = "" }},
		{"zero page size", func(cfg *Config) { cfg.Console.PageSize = 0 }},
		{"negative group size", func(cfg *Config) { cfg.Console.PageGroupSize = -1 }},
		{"zero recent rows", func(cfg *Config) { cfg.Console.RecentRows = 0 }},
		{"bad timeout", func(cfg *Config) { cfg.Server.RequestTimeout = "soon" }},
		{"negative timeout", func(cfg *Config) { cfg.Server.RequestTimeout = "-5s" }},
		{"unknown log level", func(cfg *Config) { cfg.Log.Level = "verbose" }},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			cfg := Default()
			testCase.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(configPath, []byte("server: [not: a: mapping"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}
